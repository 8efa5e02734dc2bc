// Command polybius generates Polybius-square keys and encrypts or decrypts files
// with them.
//
// Usage:
//
//	polybius keygen  -alphabet ru-ext -out key.pkey [-seed N | -passphrase P] [-compression zstd]
//	polybius encrypt -key key.pkey -in plain.txt -out code.txt [-envelope none|zstd|s2|lz4]
//	polybius decrypt -key key.pkey -in code.txt -out plain.txt [-envelope none|zstd|s2|lz4]
//	polybius show    -key key.pkey
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/arloliu/polybius"
	"github.com/arloliu/polybius/codec"
	"github.com/arloliu/polybius/fileproc"
	"github.com/arloliu/polybius/format"
	"github.com/arloliu/polybius/grid"
	"github.com/arloliu/polybius/keyfile"
)

var errUsage = errors.New("usage: polybius keygen|encrypt|decrypt|show [flags]")

func main() {
	log.SetFlags(0)
	log.SetPrefix("polybius: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "keygen":
		return keygen(rest, stdout)
	case "encrypt", "decrypt":
		mode, err := format.ParseMode(cmd)
		if err != nil {
			return err
		}

		return transform(mode, rest)
	case "show":
		return show(rest, stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// resolveAlphabet maps the short names accepted by -alphabet to alphabets;
// anything else is taken literally.
func resolveAlphabet(name string) string {
	switch name {
	case "en":
		return polybius.English
	case "ru":
		return polybius.Russian
	case "ru-ext":
		return polybius.RussianExtended
	default:
		return name
	}
}

func keygen(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("keygen", flag.ContinueOnError)
	alphabet := fs.String("alphabet", "ru-ext", "alphabet: en, ru, ru-ext or a literal symbol list")
	seed := fs.Uint64("seed", 0, "deterministic shuffle seed (0 means random)")
	passphrase := fs.String("passphrase", "", "derive the shuffle from a passphrase")
	out := fs.String("out", "", "key file to write (required)")
	compression := fs.String("compression", "none", "key payload compression: none, zstd, s2, lz4")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("%w: keygen needs -out", errUsage)
	}
	if *seed != 0 && *passphrase != "" {
		return fmt.Errorf("%w: -seed and -passphrase are mutually exclusive", errUsage)
	}

	ct, err := format.ParseCompression(*compression)
	if err != nil {
		return err
	}

	var opts []grid.Option
	switch {
	case *seed != 0:
		opts = append(opts, grid.WithSeed(*seed))
	case *passphrase != "":
		opts = append(opts, grid.WithPassphrase(*passphrase))
	}

	c, err := polybius.NewCodec(resolveAlphabet(*alphabet), opts...)
	if err != nil {
		return err
	}

	if err := polybius.SaveKey(*out, c, keyfile.WithCompression(ct)); err != nil {
		return err
	}

	g := c.Grid()
	_, err = fmt.Fprintf(stdout, "wrote %s: %dx%d grid, %d symbols, fingerprint %016x\n",
		*out, g.Side(), g.Side(), g.Len(), g.Fingerprint())

	return err
}

func transform(mode format.Mode, args []string) error {
	fs := flag.NewFlagSet(mode.String(), flag.ContinueOnError)
	key := fs.String("key", "", "key file (required)")
	in := fs.String("in", "", "input file (required)")
	out := fs.String("out", "", "output file (required)")
	envelope := fs.String("envelope", "", "use a sealed container compressed with none, zstd, s2 or lz4")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *key == "" || *in == "" || *out == "" {
		return fmt.Errorf("%w: %s needs -key, -in and -out", errUsage, mode)
	}

	c, err := polybius.LoadKey(*key)
	if err != nil {
		return err
	}

	p, err := newProcessor(c, *envelope)
	if err != nil {
		return err
	}

	return p.ProcessFile(*in, *out, mode)
}

func newProcessor(c *codec.Codec, envelope string) (*fileproc.Processor, error) {
	if envelope == "" {
		return polybius.NewFileProcessor(c)
	}

	ct, err := format.ParseCompression(envelope)
	if err != nil {
		return nil, err
	}

	return polybius.NewFileProcessor(c, fileproc.WithEnvelope(ct))
}

func show(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	key := fs.String("key", "", "key file (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *key == "" {
		return fmt.Errorf("%w: show needs -key", errUsage)
	}

	c, err := polybius.LoadKey(*key)
	if err != nil {
		return err
	}

	g := c.Grid()
	_, err = fmt.Fprintf(stdout, "%dx%d grid, %d symbols, fingerprint %016x\n%s\n",
		g.Side(), g.Side(), g.Len(), g.Fingerprint(), g)

	return err
}
