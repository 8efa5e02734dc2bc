package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result)
	case 0x02:
		require.Equal(binary.LittleEndian, result)
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}
	require.Equal(result == binary.LittleEndian, IsNativeLittleEndian())
}

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)

	b := make([]byte, 2)
	engine.PutUint16(b, 0x0102)
	require.Equal(t, []byte{0x02, 0x01}, b, "little endian should put LSB first")
	require.Equal(t, uint16(0x0102), engine.Uint16(b))
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.BigEndian, engine)

	b := make([]byte, 2)
	engine.PutUint16(b, 0x0102)
	require.Equal(t, []byte{0x01, 0x02}, b, "big endian should put MSB first")
}

func TestSelect(t *testing.T) {
	require.Equal(t, binary.BigEndian, Select(true))
	require.Equal(t, binary.LittleEndian, Select(false))
}

func TestEndianEngines_Append(t *testing.T) {
	var fingerprint uint64 = 0x0102030405060708

	little := GetLittleEndianEngine().AppendUint64(nil, fingerprint)
	big := GetBigEndianEngine().AppendUint64(nil, fingerprint)

	require.NotEqual(t, little, big)
	require.Equal(t, fingerprint, GetLittleEndianEngine().Uint64(little))
	require.Equal(t, fingerprint, GetBigEndianEngine().Uint64(big))
}
