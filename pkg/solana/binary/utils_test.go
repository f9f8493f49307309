package binary

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedWidthFields(t *testing.T) {
	buf := make([]byte, 1+4+8)

	var offset int
	PutUint8(buf, 0x7, &offset)
	PutUint32(buf, 0x11223344, &offset)
	PutUint64(buf, 0x1122334455667788, &offset)
	require.Equal(t, len(buf), offset)

	assert.Equal(t, []byte{
		0x7,
		0x44, 0x33, 0x22, 0x11,
		0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11,
	}, buf)

	var (
		u8  uint8
		u32 uint32
		u64 uint64
	)
	offset = 0
	GetUint8(buf, &u8, &offset)
	GetUint32(buf, &u32, &offset)
	GetUint64(buf, &u64, &offset)

	assert.Equal(t, uint8(0x7), u8)
	assert.Equal(t, uint32(0x11223344), u32)
	assert.Equal(t, uint64(0x1122334455667788), u64)
	assert.Equal(t, len(buf), offset)
}

func TestKey32(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	buf := make([]byte, ed25519.PublicKeySize)

	var offset int
	PutKey32(buf, pub, &offset)
	require.Equal(t, ed25519.PublicKeySize, offset)

	var decoded ed25519.PublicKey
	offset = 0
	GetKey32(buf, &decoded, &offset)

	assert.Equal(t, pub, decoded)
}

func TestData(t *testing.T) {
	src := []byte{0x2, 0x1, 0x2, 0x3}

	var decoded []byte
	offset := 1
	GetData(src, &decoded, &offset)

	assert.Equal(t, []byte{0x1, 0x2, 0x3}, decoded)
	assert.Equal(t, len(src), offset)

	// The decoded slice is an owned copy.
	decoded[0] = 0xff
	assert.Equal(t, byte(0x1), src[1])

	buf := make([]byte, 1+len(decoded))
	offset = 0
	PutUint8(buf, 0x2, &offset)
	PutData(buf, []byte{0xff, 0x2, 0x3}, &offset)

	assert.Equal(t, []byte{0x2, 0xff, 0x2, 0x3}, buf)
	assert.Equal(t, len(buf), offset)

	// Zero-length remainder decodes to an empty slice.
	offset = len(src)
	GetData(src, &decoded, &offset)
	assert.Empty(t, decoded)
}
