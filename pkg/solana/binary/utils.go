// Package binary provides offset-cursor helpers for the fixed-width
// little-endian field layouts used by solana program instructions and
// account state.
package binary

import (
	"crypto/ed25519"
	"encoding/binary"
)

func PutUint8(dst []byte, v uint8, offset *int) {
	dst[*offset] = v
	*offset += 1
}

func GetUint8(src []byte, dst *uint8, offset *int) {
	*dst = src[*offset]
	*offset += 1
}

func PutUint32(dst []byte, v uint32, offset *int) {
	binary.LittleEndian.PutUint32(dst[*offset:], v)
	*offset += 4
}

func GetUint32(src []byte, dst *uint32, offset *int) {
	*dst = binary.LittleEndian.Uint32(src[*offset:])
	*offset += 4
}

func PutUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v)
	*offset += 8
}

func GetUint64(src []byte, dst *uint64, offset *int) {
	*dst = binary.LittleEndian.Uint64(src[*offset:])
	*offset += 8
}

func PutKey32(dst []byte, src ed25519.PublicKey, offset *int) {
	copy(dst[*offset:], src)
	*offset += ed25519.PublicKeySize
}

func GetKey32(src []byte, dst *ed25519.PublicKey, offset *int) {
	*dst = make([]byte, ed25519.PublicKeySize)
	copy(*dst, src[*offset:])
	*offset += ed25519.PublicKeySize
}

// PutData copies src verbatim, with no length prefix.
func PutData(dst []byte, src []byte, offset *int) {
	copy(dst[*offset:], src)
	*offset += len(src)
}

// GetData copies the remainder of src into an owned slice.
func GetData(src []byte, dst *[]byte, offset *int) {
	*dst = make([]byte, len(src)-*offset)
	copy(*dst, src[*offset:])
	*offset = len(src)
}
