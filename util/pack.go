// Package util provides byte-packing and buffer utilities shared by the
// engine, mode, and envelope packages.
// Reference: org.bouncycastle.util.Pack (bc-java); grounded on
// sm-go-bc/util/pack.go, trimmed to the big/little-endian word helpers this
// module actually exercises (block halves are big-endian per spec, the
// stream length header is little-endian).
package util

import "encoding/binary"

// BigEndianToUint32 unpacks a uint32 from big-endian bytes.
func BigEndianToUint32(bs []byte, off int) uint32 {
	return binary.BigEndian.Uint32(bs[off:])
}

// Uint32ToBigEndian packs a uint32 into big-endian bytes.
func Uint32ToBigEndian(n uint32, bs []byte, off int) {
	binary.BigEndian.PutUint32(bs[off:], n)
}

// LittleEndianToUint32 unpacks a uint32 from little-endian bytes.
func LittleEndianToUint32(bs []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(bs[off:])
}

// Uint32ToLittleEndian packs a uint32 into little-endian bytes.
func Uint32ToLittleEndian(n uint32, bs []byte, off int) {
	binary.LittleEndian.PutUint32(bs[off:], n)
}
