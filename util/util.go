package util

import (
	"crypto/subtle"
)

// Concat concatenates multiple byte slices, used for the envelope's
// IV||ciphertext and salt||checksum wire framing.
func Concat(slices ...[]byte) []byte {
	var result []byte
	for _, slice := range slices {
		result = append(result, slice...)
	}
	return result
}

// ConstantTimeCompare reports whether a and b are equal without leaking the
// position of the first difference through timing.
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
