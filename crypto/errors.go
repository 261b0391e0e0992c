package crypto

import "errors"

// Sentinel errors for the cipher's caller-facing failure modes. Callers
// should branch on these with errors.Is rather than string matching.
var (
	// ErrBadKeyLength is returned when key material exceeds MAX_KEY_LENGTH
	// (56 bytes). A zero-length key is accepted.
	ErrBadKeyLength = errors.New("blowfish: bad key length")

	// ErrUnaligned is returned by ECB and CBC when a count is not a
	// multiple of BLOCK_SIZE (8).
	ErrUnaligned = errors.New("blowfish: count not a multiple of block size")

	// ErrOutOfBounds is returned when a source or destination range would
	// read or write past the end of the supplied buffer.
	ErrOutOfBounds = errors.New("blowfish: offset/count out of buffer bounds")

	// ErrInstanceInvalidated is returned by any operation attempted after
	// Invalidate has zeroed an instance's key material.
	ErrInstanceInvalidated = errors.New("blowfish: instance invalidated")

	// ErrDecodeFailure names the envelope decode-failure kind (bad base64,
	// short ciphertext, illegal padding byte). SimpleEnvelope.Decrypt does
	// not return it: it reports every such failure as ok == false, so that
	// no failure mode is distinguishable to a caller.
	ErrDecodeFailure = errors.New("blowfish: envelope decode failure")

	// ErrSelfTestFailed is returned by SelfTest when the round engine
	// fails to reproduce one of the embedded test vectors.
	ErrSelfTestFailed = errors.New("blowfish: self-test failed")

	// ErrInvalidParameter is returned by InitWithParameters when given a
	// CipherParameters value of a type the mode does not recognize.
	ErrInvalidParameter = errors.New("blowfish: unsupported cipher parameter type")
)
