// Package crypto provides the core cipher interfaces shared by the engine,
// mode, and padding packages.
// Reference: org.bouncycastle.crypto (interface shapes only; this module's
// semantics are the Blowfish-specific ones described in its own packages).
package crypto

// CipherParameters is a marker interface for cipher parameters, so that key
// material and IV-wrapped key material can be passed through Init without a
// type switch at every call site.
// Reference: org.bouncycastle.crypto.CipherParameters
type CipherParameters interface {
	IsCipherParameters() bool
}

// BlockCipher is the interface implemented by the adapter that
// engines.NewEngineAdapter returns around the raw round engine. The
// EcbMode, CbcMode and CfbMode types do not implement it.
// Reference: org.bouncycastle.crypto.BlockCipher
type BlockCipher interface {
	// Init initializes the cipher for encryption or decryption. It returns
	// an error for caller mistakes (bad key length, missing IV) rather than
	// panicking, since those are recoverable input-validation failures, not
	// programmer bugs.
	Init(forEncryption bool, params CipherParameters) error

	// GetAlgorithmName returns the algorithm name ("Blowfish" for the engine
	// adapter, which carries no mode suffix).
	GetAlgorithmName() string

	// GetBlockSize returns the block size for this cipher, in bytes.
	GetBlockSize() int

	// ProcessBlock processes exactly one block. It panics on out-of-range
	// offsets (a programmer error, not a caller-input error), the same way
	// the underlying engine does; the ECB/CBC/CFB mode types instead return
	// ErrOutOfBounds from their Encrypt/Decrypt methods.
	ProcessBlock(in []byte, inOff int, out []byte, outOff int) int

	// Reset clears any internal state that depends on previously processed
	// input (e.g. a mode's chaining value), restoring it to the
	// just-initialized condition.
	Reset()
}

// BlockCipherPadding is the interface implemented by padding schemes used to
// round buffered plaintext up to a block boundary.
// Reference: org.bouncycastle.crypto.paddings.BlockCipherPadding
type BlockCipherPadding interface {
	GetPaddingName() string

	// AddPadding fills in[inOff:] with padding bytes and returns the count
	// added.
	AddPadding(in []byte, inOff int) int

	// PadCount returns the number of padding bytes present at the end of a
	// fully-decrypted final block, or an error if the padding is corrupt.
	PadCount(in []byte) (int, error)
}
