// Package modes implements the Blowfish modes of operation: ECB, CBC, and
// CFB. Each mode owns a *engines.Engine directly rather than going through
// an abstract "mode" supertype — ECB, CBC, and CFB have incompatible count
// preconditions (block-aligned vs arbitrary byte counts), so a shared base
// type would only hide that difference.
// Reference: crypto/modes/ecb.go (teacher), restructured around
// engines.Engine's error-returning Init and explicit forEncryption-per-call
// ProcessBlock.
package modes

import (
	"github.com/gongzunpan/blowfish/crypto"
	"github.com/gongzunpan/blowfish/crypto/engines"
	"github.com/gongzunpan/blowfish/crypto/params"
)

// EcbMode is Electronic Codebook mode: every block is encrypted or
// decrypted independently, with no chaining between blocks. It is
// stateless beyond the key schedule and is included for compatibility and
// testing, not for securing real traffic — identical plaintext blocks
// always produce identical ciphertext blocks under a fixed key.
type EcbMode struct {
	engine *engines.Engine
}

// NewEcbMode creates an EcbMode keyed with key.
func NewEcbMode(key []byte) (*EcbMode, error) {
	m := &EcbMode{engine: engines.NewEngine()}
	if err := m.Init(key); err != nil {
		return nil, err
	}
	return m, nil
}

// Init (re)keys the mode, discarding any prior state.
func (m *EcbMode) Init(key []byte) error {
	return m.engine.Init(true, params.NewKeyParameter(key))
}

// GetAlgorithmName returns the underlying engine's name with the mode
// suffix.
func (m *EcbMode) GetAlgorithmName() string {
	return m.engine.GetAlgorithmName() + "/ECB"
}

// GetBlockSize returns the block size in bytes.
func (m *EcbMode) GetBlockSize() int {
	return m.engine.GetBlockSize()
}

// WeakKey reports whether the key schedule produced a duplicate S-box
// entry.
func (m *EcbMode) WeakKey() bool {
	return m.engine.WeakKey()
}

// Invalidate zeroes the expanded key schedule.
func (m *EcbMode) Invalidate() {
	m.engine.Invalidate()
}

// Clone returns an independent EcbMode sharing no state with the original.
func (m *EcbMode) Clone() *EcbMode {
	return &EcbMode{engine: m.engine.Clone()}
}

// Encrypt encrypts count bytes from src[srcOfs:] into dst[dstOfs:] and
// returns the number of bytes written. count must be a non-negative
// multiple of BLOCK_SIZE; src and dst may be the same buffer at the same
// offset for in-place operation.
func (m *EcbMode) Encrypt(src []byte, srcOfs int, dst []byte, dstOfs int, count int) (int, error) {
	return m.process(true, src, srcOfs, dst, dstOfs, count)
}

// Decrypt decrypts count bytes from src[srcOfs:] into dst[dstOfs:] and
// returns the number of bytes written. count must be a non-negative
// multiple of BLOCK_SIZE.
func (m *EcbMode) Decrypt(src []byte, srcOfs int, dst []byte, dstOfs int, count int) (int, error) {
	return m.process(false, src, srcOfs, dst, dstOfs, count)
}

func (m *EcbMode) process(forEncryption bool, src []byte, srcOfs int, dst []byte, dstOfs int, count int) (int, error) {
	if !m.engine.Initialized() {
		return 0, crypto.ErrInstanceInvalidated
	}

	blockSize := m.engine.GetBlockSize()
	if count < 0 || count%blockSize != 0 {
		return 0, crypto.ErrUnaligned
	}
	if srcOfs < 0 || srcOfs+count > len(src) || dstOfs < 0 || dstOfs+count > len(dst) {
		return 0, crypto.ErrOutOfBounds
	}

	written := 0
	for off := 0; off < count; off += blockSize {
		m.engine.ProcessBlock(forEncryption, src, srcOfs+off, dst, dstOfs+off)
		written += blockSize
	}
	return written, nil
}
