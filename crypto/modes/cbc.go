package modes

import (
	"github.com/gongzunpan/blowfish/crypto"
	"github.com/gongzunpan/blowfish/crypto/engines"
	"github.com/gongzunpan/blowfish/crypto/params"
)

// CbcMode is Cipher Block Chaining mode: each plaintext block is XORed
// with the previous ciphertext block (or the IV, for the first block)
// before encryption, so that identical plaintext blocks produce different
// ciphertext unless the IV and preceding history repeat too.
// Reference: crypto/modes/cbc.go (teacher)'s cbcV/cbcNextV swap-buffer
// shape, restructured around engines.Engine.
type CbcMode struct {
	engine    *engines.Engine
	blockSize int
	iv        []byte
	cbcV      []byte
	cbcNextV  []byte
}

// NewCbcMode creates a CbcMode keyed with key. The IV starts as all zeros;
// callers should call SetIV before encrypting.
func NewCbcMode(key []byte) (*CbcMode, error) {
	m := &CbcMode{
		engine:    engines.NewEngine(),
		blockSize: engines.BlockSize,
		iv:        make([]byte, engines.BlockSize),
		cbcV:      make([]byte, engines.BlockSize),
		cbcNextV:  make([]byte, engines.BlockSize),
	}
	if err := m.Init(key); err != nil {
		return nil, err
	}
	return m, nil
}

// Init (re)keys the mode and resets the chaining vector back to the
// current IV.
func (m *CbcMode) Init(key []byte) error {
	if err := m.engine.Init(true, params.NewKeyParameter(key)); err != nil {
		return err
	}
	m.resetChain()
	return nil
}

// InitWithParameters (re)keys the mode from a crypto.CipherParameters value:
// either a bare *params.KeyParameter (key only, IV left at its current
// value) or a *params.ParametersWithIV wrapping one (key and IV both set in
// a single call). This is the constructor-style entry point the teacher's
// BouncyCastle-derived CipherParameters path documents; NewCbcMode/SetIV
// remain the direct equivalent for callers that already hold raw bytes.
// Reference: org.bouncycastle.crypto.params.ParametersWithIV's Init contract.
func (m *CbcMode) InitWithParameters(p crypto.CipherParameters) error {
	switch v := p.(type) {
	case *params.ParametersWithIV:
		if kp, ok := v.GetParameters().(*params.KeyParameter); ok {
			if err := m.Init(kp.GetKey()); err != nil {
				return err
			}
		}
		return m.SetIV(v.GetIV())
	case *params.KeyParameter:
		return m.Init(v.GetKey())
	default:
		return crypto.ErrInvalidParameter
	}
}

// GetIV returns a copy of the current IV block.
func (m *CbcMode) GetIV() []byte {
	iv := make([]byte, m.blockSize)
	copy(iv, m.iv)
	return iv
}

// SetIV copies an 8-byte IV in and resets the chaining vector to it. iv
// must be exactly GetBlockSize() bytes.
func (m *CbcMode) SetIV(iv []byte) error {
	if len(iv) != m.blockSize {
		return crypto.ErrOutOfBounds
	}
	copy(m.iv, iv)
	m.resetChain()
	return nil
}

func (m *CbcMode) resetChain() {
	copy(m.cbcV, m.iv)
	for i := range m.cbcNextV {
		m.cbcNextV[i] = 0
	}
}

// GetAlgorithmName returns the underlying engine's name with the mode
// suffix.
func (m *CbcMode) GetAlgorithmName() string {
	return m.engine.GetAlgorithmName() + "/CBC"
}

// GetBlockSize returns the block size in bytes.
func (m *CbcMode) GetBlockSize() int {
	return m.blockSize
}

// WeakKey reports whether the key schedule produced a duplicate S-box
// entry.
func (m *CbcMode) WeakKey() bool {
	return m.engine.WeakKey()
}

// Invalidate zeroes the expanded key schedule and the chaining state.
func (m *CbcMode) Invalidate() {
	m.engine.Invalidate()
	for i := range m.iv {
		m.iv[i] = 0
	}
	for i := range m.cbcV {
		m.cbcV[i] = 0
	}
	for i := range m.cbcNextV {
		m.cbcNextV[i] = 0
	}
}

// Clone returns an independent CbcMode: a deep copy of the engine, IV, and
// chaining vectors. Mutating either instance thereafter has no effect on
// the other.
func (m *CbcMode) Clone() *CbcMode {
	clone := &CbcMode{
		engine:    m.engine.Clone(),
		blockSize: m.blockSize,
		iv:        make([]byte, m.blockSize),
		cbcV:      make([]byte, m.blockSize),
		cbcNextV:  make([]byte, m.blockSize),
	}
	copy(clone.iv, m.iv)
	copy(clone.cbcV, m.cbcV)
	copy(clone.cbcNextV, m.cbcNextV)
	return clone
}

// Encrypt encrypts count bytes from src[srcOfs:] into dst[dstOfs:],
// chaining each block against the running cbcV, and returns the number of
// bytes written. count must be a non-negative multiple of BLOCK_SIZE.
func (m *CbcMode) Encrypt(src []byte, srcOfs int, dst []byte, dstOfs int, count int) (int, error) {
	if !m.engine.Initialized() {
		return 0, crypto.ErrInstanceInvalidated
	}
	if count < 0 || count%m.blockSize != 0 {
		return 0, crypto.ErrUnaligned
	}
	if srcOfs < 0 || srcOfs+count > len(src) || dstOfs < 0 || dstOfs+count > len(dst) {
		return 0, crypto.ErrOutOfBounds
	}

	for off := 0; off < count; off += m.blockSize {
		for i := 0; i < m.blockSize; i++ {
			m.cbcV[i] ^= src[srcOfs+off+i]
		}
		m.engine.ProcessBlock(true, m.cbcV, 0, dst, dstOfs+off)
		copy(m.cbcV, dst[dstOfs+off:dstOfs+off+m.blockSize])
	}
	return count, nil
}

// Decrypt decrypts count bytes from src[srcOfs:] into dst[dstOfs:] and
// returns the number of bytes written. count must be a non-negative
// multiple of BLOCK_SIZE.
func (m *CbcMode) Decrypt(src []byte, srcOfs int, dst []byte, dstOfs int, count int) (int, error) {
	if !m.engine.Initialized() {
		return 0, crypto.ErrInstanceInvalidated
	}
	if count < 0 || count%m.blockSize != 0 {
		return 0, crypto.ErrUnaligned
	}
	if srcOfs < 0 || srcOfs+count > len(src) || dstOfs < 0 || dstOfs+count > len(dst) {
		return 0, crypto.ErrOutOfBounds
	}

	for off := 0; off < count; off += m.blockSize {
		copy(m.cbcNextV, src[srcOfs+off:srcOfs+off+m.blockSize])
		m.engine.ProcessBlock(false, src, srcOfs+off, dst, dstOfs+off)
		for i := 0; i < m.blockSize; i++ {
			dst[dstOfs+off+i] ^= m.cbcV[i]
		}
		m.cbcV, m.cbcNextV = m.cbcNextV, m.cbcV
	}
	return count, nil
}
