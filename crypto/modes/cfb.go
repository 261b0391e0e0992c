package modes

import (
	"github.com/gongzunpan/blowfish/crypto"
	"github.com/gongzunpan/blowfish/crypto/engines"
	"github.com/gongzunpan/blowfish/crypto/params"
)

// CfbMode is Cipher Feedback mode, self-synchronizing at the byte level.
// Unlike EcbMode and CbcMode, it accepts any non-negative byte count: the
// IV buffer doubles as a keystream block that is consumed one byte at a
// time and refilled by re-encrypting it whenever exhausted.
//
// This does not follow crypto/modes/cfb.go (teacher)'s cfbV/cfbOutV/inBuf
// shift-buffer structure — that shape is built around a configurable
// sub-cipher-block feedback width, which this mode does not need. Instead
// the running IV buffer is consumed and overwritten in place, tracked by a
// single cursor, matching the byte-cursor model this mode implements.
type CfbMode struct {
	engine      *engines.Engine
	blockSize   int
	iv          []byte
	ivBytesLeft int
}

// NewCfbMode creates a CfbMode keyed with key. The IV starts as all zeros
// with ivBytesLeft == 0, so the first byte consumed triggers a fresh block
// encryption of the IV.
func NewCfbMode(key []byte) (*CfbMode, error) {
	m := &CfbMode{
		engine:    engines.NewEngine(),
		blockSize: engines.BlockSize,
		iv:        make([]byte, engines.BlockSize),
	}
	if err := m.Init(key); err != nil {
		return nil, err
	}
	return m, nil
}

// Init (re)keys the mode and resets the IV to zero with ivBytesLeft == 0.
func (m *CfbMode) Init(key []byte) error {
	if err := m.engine.Init(true, params.NewKeyParameter(key)); err != nil {
		return err
	}
	for i := range m.iv {
		m.iv[i] = 0
	}
	m.ivBytesLeft = 0
	return nil
}

// InitWithParameters (re)keys the mode from a crypto.CipherParameters value:
// either a bare *params.KeyParameter or a *params.ParametersWithIV wrapping
// one, setting both key and running IV/keystream buffer in a single call.
// Reference: org.bouncycastle.crypto.params.ParametersWithIV's Init contract.
func (m *CfbMode) InitWithParameters(p crypto.CipherParameters) error {
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

// GetIV returns a copy of the current running IV/keystream buffer.
func (m *CfbMode) GetIV() []byte {
	iv := make([]byte, m.blockSize)
	copy(iv, m.iv)
	return iv
}

// SetIV copies an 8-byte IV in and resets ivBytesLeft to 0, forcing a
// fresh block encryption on the next byte consumed.
func (m *CfbMode) SetIV(iv []byte) error {
	if len(iv) != m.blockSize {
		return crypto.ErrOutOfBounds
	}
	copy(m.iv, iv)
	m.ivBytesLeft = 0
	return nil
}

// GetAlgorithmName returns the underlying engine's name with the mode
// suffix.
func (m *CfbMode) GetAlgorithmName() string {
	return m.engine.GetAlgorithmName() + "/CFB"
}

// GetBlockSize returns the underlying cipher's block size in bytes.
func (m *CfbMode) GetBlockSize() int {
	return m.blockSize
}

// WeakKey reports whether the key schedule produced a duplicate S-box
// entry.
func (m *CfbMode) WeakKey() bool {
	return m.engine.WeakKey()
}

// Invalidate zeroes the expanded key schedule and the IV buffer.
func (m *CfbMode) Invalidate() {
	m.engine.Invalidate()
	for i := range m.iv {
		m.iv[i] = 0
	}
	m.ivBytesLeft = 0
}

// Clone returns an independent CfbMode: a deep copy of the engine, IV
// buffer, and cursor.
func (m *CfbMode) Clone() *CfbMode {
	clone := &CfbMode{
		engine:      m.engine.Clone(),
		blockSize:   m.blockSize,
		iv:          make([]byte, m.blockSize),
		ivBytesLeft: m.ivBytesLeft,
	}
	copy(clone.iv, m.iv)
	return clone
}

// Encrypt encrypts count bytes from src[srcOfs:] into dst[dstOfs:] and
// returns the number of bytes written. count may be any non-negative
// value; CFB has no block-alignment requirement. Calling Encrypt split
// arbitrarily across several calls produces the same output as a single
// call over the concatenated input.
func (m *CfbMode) Encrypt(src []byte, srcOfs int, dst []byte, dstOfs int, count int) (int, error) {
	if !m.engine.Initialized() {
		return 0, crypto.ErrInstanceInvalidated
	}
	if count < 0 {
		return 0, crypto.ErrOutOfBounds
	}
	if srcOfs < 0 || srcOfs+count > len(src) || dstOfs < 0 || dstOfs+count > len(dst) {
		return 0, crypto.ErrOutOfBounds
	}

	for n := 0; n < count; n++ {
		if m.ivBytesLeft == 0 {
			m.engine.ProcessBlock(true, m.iv, 0, m.iv, 0)
			m.ivBytesLeft = m.blockSize
		}
		pos := m.blockSize - m.ivBytesLeft
		c := m.iv[pos] ^ src[srcOfs+n]
		dst[dstOfs+n] = c
		m.iv[pos] = c
		m.ivBytesLeft--
	}
	return count, nil
}

// Decrypt decrypts count bytes from src[srcOfs:] into dst[dstOfs:] and
// returns the number of bytes written. Every consumed IV byte is replaced
// with the incoming ciphertext byte, including on a call that starts or
// ends mid-block, so that a sequence of short calls stays synchronized
// with an equivalent single call.
func (m *CfbMode) Decrypt(src []byte, srcOfs int, dst []byte, dstOfs int, count int) (int, error) {
	if !m.engine.Initialized() {
		return 0, crypto.ErrInstanceInvalidated
	}
	if count < 0 {
		return 0, crypto.ErrOutOfBounds
	}
	if srcOfs < 0 || srcOfs+count > len(src) || dstOfs < 0 || dstOfs+count > len(dst) {
		return 0, crypto.ErrOutOfBounds
	}

	for n := 0; n < count; n++ {
		if m.ivBytesLeft == 0 {
			m.engine.ProcessBlock(true, m.iv, 0, m.iv, 0)
			m.ivBytesLeft = m.blockSize
		}
		pos := m.blockSize - m.ivBytesLeft
		c := src[srcOfs+n]
		dst[dstOfs+n] = m.iv[pos] ^ c
		m.iv[pos] = c
		m.ivBytesLeft--
	}
	return count, nil
}
