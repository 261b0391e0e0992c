// Package engines implements cryptographic cipher engines.
package engines

import (
	"fmt"

	"github.com/gongzunpan/blowfish/crypto"
	"github.com/gongzunpan/blowfish/crypto/params"
	"github.com/gongzunpan/blowfish/util"
)

// BlockSize is the Blowfish block size in bytes (64 bits).
const BlockSize = 8

// MaxKeyLength is the largest key, in bytes, the key schedule accepts.
const MaxKeyLength = 56

// Engine implements the Blowfish key schedule and 16-round Feistel block
// cipher.
// Reference: Bruce Schneier, "Description of a New Variable-Length Key,
// 64-Bit Block Cipher (Blowfish)"; structural pattern grounded on
// sm-go-bc's crypto/engines/zuc256.go (error-returning Init) and
// crypto/digests/sm3.go (Memoable Copy/ResetMemoable for Clone).
type Engine struct {
	p           [18]uint32
	s           [4][256]uint32
	initialized bool
	weakKey     bool
}

// NewEngine creates a new, uninitialized Blowfish engine.
func NewEngine() *Engine {
	return &Engine{}
}

// GetAlgorithmName returns the algorithm name.
func (e *Engine) GetAlgorithmName() string {
	return "Blowfish"
}

// GetBlockSize returns the block size in bytes.
func (e *Engine) GetBlockSize() int {
	return BlockSize
}

// Init loads the canonical pi-derived constants, applies the key schedule
// from the supplied key material, and records whether the resulting S-boxes
// contain a weak-key collision. forEncryption is not stored: the key
// schedule is identical either way, and ProcessBlock takes its direction as
// its own argument on every call.
func (e *Engine) Init(forEncryption bool, p crypto.CipherParameters) error {
	keyParam, ok := p.(*params.KeyParameter)
	if !ok {
		return fmt.Errorf("blowfish: Init requires a *params.KeyParameter")
	}

	key := keyParam.GetKey()
	if len(key) > MaxKeyLength {
		return crypto.ErrBadKeyLength
	}

	e.p = piP
	e.s = piS
	e.setKey(key)
	e.weakKey = e.detectWeakKey()
	e.initialized = true

	// ProcessBlock receives its direction per call; nothing to do here.
	_ = forEncryption
	return nil
}

// setKey runs the key schedule: XOR P with the key bytes cyclically, then
// repeatedly self-encrypt to fill P and every S-box.
func (e *Engine) setKey(key []byte) {
	if len(key) > 0 {
		ki := 0
		for i := 0; i < 18; i++ {
			var word uint32
			for b := 0; b < 4; b++ {
				word = (word << 8) | uint32(key[ki%len(key)])
				ki++
			}
			e.p[i] ^= word
		}
	}

	var hi, lo uint32
	for i := 0; i < 18; i += 2 {
		hi, lo = e.encryptHalves(hi, lo)
		e.p[i] = hi
		e.p[i+1] = lo
	}

	for box := 0; box < 4; box++ {
		for i := 0; i < 256; i += 2 {
			hi, lo = e.encryptHalves(hi, lo)
			e.s[box][i] = hi
			e.s[box][i+1] = lo
		}
	}
}

func (e *Engine) detectWeakKey() bool {
	for box := 0; box < 4; box++ {
		seen := make(map[uint32]struct{}, 256)
		for _, v := range e.s[box] {
			if _, dup := seen[v]; dup {
				return true
			}
			seen[v] = struct{}{}
		}
	}
	return false
}

// WeakKey reports whether the key schedule produced a duplicate S-box entry.
// Advisory only; Blowfish has no hard requirement to reject weak keys.
func (e *Engine) WeakKey() bool {
	return e.weakKey
}

// Initialized reports whether the engine currently holds a valid,
// schedule-expanded key — true from Init until the next Invalidate. Modes
// consult this before delegating to ProcessBlock so that an operation on an
// invalidated instance fails with crypto.ErrInstanceInvalidated instead of
// hitting ProcessBlock's uninitialized-use panic.
func (e *Engine) Initialized() bool {
	return e.initialized
}

// round computes F(x) = ((S1[a] + S2[b]) XOR S3[c]) + S4[d], all modulo
// 2^32, where a,b,c,d are x's bytes from high to low.
func (e *Engine) round(x uint32) uint32 {
	a := byte(x >> 24)
	b := byte(x >> 16)
	c := byte(x >> 8)
	d := byte(x)
	return ((e.s[0][a] + e.s[1][b]) ^ e.s[2][c]) + e.s[3][d]
}

// encryptHalves runs the 16-round Feistel network forward over (hi, lo).
func (e *Engine) encryptHalves(hi, lo uint32) (uint32, uint32) {
	for i := 0; i < 16; i++ {
		hi ^= e.p[i]
		lo ^= e.round(hi)
		hi, lo = lo, hi
	}
	hi, lo = lo, hi
	lo ^= e.p[16]
	hi ^= e.p[17]
	return hi, lo
}

// decryptHalves runs the same Feistel network with P consumed in reverse.
func (e *Engine) decryptHalves(hi, lo uint32) (uint32, uint32) {
	for i := 17; i > 1; i-- {
		hi ^= e.p[i]
		lo ^= e.round(hi)
		hi, lo = lo, hi
	}
	hi, lo = lo, hi
	lo ^= e.p[1]
	hi ^= e.p[0]
	return hi, lo
}

// ProcessBlock encrypts or decrypts exactly one 8-byte block, reading the
// first four bytes as hi (big-endian) and the next four as lo. It panics if
// in or out is too short for the given offset — a programmer error, not a
// caller-input error — and if the engine has not been initialized or has
// been invalidated.
func (e *Engine) ProcessBlock(forEncryption bool, in []byte, inOff int, out []byte, outOff int) int {
	if !e.initialized {
		panic("blowfish: ProcessBlock on uninitialized or invalidated engine")
	}
	if inOff+BlockSize > len(in) {
		panic("blowfish: input buffer too short")
	}
	if outOff+BlockSize > len(out) {
		panic("blowfish: output buffer too short")
	}

	hi := util.BigEndianToUint32(in, inOff)
	lo := util.BigEndianToUint32(in, inOff+4)

	if forEncryption {
		hi, lo = e.encryptHalves(hi, lo)
	} else {
		hi, lo = e.decryptHalves(hi, lo)
	}

	util.Uint32ToBigEndian(hi, out, outOff)
	util.Uint32ToBigEndian(lo, out, outOff+4)

	return BlockSize
}

// Reset is a no-op for the bare engine: unlike a mode, it carries no
// chaining state, only the key schedule set by Init.
func (e *Engine) Reset() {}

// Invalidate zeroes the expanded key schedule. Any subsequent ProcessBlock
// call panics until Init is called again.
func (e *Engine) Invalidate() {
	e.p = [18]uint32{}
	e.s = [4][256]uint32{}
	e.initialized = false
	e.weakKey = false
}

// Clone returns an independent copy of the engine's expanded key schedule.
// Reference: crypto/digests/sm3.go's Copy/ResetMemoable pattern, specialized
// to return the concrete type since Engine is never stored polymorphically.
func (e *Engine) Clone() *Engine {
	clone := &Engine{
		p:           e.p,
		s:           e.s,
		initialized: e.initialized,
		weakKey:     e.weakKey,
	}
	return clone
}

var _ crypto.BlockCipher = (*engineAdapter)(nil)

// engineAdapter adapts Engine (which needs a forEncryption flag per call,
// since a RoundEngine has no fixed direction) to the crypto.BlockCipher
// interface used by PaddedBufferedBlockCipher, fixing a direction at Init
// time. EcbMode/CbcMode/CfbMode hold an *Engine directly and do not go
// through this adapter.
type engineAdapter struct {
	engine        *Engine
	forEncryption bool
}

// NewEngineAdapter wraps a Engine so it satisfies crypto.BlockCipher with a
// direction fixed at Init time, the same shape the teacher's modes expect
// from their underlying cipher.
func NewEngineAdapter() crypto.BlockCipher {
	return &engineAdapter{engine: NewEngine()}
}

func (a *engineAdapter) Init(forEncryption bool, p crypto.CipherParameters) error {
	a.forEncryption = forEncryption
	return a.engine.Init(forEncryption, p)
}

func (a *engineAdapter) GetAlgorithmName() string { return a.engine.GetAlgorithmName() }
func (a *engineAdapter) GetBlockSize() int        { return a.engine.GetBlockSize() }

func (a *engineAdapter) ProcessBlock(in []byte, inOff int, out []byte, outOff int) int {
	return a.engine.ProcessBlock(a.forEncryption, in, inOff, out, outOff)
}

func (a *engineAdapter) Reset() { a.engine.Reset() }
