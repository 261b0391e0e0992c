package blowfish

import (
	"crypto/sha1"
	"encoding/base64"

	"github.com/rs/zerolog/log"

	"github.com/gongzunpan/blowfish/crypto/engines"
	"github.com/gongzunpan/blowfish/crypto/modes"
	"github.com/gongzunpan/blowfish/crypto/paddings"
	"github.com/gongzunpan/blowfish/util"
)

const (
	saltLength     = 20
	checksumLength = 20
)

// SimpleEnvelope is a password-based string encryption facility: a
// password is hashed into a Blowfish key (SHA-1, unsalted — a documented
// weakness preserved for on-disk compatibility, not a design recommendation),
// and Encrypt/Decrypt produce base64(IV || CBC-ciphertext) envelopes using
// the historical pad-value-equals-length-mod-8 padding.
// Reference: grounded on crypto/modes/padded_buffered_block_cipher.go
// (teacher)'s buffering idiom and crypto/paddings/pkcs7.go's padding
// interface shape; the pad scheme itself is SimplePadding, not PKCS7.
type SimpleEnvelope struct {
	cbc         *modes.CbcMode
	padding     *paddings.SimplePadding
	random      RandomSource
	keyChecksum string
}

// NewSimpleEnvelope derives a Blowfish key from password via SHA-1,
// generates a salt, and computes the key checksum exposed by KeyChecksum.
// The raw password bytes and the derived key are zeroed once they have
// been consumed by the cipher's key schedule.
func NewSimpleEnvelope(password string, random RandomSource) (*SimpleEnvelope, error) {
	keyRaw := []byte(password)
	defer util.Zero(keyRaw)

	keyDigest := sha1.Sum(keyRaw)
	key := keyDigest[:]
	defer util.Zero(key)

	cbc, err := modes.NewCbcMode(key)
	if err != nil {
		return nil, err
	}

	salt := make([]byte, saltLength)
	if err := random.Fill(salt); err != nil {
		return nil, err
	}

	checksum := sha1Sum(util.Concat(salt, keyRaw))

	env := &SimpleEnvelope{
		cbc:         cbc,
		padding:     paddings.NewSimplePadding(),
		random:      random,
		keyChecksum: base64.StdEncoding.EncodeToString(util.Concat(salt, checksum)),
	}
	return env, nil
}

// NewSimpleEnvelopeWithConfig behaves like NewSimpleEnvelope, but first
// validates cfg and, if cfg.SelfTest.RunOnInit is set, runs
// engines.SelfTest before deriving the key, failing construction on a
// self-test mismatch instead of proceeding with a possibly broken engine.
func NewSimpleEnvelopeWithConfig(password string, random RandomSource, cfg Config) (*SimpleEnvelope, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := runSelfTestIfConfigured(cfg); err != nil {
		return nil, err
	}
	return NewSimpleEnvelope(password, random)
}

func sha1Sum(b []byte) []byte {
	sum := sha1.Sum(b)
	return sum[:]
}

// KeyChecksum returns base64(salt(20) || SHA1(salt || utf8(password))(20)),
// suitable for offline password verification via VerifyKey.
func (e *SimpleEnvelope) KeyChecksum() string {
	return e.keyChecksum
}

// Encrypt pads the UTF-8 bytes of plaintext with SimplePadding, generates a
// fresh random IV, and returns base64(iv || CBC-ciphertext).
func (e *SimpleEnvelope) Encrypt(plaintext string) (string, error) {
	buf := []byte(plaintext)
	padded := make([]byte, len(buf)+blockPadLength(len(buf)))
	copy(padded, buf)
	e.padding.AddPadding(padded, len(buf))

	iv := make([]byte, engines.BlockSize)
	if err := e.random.Fill(iv); err != nil {
		return "", err
	}
	if err := e.cbc.SetIV(iv); err != nil {
		return "", err
	}

	ciphertext := make([]byte, len(padded))
	if _, err := e.cbc.Encrypt(padded, 0, ciphertext, 0, len(padded)); err != nil {
		return "", err
	}

	out := util.Concat(iv, ciphertext)
	return base64.StdEncoding.EncodeToString(out), nil
}

// blockPadLength returns how many bytes SimplePadding will append to a
// buffer of length n to round it up to the next multiple of 8 (or a full
// block of zero-value padding, per the documented quirk, if n is already
// aligned).
func blockPadLength(n int) int {
	mod := n % engines.BlockSize
	return engines.BlockSize - mod
}

// Decrypt reverses Encrypt, collapsing every failure mode — malformed
// base64, a ciphertext shorter than one IV block, or an out-of-range
// padding byte — into ok == false, so no failure mode is distinguishable
// to the caller (the padding-oracle mitigation spec.md §7/§9.2 calls for).
func (e *SimpleEnvelope) Decrypt(ciphertext string) (string, bool) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		log.Debug().Msg("envelope: decrypt failed base64 decode")
		return "", false
	}
	if len(raw) < engines.BlockSize {
		log.Debug().Msg("envelope: decrypt ciphertext shorter than one IV block")
		return "", false
	}

	iv := raw[:engines.BlockSize]
	body := raw[engines.BlockSize:]
	dataLen := (len(body) / engines.BlockSize) * engines.BlockSize

	if dataLen < engines.BlockSize {
		log.Debug().Msg("envelope: decrypt ciphertext has no full data block")
		return "", false
	}

	if err := e.cbc.SetIV(iv); err != nil {
		log.Debug().Msg("envelope: decrypt bad IV length")
		return "", false
	}

	decrypted := make([]byte, dataLen)
	if _, err := e.cbc.Decrypt(body[:dataLen], 0, decrypted, 0, dataLen); err != nil {
		log.Debug().Msg("envelope: decrypt failed")
		return "", false
	}

	padCount, err := e.padding.PadCount(decrypted[dataLen-engines.BlockSize : dataLen])
	if err != nil {
		log.Debug().Msg("envelope: decrypt bad padding")
		return "", false
	}

	plainLen := dataLen - padCount
	log.Debug().Msg("envelope: decrypt succeeded")
	return string(decrypted[:plainLen]), true
}

// VerifyKey reports whether password reproduces storedChecksum (a value
// previously returned by KeyChecksum), using a constant-time comparison of
// the computed digest against the stored one.
func VerifyKey(password, storedChecksum string) bool {
	raw, err := base64.StdEncoding.DecodeString(storedChecksum)
	if err != nil || len(raw) != saltLength+checksumLength {
		return false
	}

	salt := raw[:saltLength]
	expected := raw[saltLength:]

	keyRaw := []byte(password)
	defer util.Zero(keyRaw)

	computed := sha1Sum(util.Concat(salt, keyRaw))

	ok := util.ConstantTimeCompare(computed, expected)
	log.Debug().Bool("ok", ok).Msg("envelope: key verification attempt")
	return ok
}
