// Package paddings implements block cipher padding schemes.
package paddings

import (
	"errors"

	"github.com/gongzunpan/blowfish/crypto"
)

// SimplePadding implements the envelope's historical padding scheme. It is
// NOT PKCS#7: where PKCS#7 writes the pad length itself into every pad byte,
// this scheme writes `len(plaintext) mod 8` instead, so an already
// 8-byte-aligned plaintext pads with a full block of zero bytes rather than
// a full block of 0x08. New callers should prefer PKCS7Padding; this type
// exists only so the on-disk format produced by SimpleEnvelope stays
// byte-compatible with the historical encoder.
// Reference: grounded on crypto/paddings/pkcs7.go's AddPadding/PadCount
// shape, with the pad-byte value swapped per the quirk this module's
// envelope format requires.
type SimplePadding struct{}

// NewSimplePadding creates a new SimplePadding instance.
func NewSimplePadding() *SimplePadding {
	return &SimplePadding{}
}

// GetPaddingName returns the name of the padding.
func (p *SimplePadding) GetPaddingName() string {
	return "Simple"
}

// AddPadding fills in[inOff:] with copies of `(8 - (len(in)-inOff)) mod 8`,
// which for an 8-byte-aligned in equals the data length inOff mod 8 — not
// the count of padding bytes added, which is len(in)-inOff. Returns the
// number of padding bytes written.
func (p *SimplePadding) AddPadding(in []byte, inOff int) int {
	paddingLen := len(in) - inOff
	mod := byte((8 - paddingLen) % 8)
	for i := inOff; i < len(in); i++ {
		in[i] = mod
	}
	return paddingLen
}

// PadCount reads the last byte of an 8-byte block as mod and recovers the
// padding length as 8-mod. It verifies every padding byte matches, so a
// corrupted or forged block is rejected rather than silently truncated.
func (p *SimplePadding) PadCount(in []byte) (int, error) {
	if len(in) != 8 {
		return 0, errors.New("paddings: SimplePadding requires an 8-byte block")
	}

	mod := in[7]
	if mod > 7 {
		return 0, errors.New("paddings: invalid padding byte value")
	}
	paddingLen := 8 - int(mod)

	for i := 8 - paddingLen; i < 8; i++ {
		if in[i] != mod {
			return 0, errors.New("paddings: invalid padding bytes")
		}
	}

	return paddingLen, nil
}

var _ crypto.BlockCipherPadding = (*SimplePadding)(nil)
