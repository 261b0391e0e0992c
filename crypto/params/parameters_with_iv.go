package params

import "github.com/gongzunpan/blowfish/crypto"

// ParametersWithIV wraps cipher parameters together with an initialization
// vector, for CBC and CFB.
// Reference: org.bouncycastle.crypto.params.ParametersWithIV
type ParametersWithIV struct {
	iv         []byte
	parameters crypto.CipherParameters
}

// NewParametersWithIV creates parameters with an IV, defensively copying iv.
func NewParametersWithIV(parameters crypto.CipherParameters, iv []byte) *ParametersWithIV {
	ivCopy := make([]byte, len(iv))
	copy(ivCopy, iv)

	return &ParametersWithIV{
		iv:         ivCopy,
		parameters: parameters,
	}
}

// GetIV returns the initialization vector.
func (p *ParametersWithIV) GetIV() []byte {
	return p.iv
}

// GetParameters returns the underlying cipher parameters (nil for an
// IV-only re-key that intends to reuse the previously set key).
func (p *ParametersWithIV) GetParameters() crypto.CipherParameters {
	return p.parameters
}

// IsCipherParameters implements the CipherParameters marker interface.
func (p *ParametersWithIV) IsCipherParameters() bool {
	return true
}

var _ crypto.CipherParameters = (*ParametersWithIV)(nil)
