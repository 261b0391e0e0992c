// Package params provides cipher parameter types passed to Init.
package params

import "github.com/gongzunpan/blowfish/crypto"

// KeyParameter holds raw Blowfish key material.
// Reference: org.bouncycastle.crypto.params.KeyParameter
type KeyParameter struct {
	key []byte
}

// NewKeyParameter creates a new key parameter, defensively copying key.
func NewKeyParameter(key []byte) *KeyParameter {
	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)
	return &KeyParameter{key: keyCopy}
}

// GetKey returns the key bytes.
func (kp *KeyParameter) GetKey() []byte {
	return kp.key
}

// IsCipherParameters implements the CipherParameters marker interface.
func (kp *KeyParameter) IsCipherParameters() bool {
	return true
}

var _ crypto.CipherParameters = (*KeyParameter)(nil)
