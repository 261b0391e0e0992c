package engines

import (
	"encoding/hex"
	"fmt"

	"github.com/gongzunpan/blowfish/crypto"
	"github.com/gongzunpan/blowfish/crypto/params"
)

// SelfTest runs the engine against every embedded vector in
// selfTestVectors and returns crypto.ErrSelfTestFailed, wrapping the index
// and expected/actual ciphertext, for the first mismatch. It returns nil if
// every vector matches.
func SelfTest() error {
	for i, v := range selfTestVectors {
		key, err := hex.DecodeString(v.key)
		if err != nil {
			return fmt.Errorf("%w: vector %d: bad key fixture: %v", crypto.ErrSelfTestFailed, i, err)
		}
		plaintext, err := hex.DecodeString(v.plaintext)
		if err != nil {
			return fmt.Errorf("%w: vector %d: bad plaintext fixture: %v", crypto.ErrSelfTestFailed, i, err)
		}
		want, err := hex.DecodeString(v.ciphertext)
		if err != nil {
			return fmt.Errorf("%w: vector %d: bad ciphertext fixture: %v", crypto.ErrSelfTestFailed, i, err)
		}

		e := NewEngine()
		if err := e.Init(true, params.NewKeyParameter(key)); err != nil {
			return fmt.Errorf("%w: vector %d: init: %v", crypto.ErrSelfTestFailed, i, err)
		}

		got := make([]byte, BlockSize)
		e.ProcessBlock(true, plaintext, 0, got, 0)
		if hex.EncodeToString(got) != v.ciphertext {
			return fmt.Errorf("%w: vector %d: got %x want %x", crypto.ErrSelfTestFailed, i, got, want)
		}

		// Round-trip: decrypting the ciphertext must recover the plaintext.
		back := make([]byte, BlockSize)
		e.ProcessBlock(false, got, 0, back, 0)
		if hex.EncodeToString(back) != v.plaintext {
			return fmt.Errorf("%w: vector %d: decrypt did not recover plaintext", crypto.ErrSelfTestFailed, i)
		}
	}
	return nil
}
