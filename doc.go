// Package blowfish provides a pure Go implementation of the Blowfish
// symmetric block cipher: the round engine, three modes of operation
// (ECB, CBC, CFB), a password-based string envelope, and a streaming
// adapter compatible with an external peer implementation.
//
// # Installation
//
//	go get github.com/gongzunpan/blowfish
//
// # Block Cipher Example
//
//	import (
//	    "github.com/gongzunpan/blowfish/crypto/engines"
//	    "github.com/gongzunpan/blowfish/crypto/modes"
//	)
//
//	cbc, err := modes.NewCbcMode(key)
//	if err != nil {
//	    // bad key length
//	}
//	cbc.SetIV(iv)
//	n, err := cbc.Encrypt(plaintext, 0, ciphertext, 0, len(plaintext))
//
// # Password Envelope Example
//
//	env, err := blowfish.NewSimpleEnvelope("hunter2", blowfish.NewCryptoRandomSource())
//	encrypted, err := env.Encrypt("attack at dawn")
//	plaintext, ok := env.Decrypt(encrypted)
//
// # Stream Adapter Example
//
//	writer, err := blowfish.NewStreamWriter(underlying, key)
//	writer.Write([]byte("hello"))
//	writer.Close() // emits the length-prefixed, CFB-encrypted frame
//
// For engine-level details, self-test vectors, and the envelope wire
// format, see SPEC_FULL.md in the repository root.
package blowfish
