package modes

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gongzunpan/blowfish/crypto"
)

func TestEcbModeAlgorithmName(t *testing.T) {
	m, err := NewEcbMode([]byte("0123456789abcdef"))
	if err != nil {
		t.Fatalf("NewEcbMode: %v", err)
	}
	if m.GetAlgorithmName() != "Blowfish/ECB" {
		t.Errorf("expected 'Blowfish/ECB', got %q", m.GetAlgorithmName())
	}
}

func TestEcbModeBulkRoundtrip(t *testing.T) {
	key := make([]byte, 56)
	for i := range key {
		key[i] = byte(i * 7)
	}
	plaintext := make([]byte, 800)
	for i := range plaintext {
		plaintext[i] = byte(i)
	}

	m, err := NewEcbMode(key)
	if err != nil {
		t.Fatalf("NewEcbMode: %v", err)
	}
	ciphertext := make([]byte, len(plaintext))
	if _, err := m.Encrypt(plaintext, 0, ciphertext, 0, len(plaintext)); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	d, err := NewEcbMode(key)
	if err != nil {
		t.Fatalf("NewEcbMode: %v", err)
	}
	decrypted := make([]byte, len(ciphertext))
	if _, err := d.Decrypt(ciphertext, 0, decrypted, 0, len(ciphertext)); err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	if !bytes.Equal(plaintext, decrypted) {
		t.Fatalf("ECB roundtrip failed")
	}
}

func TestEcbModeUnalignedCount(t *testing.T) {
	m, err := NewEcbMode([]byte("0123456789abcdef"))
	if err != nil {
		t.Fatalf("NewEcbMode: %v", err)
	}
	src := make([]byte, 10)
	dst := make([]byte, 10)
	if _, err := m.Encrypt(src, 0, dst, 0, 10); err == nil {
		t.Errorf("expected Unaligned error for a count not a multiple of the block size")
	}
}

func TestEcbModeOutOfBounds(t *testing.T) {
	m, err := NewEcbMode([]byte("0123456789abcdef"))
	if err != nil {
		t.Fatalf("NewEcbMode: %v", err)
	}
	src := make([]byte, 8)
	dst := make([]byte, 8)
	if _, err := m.Encrypt(src, 4, dst, 0, 8); err == nil {
		t.Errorf("expected OutOfBounds error for a count reading past the source buffer")
	}
}

func TestEcbModeInPlace(t *testing.T) {
	m, err := NewEcbMode([]byte("0123456789abcdef"))
	if err != nil {
		t.Fatalf("NewEcbMode: %v", err)
	}
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	original := append([]byte(nil), buf...)

	if _, err := m.Encrypt(buf, 0, buf, 0, 8); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if bytes.Equal(buf, original) {
		t.Errorf("in-place encryption did not change the buffer")
	}

	d, err := NewEcbMode([]byte("0123456789abcdef"))
	if err != nil {
		t.Fatalf("NewEcbMode: %v", err)
	}
	if _, err := d.Decrypt(buf, 0, buf, 0, 8); err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(buf, original) {
		t.Errorf("in-place roundtrip did not recover the original bytes")
	}
}

func TestEcbModeCloneIndependence(t *testing.T) {
	m, err := NewEcbMode([]byte("0123456789abcdef"))
	if err != nil {
		t.Fatalf("NewEcbMode: %v", err)
	}
	clone := m.Clone()
	clone.Invalidate()

	src := make([]byte, 8)
	dst := make([]byte, 8)
	if _, err := m.Encrypt(src, 0, dst, 0, 8); err != nil {
		t.Errorf("original should be unaffected by invalidating its clone: %v", err)
	}
}

func TestEcbModeInvalidatedInstanceFails(t *testing.T) {
	m, err := NewEcbMode([]byte("0123456789abcdef"))
	if err != nil {
		t.Fatalf("NewEcbMode: %v", err)
	}
	m.Invalidate()

	src := make([]byte, 8)
	dst := make([]byte, 8)
	if _, err := m.Encrypt(src, 0, dst, 0, 8); !errors.Is(err, crypto.ErrInstanceInvalidated) {
		t.Errorf("expected ErrInstanceInvalidated from Encrypt, got %v", err)
	}
	if _, err := m.Decrypt(src, 0, dst, 0, 8); !errors.Is(err, crypto.ErrInstanceInvalidated) {
		t.Errorf("expected ErrInstanceInvalidated from Decrypt, got %v", err)
	}
}
