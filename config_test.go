package blowfish

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigMatchesDocumentedDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.SelfTest.RunOnInit)
	assert.Equal(t, 8, cfg.CFB.SegmentBits)
	require.NoError(t, cfg.validate())
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverlaysPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blowfish.toml")
	require.NoError(t, os.WriteFile(path, []byte("[selftest]\nrun_on_init = true\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.SelfTest.RunOnInit)
	assert.Equal(t, 8, cfg.CFB.SegmentBits)
}

func TestConfigValidateRejectsUnsupportedSegmentBits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CFB.SegmentBits = 1
	assert.Error(t, cfg.validate())
}

func TestNewSimpleEnvelopeWithConfigRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CFB.SegmentBits = 64
	_, err := NewSimpleEnvelopeWithConfig("hunter2", NewCryptoRandomSource(), cfg)
	assert.Error(t, err)
}

func TestNewSimpleEnvelopeWithConfigRunsSelfTest(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SelfTest.RunOnInit = true
	env, err := NewSimpleEnvelopeWithConfig("hunter2", NewCryptoRandomSource(), cfg)
	require.NoError(t, err)

	encrypted, err := env.Encrypt("attack at dawn")
	require.NoError(t, err)
	decrypted, ok := env.Decrypt(encrypted)
	require.True(t, ok)
	assert.Equal(t, "attack at dawn", decrypted)
}

func TestNewStreamWriterReaderWithConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SelfTest.RunOnInit = true
	key := []byte("0123456789abcdef")

	var wire bytes.Buffer
	w, err := NewStreamWriterWithConfig(&wire, key, cfg)
	require.NoError(t, err)

	payload := []byte("secret payload")
	_, err = w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := NewStreamReaderWithConfig(&wire, key, cfg)
	require.NoError(t, err)

	got := make([]byte, len(payload))
	_, err = r.Read(got)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestNewStreamWriterWithConfigRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CFB.SegmentBits = 4
	var wire bytes.Buffer
	_, err := NewStreamWriterWithConfig(&wire, []byte("0123456789abcdef"), cfg)
	assert.Error(t, err)
}
