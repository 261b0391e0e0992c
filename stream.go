package blowfish

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/gongzunpan/blowfish/crypto/modes"
)

// lengthHeaderSize is the width, in bytes, of the stream wire format's
// little-endian payload-length prefix.
const lengthHeaderSize = 4

// StreamWriter buffers written bytes in memory and, on Close, emits the
// wire format an external peer expects: a 4-byte little-endian length
// header followed by the CFB ciphertext of the buffered payload. Close is
// mandatory — nothing is written to the underlying stream before it runs.
// Reference: spec.md §4.6; CfbMode supplies the keystream (crypto/modes/cfb.go).
type StreamWriter struct {
	underlying io.Writer
	cfb        *modes.CfbMode
	buf        bytes.Buffer
	sessionID  uuid.UUID
	closed     bool
}

// NewStreamWriter creates a StreamWriter keyed with key, writing the
// framed, encrypted payload to underlying once Close is called.
func NewStreamWriter(underlying io.Writer, key []byte) (*StreamWriter, error) {
	cfb, err := modes.NewCfbMode(key)
	if err != nil {
		return nil, err
	}
	return &StreamWriter{
		underlying: underlying,
		cfb:        cfb,
		sessionID:  uuid.New(),
	}, nil
}

// NewStreamWriterWithConfig behaves like NewStreamWriter, but first
// validates cfg and, if cfg.SelfTest.RunOnInit is set, runs
// engines.SelfTest before keying the underlying CfbMode.
func NewStreamWriterWithConfig(underlying io.Writer, key []byte, cfg Config) (*StreamWriter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := runSelfTestIfConfigured(cfg); err != nil {
		return nil, err
	}
	return NewStreamWriter(underlying, key)
}

// Write buffers p in memory; nothing reaches the underlying stream until
// Close.
func (w *StreamWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Close encrypts the buffered payload and writes the length-prefixed
// frame to the underlying stream. Calling Close more than once is a no-op.
func (w *StreamWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	payload := w.buf.Bytes()
	header := make([]byte, lengthHeaderSize)
	binary.LittleEndian.PutUint32(header, uint32(len(payload)))

	ciphertext := make([]byte, len(payload))
	if _, err := w.cfb.Encrypt(payload, 0, ciphertext, 0, len(payload)); err != nil {
		return err
	}

	log.Debug().Str("session", w.sessionID.String()).Int("length", len(payload)).Msg("stream: closing write frame")

	if _, err := w.underlying.Write(header); err != nil {
		return err
	}
	_, err := w.underlying.Write(ciphertext)
	return err
}

// StreamReader consumes the 4-byte length header from an underlying
// stream on its first Read, then CFB-decrypts exactly that many payload
// bytes on demand. Reads beyond the framed length return io.EOF.
type StreamReader struct {
	underlying io.Reader
	cfb        *modes.CfbMode
	sessionID  uuid.UUID
	headerRead bool
	remaining  int
}

// NewStreamReader creates a StreamReader keyed with key, reading a framed,
// encrypted payload from underlying.
func NewStreamReader(underlying io.Reader, key []byte) (*StreamReader, error) {
	cfb, err := modes.NewCfbMode(key)
	if err != nil {
		return nil, err
	}
	return &StreamReader{
		underlying: underlying,
		cfb:        cfb,
		sessionID:  uuid.New(),
	}, nil
}

// NewStreamReaderWithConfig behaves like NewStreamReader, but first
// validates cfg and, if cfg.SelfTest.RunOnInit is set, runs
// engines.SelfTest before keying the underlying CfbMode.
func NewStreamReaderWithConfig(underlying io.Reader, key []byte, cfg Config) (*StreamReader, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := runSelfTestIfConfigured(cfg); err != nil {
		return nil, err
	}
	return NewStreamReader(underlying, key)
}

// Read decrypts up to len(p) bytes of the framed payload into p. On the
// first call it first reads and decodes the 4-byte length header.
func (r *StreamReader) Read(p []byte) (int, error) {
	if !r.headerRead {
		header := make([]byte, lengthHeaderSize)
		if _, err := io.ReadFull(r.underlying, header); err != nil {
			return 0, err
		}
		r.remaining = int(binary.LittleEndian.Uint32(header))
		r.headerRead = true
		log.Debug().Str("session", r.sessionID.String()).Int("length", r.remaining).Msg("stream: opened read frame")
	}

	if r.remaining == 0 {
		return 0, io.EOF
	}

	n := len(p)
	if n > r.remaining {
		n = r.remaining
	}

	ciphertext := make([]byte, n)
	read, err := io.ReadFull(r.underlying, ciphertext)
	if read > 0 {
		if _, decErr := r.cfb.Decrypt(ciphertext[:read], 0, p[:read], 0, read); decErr != nil {
			return 0, decErr
		}
		r.remaining -= read
	}
	if err != nil {
		return read, err
	}
	return read, nil
}
