package codec

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/acerv/libvest/str"
)

type fileOptions struct {
	compression Compression
	logger      *slog.Logger
}

// FileOption is a configuration option for Save and Load.
type FileOption func(*fileOptions)

// WithCompression selects the payload compression for Save.
func WithCompression(c Compression) FileOption {
	return func(o *fileOptions) {
		o.compression = c
	}
}

// WithLogger attaches a structured logger to Save and Load. Without
// one, file operations are silent.
func WithLogger(logger *slog.Logger) FileOption {
	return func(o *fileOptions) {
		o.logger = logger
	}
}

func applyFileOptions(opts []FileOption) fileOptions {
	o := fileOptions{
		compression: CompressionNone,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Save writes a snapshot of s to path. The snapshot is written to a
// temporary file in the same directory and renamed into place, so a
// crash mid-write never leaves a torn snapshot behind.
func Save(path string, s *str.String, opts ...FileOption) error {
	o := applyFileOptions(opts)

	var buf bytes.Buffer
	if err := EncodeString(&buf, s, o.compression); err != nil {
		o.logger.Error("snapshot encode failed",
			"path", path,
			"error", err,
		)
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("codec: create temp file: %w", err)
	}

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("codec: write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("codec: close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("codec: rename snapshot: %w", err)
	}

	o.logger.Info("snapshot saved",
		"path", path,
		"length", s.Length(),
		"bytes", buf.Len(),
		"compression", o.compression.String(),
	)

	return nil
}

// Load reads a snapshot written by Save.
func Load(path string, opts ...FileOption) (*str.String, error) {
	o := applyFileOptions(opts)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("codec: read snapshot: %w", err)
	}

	s, err := DecodeString(bytes.NewReader(data))
	if err != nil {
		o.logger.Error("snapshot decode failed",
			"path", path,
			"error", err,
		)
		return nil, err
	}

	o.logger.Info("snapshot loaded",
		"path", path,
		"length", s.Length(),
	)

	return s, nil
}
