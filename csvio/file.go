package csvio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Compressed reports whether path names a zstd-compressed file.
func Compressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".zst")
}

type zstdReadCloser struct {
	*zstd.Decoder
	file *os.File
}

func (z *zstdReadCloser) Close() error {
	z.Decoder.Close()
	return z.file.Close()
}

// Open opens path for reading, decompressing it when the name ends in .zst.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: %w", err)
	}

	if !Compressed(path) {
		return f, nil
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csvio: zstd %s: %w", path, err)
	}

	return &zstdReadCloser{Decoder: dec, file: f}, nil
}

type zstdWriteCloser struct {
	*zstd.Encoder
	file *os.File
}

func (z *zstdWriteCloser) Close() error {
	return errors.Join(z.Encoder.Close(), z.file.Close())
}

// Create creates or truncates path for writing, compressing the output
// when the name ends in .zst.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: %w", err)
	}

	if !Compressed(path) {
		return f, nil
	}

	enc, err := zstd.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csvio: zstd %s: %w", path, err)
	}

	return &zstdWriteCloser{Encoder: enc, file: f}, nil
}
