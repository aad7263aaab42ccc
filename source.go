package huffstat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrInputUnavailable indicates that the input could not be opened or read
// to completion.
var ErrInputUnavailable = errors.New("input unavailable")

// StdinPath is the SourceConfig.Path that selects standard input.
const StdinPath = "-"

// SourceConfig describes where to read input from.
type SourceConfig struct {
	// Path is the file to read, or StdinPath.
	Path string

	// SizeHint is the expected input size in bytes.  It only affects
	// buffer preallocation.
	SizeHint int
}

// ReadSource reads the whole input described by cfg.  Any failure is
// reported as an error wrapping ErrInputUnavailable.
func ReadSource(ctx context.Context, cfg SourceConfig) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputUnavailable, cfg.Path, err)
	}

	if cfg.Path == StdinPath || cfg.Path == "" {
		data, err := ReadFrom(os.Stdin, cfg.SizeHint)
		if err != nil {
			return nil, fmt.Errorf("%w: <stdin>: %v", ErrInputUnavailable, err)
		}
		return data, nil
	}

	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputUnavailable, err)
	}
	defer f.Close()

	sizeHint := cfg.SizeHint
	if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() && fi.Size() > int64(sizeHint) {
		sizeHint = int(fi.Size())
	}

	data, err := ReadFrom(f, sizeHint)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputUnavailable, cfg.Path, err)
	}
	return data, nil
}

// ReadFrom reads r to EOF into a buffer preallocated for sizeHint bytes.
func ReadFrom(r io.Reader, sizeHint int) ([]byte, error) {
	var buf bytes.Buffer
	if sizeHint > 0 {
		// Buffer.ReadFrom grows unless MinRead bytes are spare when EOF arrives.
		buf.Grow(sizeHint + bytes.MinRead)
	}
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
