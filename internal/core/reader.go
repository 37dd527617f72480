package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"strings"

	"github.com/JonMunkholm/prodtable/internal/logging"
)

// DefaultMaxSize caps the resource size when a reader is built without one.
const DefaultMaxSize int64 = 10 * 1024 * 1024

// utf8BOM is prepended by some spreadsheet exports.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ResourceReader loads a named file from a file system in one shot.
type ResourceReader struct {
	fsys    fs.FS
	name    string
	maxSize int64
}

// NewResourceReader creates a reader for name inside fsys.
// A non-positive maxSize selects DefaultMaxSize.
func NewResourceReader(fsys fs.FS, name string, maxSize int64) *ResourceReader {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &ResourceReader{fsys: fsys, name: name, maxSize: maxSize}
}

// Name returns the resource name.
func (r *ResourceReader) Name() string {
	return r.name
}

// Read returns the full content of the resource decoded as UTF-8.
// A leading BOM is dropped and invalid byte sequences become U+FFFD.
func (r *ResourceReader) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("read cancelled: %w", err)
	}

	f, err := r.fsys.Open(r.name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrResourceNotFound, r.name)
		}
		return "", fmt.Errorf("%w: opening %s: %w", ErrIOFailure, r.name, err)
	}
	defer f.Close()

	// Read one byte past the cap to detect oversized input.
	limit := r.maxSize
	if limit < math.MaxInt64 {
		limit++
	}
	data, err := io.ReadAll(io.LimitReader(f, limit))
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %w", ErrIOFailure, r.name, err)
	}
	if int64(len(data)) > r.maxSize {
		return "", fmt.Errorf("%w: %s is larger than %d bytes", ErrIOFailure, r.name, r.maxSize)
	}

	logging.WithFields(ctx, "resource", r.name).Debug("resource read", "bytes", len(data))

	return decodeUTF8(data), nil
}

// decodeUTF8 strips a UTF-8 BOM and replaces invalid sequences.
func decodeUTF8(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)
	return strings.ToValidUTF8(string(data), "\uFFFD")
}
