package books

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"
)

// FileSource reads books from a local JSON or JSONC file. Comments and
// trailing commas are stripped before decoding.
type FileSource struct {
	Path string
}

// FetchBooks reads and normalizes the file.
func (f *FileSource) FetchBooks(ctx context.Context) ([]Book, error) {
	if f == nil || strings.TrimSpace(f.Path) == "" {
		return nil, fmt.Errorf("file source has no path")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	items, err := decodeBooks(jsonc.ToJSON(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.Path, err)
	}
	return items, nil
}

// NewSource picks a Fetcher for source: http(s) URLs get a Client, anything
// else is treated as a file path. An empty source uses DefaultEndpoint.
func NewSource(source string, opts ...ClientOption) (Fetcher, error) {
	trimmed := strings.TrimSpace(source)
	lower := strings.ToLower(trimmed)
	if trimmed == "" || strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewClient(trimmed, opts...)
	}
	return &FileSource{Path: strings.TrimPrefix(trimmed, "file://")}, nil
}
