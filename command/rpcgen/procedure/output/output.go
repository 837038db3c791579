package output

import (
	"context"
	"os"
	"path/filepath"

	"go.scnd.dev/open/rpcgen/package/span"
)

type Writer struct {
	Path string
}

func NewWriter(path string) *Writer {
	return &Writer{
		Path: path,
	}
}

// Write replaces the client file with content, creating its directory when needed.
func (r *Writer) Write(ctx context.Context, content string) error {
	s, _ := span.With(ctx, "output")
	defer s.End()
	s.Variable("path", r.Path)

	if err := os.MkdirAll(filepath.Dir(r.Path), 0o755); err != nil {
		return s.Error("unable to create client directory", err)
	}
	if err := os.WriteFile(r.Path, []byte(content), 0o644); err != nil {
		return s.Error("unable to write client file", err)
	}

	return nil
}
