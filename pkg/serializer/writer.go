package serializer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/openshift/managed-resources/pkg/report"
)

// Option is a functional option for configuring a Writer.
type Option func(*Writer)

// WithConfigMapMeta sets the name and namespace of the ConfigMap written in FormatConfigMap.
func WithConfigMapMeta(meta ConfigMapMeta) Option {
	return func(w *Writer) {
		w.meta = meta
	}
}

// Writer renders reports in a Format and writes them to an io.Writer.
type Writer struct {
	format Format
	meta   ConfigMapMeta
	output io.Writer
	closer io.Closer
	path   string
}

var (
	_ Serializer = (*Writer)(nil)
	_ Closer     = (*Writer)(nil)
)

// NewWriter creates a Writer for output. Unknown formats fall back to FormatYAML.
func NewWriter(format Format, output io.Writer, opts ...Option) *Writer {
	if format.IsUnknown() {
		slog.Warn("unknown format, falling back to yaml", "format", format)
		format = FormatYAML
	}
	if output == nil {
		output = os.Stdout
	}

	w := &Writer{
		format: format,
		meta:   DefaultConfigMapMeta(),
		output: output,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewStdoutWriter creates a Writer for stdout.
func NewStdoutWriter(format Format, opts ...Option) *Writer {
	return NewWriter(format, os.Stdout, opts...)
}

// NewFileWriterOrStdout creates a Writer for the file at path. An empty path
// or StdoutURI writes to stdout. The file is created or truncated.
func NewFileWriterOrStdout(format Format, path string, opts ...Option) (*Writer, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == StdoutURI {
		return NewStdoutWriter(format, opts...), nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}

	w := NewWriter(format, f, opts...)
	w.closer = f
	w.path = path
	return w, nil
}

// Serialize renders rep and writes it in a single write.
func (w *Writer) Serialize(ctx context.Context, rep *report.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := Render(w.format, rep, w.meta)
	if err != nil {
		return err
	}

	if _, err := w.output.Write(content); err != nil {
		return fmt.Errorf("failed to write %s output: %w", w.format, err)
	}

	slog.Debug("report written",
		"format", w.format,
		"path", w.path,
		"size_bytes", len(content),
	)
	return nil
}

// Close closes the underlying file. It is a no-op for stdout and safe to call more than once.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	err := w.closer.Close()
	w.closer = nil
	if err != nil {
		return fmt.Errorf("failed to close output file %q: %w", w.path, err)
	}
	return nil
}
