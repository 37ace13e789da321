package toolchain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/vk/targetplan/internal/ctxlog"
	"github.com/vk/targetplan/internal/plan"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of written plan manifests.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("invalid manifest format %q: must be one of 'json', 'yaml'", s)
}

// ManifestWriter is an Invoker that writes each plan's manifest, either as
// one file per target under a directory or as a stream to a writer.
type ManifestWriter struct {
	dir    string
	out    io.Writer
	format Format

	mu sync.Mutex // serialises writes to out
}

// NewManifestWriter returns a writer for the given format. With a non-empty
// dir, each plan is written to <dir>/<target>.plan.<format>; otherwise
// manifests are streamed to out.
func NewManifestWriter(dir string, out io.Writer, format Format) *ManifestWriter {
	return &ManifestWriter{dir: dir, out: out, format: format}
}

// Path returns the file a plan for target is written to, or "" when the
// writer streams.
func (w *ManifestWriter) Path(target string) string {
	if w.dir == "" {
		return ""
	}
	return filepath.Join(w.dir, target+plan.ManifestMarker+"."+string(w.format))
}

// Invoke implements Invoker. Failures are logged; the plan is not retried.
func (w *ManifestWriter) Invoke(ctx context.Context, p *plan.BuildPlan) {
	logger := ctxlog.FromContext(ctx)

	data, err := w.encode(p.Manifest())
	if err != nil {
		logger.Error("Failed to encode plan manifest.", "target", p.Target(), "error", err)
		return
	}

	if path := w.Path(p.Target()); path != "" {
		if err := writeFile(path, data); err != nil {
			logger.Error("Failed to write plan manifest.", "target", p.Target(), "path", path, "error", err)
			return
		}
		logger.Debug("Plan manifest written.", "target", p.Target(), "path", path)
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.format == FormatYAML {
		data = append([]byte("---\n"), data...)
	}
	if _, err := w.out.Write(data); err != nil {
		logger.Error("Failed to stream plan manifest.", "target", p.Target(), "error", err)
	}
}

func (w *ManifestWriter) encode(m *plan.Manifest) ([]byte, error) {
	switch w.format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return nil, fmt.Errorf("unsupported manifest format %q", w.format)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

var _ Invoker = (*ManifestWriter)(nil)
