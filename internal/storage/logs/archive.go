package logs

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
)

const (
	plainExt      = ".log"
	compressedExt = ".gz.b64"
)

// Archive reads the check outcome logs written by the monitoring workers.
// Active logs are plain newline-delimited JSON (<id>.log); rotated logs are
// gzipped and base64 encoded (<id>-<unix time>.gz.b64).
type Archive struct {
	dir string
}

func NewArchive(dir string) *Archive {
	return &Archive{dir: dir}
}

func (a *Archive) List(ctx context.Context, includeCompressed bool) ([]string, error) {
	entries, err := os.ReadDir(a.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch name := e.Name(); {
		case strings.HasSuffix(name, plainExt):
			names = append(names, strings.TrimSuffix(name, plainExt))
		case includeCompressed && strings.HasSuffix(name, compressedExt):
			names = append(names, strings.TrimSuffix(name, compressedExt))
		}
	}
	slices.Sort(names)
	return names, nil
}

// Decompress returns the contents of a rotated log.
func (a *Archive) Decompress(ctx context.Context, name string) (string, error) {
	path, err := a.path(name, compressedExt)
	if err != nil {
		return "", err
	}

	encoded, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("log %s: %w", name, core.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read log %s: %w", name, err)
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(encoded)))
	if err != nil {
		return "", fmt.Errorf("failed to decode log %s: %w", name, err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to open log %s: %w", name, err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return "", fmt.Errorf("failed to inflate log %s: %w", name, err)
	}
	return string(data), nil
}

// Append adds one line to the active log for name.
func (a *Archive) Append(ctx context.Context, name, line string) error {
	path, err := a.path(name, plainExt)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(a.dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log %s: %w", name, err)
	}
	defer f.Close()

	if _, err := io.WriteString(f, line+"\n"); err != nil {
		return fmt.Errorf("failed to append to log %s: %w", name, err)
	}
	return nil
}

// Compress rotates the active log for name into the archive as target and
// truncates the active log.
func (a *Archive) Compress(ctx context.Context, name, target string) error {
	src, err := a.path(name, plainExt)
	if err != nil {
		return err
	}
	dst, err := a.path(target, compressedExt)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read log %s: %w", name, err)
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return fmt.Errorf("failed to compress log %s: %w", name, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to compress log %s: %w", name, err)
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	if err := os.WriteFile(dst, []byte(encoded), 0644); err != nil {
		return fmt.Errorf("failed to write archive %s: %w", target, err)
	}
	return os.Truncate(src, 0)
}

func (a *Archive) path(name, ext string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("log %q: %w", name, core.ErrNotFound)
	}
	return filepath.Join(a.dir, name+ext), nil
}
