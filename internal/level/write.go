package level

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Filename names an export made at t.
func Filename(t time.Time) string {
	return fmt.Sprintf("ADOFAI_Paintbrush_%d.adofai", t.UnixMilli())
}

// Encode writes doc as two-space indented JSON. Non-ASCII text is written as
// UTF-8 rather than escaped.
func Encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// Write stores doc in dir under Filename(now) and returns the full path.
// The file is written to a temporary name first and renamed into place.
func Write(dir string, doc Document, now time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to ensure export directory: %w", err)
	}
	dest := filepath.Join(dir, Filename(now))

	tmp, err := os.CreateTemp(dir, "tmp-*.adofai")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := Encode(tmp, doc); err != nil {
		return "", fmt.Errorf("failed to encode level: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return "", fmt.Errorf("failed to rename level file: %w", err)
	}
	return dest, nil
}
