package tui

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"tilebrush/internal/config"
	"tilebrush/internal/level"
	"tilebrush/internal/preview"
	"tilebrush/internal/track"
)

type exportedMsg struct {
	path    string
	floors  int
	err     error
	warning string
}

type copiedMsg struct {
	bytes int
	err   error
}

// writeClipboard is swapped out in tests; CI machines have no clipboard.
var writeClipboard = clipboard.WriteAll

// exportCmd writes the level file, and the optional PNG preview and
// clipboard copy, off the update loop.
func exportCmd(cfg config.Config, log *slog.Logger, doc level.Document, tiles track.Table, now time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := level.Write(cfg.ExportDir, doc, now)
		if err != nil {
			log.Error("export failed", "error", err)
			return exportedMsg{err: err}
		}
		log.Info("level written", "path", path, "floors", len(doc.AngleData))
		msg := exportedMsg{path: path, floors: len(doc.AngleData)}

		var warnings []string
		if cfg.PreviewPNG {
			png := strings.TrimSuffix(path, ".adofai") + ".png"
			if err := preview.SavePNG(png, tiles, preview.DefaultOptions()); err != nil {
				log.Warn("preview failed", "path", png, "error", err)
				warnings = append(warnings, "preview: "+err.Error())
			}
		}
		if cfg.CopyToClipboard {
			if _, err := copyDocument(doc); err != nil {
				log.Warn("clipboard copy failed", "error", err)
				warnings = append(warnings, "clipboard: "+err.Error())
			}
		}
		msg.warning = strings.Join(warnings, "; ")
		return msg
	}
}

func copyCmd(log *slog.Logger, doc level.Document) tea.Cmd {
	return func() tea.Msg {
		n, err := copyDocument(doc)
		if err != nil {
			log.Warn("clipboard copy failed", "error", err)
		}
		return copiedMsg{bytes: n, err: err}
	}
}

func copyDocument(doc level.Document) (int, error) {
	var buf bytes.Buffer
	if err := level.Encode(&buf, doc); err != nil {
		return 0, err
	}
	if err := writeClipboard(buf.String()); err != nil {
		return 0, fmt.Errorf("failed to write clipboard: %w", err)
	}
	return buf.Len(), nil
}
