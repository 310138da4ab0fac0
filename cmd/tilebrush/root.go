package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tilebrush/internal/config"
	"tilebrush/internal/logging"
	"tilebrush/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "tilebrush",
	Short: "Paint rhythm-game tracks with the mouse",
	Long: `tilebrush turns freehand mouse strokes into unit tiles and exports them
as a level file. Drag to draw, ctrl+z / ctrl+y to undo and redo, p to export.`,
	SilenceUsage: true,
	RunE:         run,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().String("config", "", "Config file (default: user config dir/tilebrush/config.yml)")
	rootCmd.Flags().String("log", logging.DefaultPath(), "Log file")
	rootCmd.Flags().Bool("debug", false, "Log debug records")
	rootCmd.Flags().String("out", "", "Export directory (overrides config)")
}

func run(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	logPath, _ := cmd.Flags().GetString("log")
	debug, _ := cmd.Flags().GetBool("debug")
	outDir, _ := cmd.Flags().GetString("out")

	if cfgPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if outDir != "" {
		cfg.ExportDir = outDir
	}

	logFile, err := logging.OpenFile(logPath)
	if err != nil {
		return err
	}
	defer logFile.Close()
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	log := logging.New(logFile, level)
	log.Info("starting", "config", cfgPath, "export_dir", cfg.ExportDir)

	m, err := tui.New(cfg, log)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Error("program failed", "error", err)
		return err
	}
	log.Info("exiting")
	return nil
}
