package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"daygrid/internal/config"
	"daygrid/internal/source"
	"daygrid/internal/state"
	"daygrid/internal/ui"
)

var (
	cfgFile    string
	eventsFile string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "daygrid",
	Short: "An interactive hour-grid calendar for the terminal",
	Long: `Daygrid is a terminal calendar widget: an infinitely scrollable day axis
over an hour grid, with zoomable event layout and a live now marker. Events
are read from a JSON file and reloaded when it changes.`,
	RunE: runTUI,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVarP(&eventsFile, "events", "e", "", "Path to events JSON file (overrides config)")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if eventsFile != "" {
		cfg.EventsFile = eventsFile
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	ctrl := state.New(engineSettings(cfg), state.RealClock{})

	src := source.NewJSONSource(cfg.EventsFile, time.Local)
	events, err := src.Events()
	if err != nil {
		// Start with an empty grid; the watcher picks the file up once
		// it appears.
		logger.Warn("initial event load failed", zap.Error(err))
	} else if err := ctrl.SetEvents(events); err != nil {
		return fmt.Errorf("events file %s: %w", cfg.EventsFile, err)
	}

	model := ui.NewModel(cfg, ctrl, src, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Program.Send marshals watcher callbacks onto the tea update loop,
	// the engine's single logical thread.
	watcher, err := source.NewFileWatcher(func(path string) {
		p.Send(ui.FileChangedMsg{Path: path})
	}, logger)
	if err != nil {
		logger.Warn("file watching unavailable", zap.Error(err))
	} else {
		defer watcher.Close()
		if err := watcher.AddFile(cfg.EventsFile); err != nil {
			logger.Warn("cannot watch events file", zap.String("path", cfg.EventsFile), zap.Error(err))
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func engineSettings(cfg *config.Config) state.Settings {
	return state.Settings{
		WeekStart:     cfg.WeekStart(),
		HourHeight:    cfg.HourHeight,
		MinHourHeight: cfg.MinHourHeight,
		MaxHourHeight: cfg.MaxHourHeight,
		BufferWeeks:   cfg.BufferWeeks,
		TotalSections: cfg.TotalSections,
		MiddleSection: cfg.MiddleSection(),
		Location:      time.Local,
	}
}

// newLogger writes structured logs to a file so they do not tear the TUI.
func newLogger(level string) (*zap.Logger, error) {
	zapLevel := zapcore.InfoLevel
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapLevel)
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.OutputPaths = []string{"daygrid.log"}
	zcfg.ErrorOutputPaths = []string{"daygrid.log"}
	return zcfg.Build()
}
