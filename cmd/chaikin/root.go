package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"honnef.co/go/chaikin"
	"honnef.co/go/chaikin/internal/config"
	"honnef.co/go/chaikin/internal/tui"
)

var version = "0.1.0"

var (
	configPath string
	modifier   string
	logFile    string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "chaikin",
	Short: "Chaikin's Algorithm Animation",
	Long: `Place control points with the mouse and watch Chaikin's corner cutting
smooth the polyline through them, one refinement pass per tick.

  click           add a control point
  modifier+drag   move a control point (ctrl by default, or toggle with m)
  enter           start the animation
  r               reset
  esc             quit

Use "chaikin render --help" to export a refined curve as PNG.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, closeLog, err := setupLogging(cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		logger.Info("starting", "version", version, "modifier", cfg.Modifier)
		err = tui.Run(tui.Options{
			Modifier:   cfg.Modifier,
			ToggleKey:  cfg.ToggleKey,
			CurveColor: cfg.Colors.Canvas,
			Logger:     logger,
		})
		if err != nil {
			return fmt.Errorf("run canvas: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/chaikin/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().StringVar(&modifier, "modifier", "", "drag modifier: ctrl, alt or shift")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the config file and applies the flags that were set on
// the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("modifier") {
		cfg.Modifier = modifier
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// setupLogging installs a text logger writing to the configured log file
// for this package, the chaikin package and gg. Without a log file logs
// are discarded, as the terminal belongs to the canvas.
func setupLogging(cfg config.Config) (*slog.Logger, func(), error) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Level()})).
		With("run", uuid.New().String())
	chaikin.SetLogger(logger)
	gg.SetLogger(logger.With("component", "gg"))
	return logger, closeFn, nil
}
