package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/feestdagen/internal/calendar"
	"github.com/username/feestdagen/internal/config"
	"github.com/username/feestdagen/internal/export"
	"github.com/username/feestdagen/internal/feestdagen"
	"github.com/username/feestdagen/internal/gui/window"
	"github.com/username/feestdagen/pkg/dateutil"
)

var (
	configPath string
	logLevel   string
	cfg        *config.Config
	logger     = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "feestdagen",
		Short:         "Nederlandse christelijke feestdagen",
		Long:          "Compute the Dutch Christian feast days of a year: fixed feasts plus the feasts that move with Easter",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("invalid --log-level: %w", err)
				}
			}

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log)
				if err != nil {
					logger = initLogger(cfg.Log.Level) // Fallback to console
				}
			} else {
				logger = initLogger(cfg.Log.Level)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "feestdagen.yaml", "Config file path (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(easterCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(guiCmd())

	return rootCmd
}

func listCmd() *cobra.Command {
	var format string
	var month int
	var output string

	cmd := &cobra.Command{
		Use:   "list [year]",
		Short: "Toon alle feestdagen van een jaar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearFromArgs(args)
			if err != nil {
				return err
			}

			if format == "" {
				format = cfg.Format
			}
			writer, err := export.New(format)
			if err != nil {
				return err
			}

			cal := calendar.NewFeastCalendar(logger)
			var list feestdagen.List
			if month != 0 {
				info, err := cal.GetMonthInfo(year, time.Month(month))
				if err != nil {
					return err
				}
				list = info.Feasts
			} else {
				list, err = cal.GetYear(year)
				if err != nil {
					return err
				}
			}

			logger.Info("Writing feast days",
				zap.Int("year", year),
				zap.Int("month", month),
				zap.String("format", format),
				zap.Int("count", len(list)))

			if output == "" {
				if err := writer.Write(cmd.OutOrStdout(), year, list); err != nil {
					return fmt.Errorf("failed to write %s output: %w", format, err)
				}
				return nil
			}
			return writeFile(output, func(w io.Writer) error {
				return writer.Write(w, year, list)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, json, csv, ics (default from config)")
	cmd.Flags().IntVarP(&month, "month", "m", 0, "Only show one month (1-12)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

// writeFile creates path (and its directory) and closes it explicitly,
// so a failed flush on close is reported.
func writeFile(path string, write func(w io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output path: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

func easterCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "easter [year]",
		Short: "Toon de datum van Eerste Paasdag",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearFromArgs(args)
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			if err := feestdagen.ValidateYear(year + count - 1); err != nil {
				return err
			}

			printEaster(cmd.OutOrStdout(), year, count)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of consecutive years")

	return cmd
}

func printEaster(w io.Writer, year, count int) {
	for y := year; y < year+count; y++ {
		easter := feestdagen.Easter(y)
		fmt.Fprintf(w, "%s  %s\n", easter, export.FormatDate(easter))
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <date>",
		Short: "Controleer of een datum een feestdag is",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := dateutil.ParseDate(args[0])
			if err != nil {
				return err
			}

			info, err := calendar.NewFeastCalendar(logger).GetDayInfo(date)
			if err != nil {
				return err
			}

			printDayInfo(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

func printDayInfo(w io.Writer, info *calendar.DayInfo) {
	formatted := export.FormatDate(info.Date)
	if info.Type != calendar.DayTypeFeast {
		fmt.Fprintf(w, "%s: geen feestdag (%s)\n", formatted, info.Type)
		return
	}
	for _, name := range info.Feasts {
		fmt.Fprintf(w, "%s: %s\n", formatted, name)
	}
}

func guiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui [year]",
		Short: "Open het venster met feestdagen",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearFromArgs(args)
			if err != nil {
				return err
			}

			return window.Run(window.Options{
				Title:  cfg.GUI.Title,
				Width:  cfg.GUI.Width,
				Height: cfg.GUI.Height,
				Year:   year,
			}, calendar.NewFeastCalendar(logger), logger)
		},
	}
}

// yearFromArgs returns the year argument, or the configured default
func yearFromArgs(args []string) (int, error) {
	if len(args) == 0 {
		return cfg.GetYear(), nil
	}
	return feestdagen.ParseYear(args[0])
}

func initLogger(level string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return logger
}

// initFileLogger writes JSON logs to log.File, rotated by lumberjack
// according to the log.rotation settings.
func initFileLogger(lc config.LogConfig) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(lc.File), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logWriter := &lumberjack.Logger{
		Filename:   lc.File,
		MaxSize:    lc.Rotation.MaxSizeMB,
		MaxBackups: lc.Rotation.MaxBackups,
		MaxAge:     lc.Rotation.MaxAgeDays,
		Compress:   lc.Rotation.Compress,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(lc.Level),
	)

	return zap.New(core), nil
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return zapLevel
}
