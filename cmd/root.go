package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"winctl/internal/config"
	"winctl/internal/output"
	"winctl/internal/version"
)

// cfg and logger are built once per invocation in the persistent
// pre-run and handed into every component constructor.
var (
	cfg    config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "winctl [app-name]",
	Short: "Inspect and control desktop windows",
	Long: `winctl enumerates, inspects and manipulates compositor windows, and keeps
a registry of saved applications that can be launched or toggled by name.

Calling winctl with a bare name toggles that saved application:
launch it when no window matches, bring it to the foreground when
minimized, minimize it when visible.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		if len(args) > 1 {
			return fmt.Errorf("expected a single app name, got %d arguments", len(args))
		}
		return runToggleName(args[0])
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json, table")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default ~/.config/winctl/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Override log level: trace, debug, info, warn, error")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path, _ := rootCmd.PersistentFlags().GetString("config")
		if path == "" {
			path = config.DefaultPath()
		}

		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}

		if lvl, _ := rootCmd.PersistentFlags().GetString("log-level"); lvl != "" {
			cfg.LogLevel = lvl
		}
		logger, err = newLogger(cfg)
		if err != nil {
			return err
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		case "table":
			output.OutputFormat = output.FormatTable
		default:
			return fmt.Errorf("unsupported format: %s (use yaml, json, or table)", format)
		}
		return nil
	}
}

// newLogger builds the stderr console logger. Data output owns stdout;
// diagnostics never mix into it.
func newLogger(cfg config.Config) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("bad log level %q: %w", cfg.LogLevel, err)
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: cfg.NoColor}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger(), nil
}
