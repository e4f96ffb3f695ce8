package main

import (
	"errors"
	"fmt"
	"io/fs"

	"record-form/internal/app"
	"record-form/internal/config"
	"record-form/internal/logger"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	dataFile   string
	logLevel   string
	jsonLogs   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "recordform",
		Short: "Person record entry form",
		Long: `recordform keeps person records (name, ID, gender, province, date of birth)
in a semicolon-delimited text file.

Without a subcommand it opens the entry window. The find, put and list
subcommands work on the same file without a display.`,
		Version:      app.AppVersion,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file (default recordform.yaml if present)")
	flags.StringVar(&opts.dataFile, "data-file", "", "data file path (default data.txt)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&opts.jsonLogs, "json-logs", false, "write logs as JSON")

	cmd.AddCommand(newFindCmd(opts), newPutCmd(opts), newListCmd(opts))
	return cmd
}

// settings resolves configuration from .env, the config file, the
// environment and command-line flags, in that order of precedence.
func (o *options) settings(cmd *cobra.Command) (config.Config, logger.Logger, error) {
	envErr := godotenv.Load()

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("data-file") {
		cfg.DataFile = o.dataFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("json-logs") {
		cfg.JSONLogs = o.jsonLogs
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(cfg.LoggerOptions())
	if err != nil {
		return config.Config{}, nil, err
	}

	switch {
	case envErr == nil:
		log.Debug("Config", ".env loaded", nil)
	case errors.Is(envErr, fs.ErrNotExist):
		log.Debug("Config", "no .env file, using process environment", nil)
	default:
		log.Warning("Config", "failed to load .env file", map[string]interface{}{"error": envErr.Error()})
	}

	return cfg, log, nil
}

func runGUI(cmd *cobra.Command, opts *options) error {
	cfg, log, err := opts.settings(cmd)
	if err != nil {
		return err
	}

	fyneApp := fyneapp.NewWithID(app.AppID)
	application := app.NewApplication(fyneApp, cfg, log)
	application.Run(cmd.Context())
	return nil
}
