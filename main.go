package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/noelruault/emd/internal/aws"
	"github.com/noelruault/emd/internal/config"
	"github.com/noelruault/emd/internal/i18n"
	"github.com/noelruault/emd/internal/store"
)

var version = "dev"

// options are the persistent flags shared by every command.
type options struct {
	region  string
	profile string
	lang    string
	output  string
}

// app is everything a command needs once configuration is resolved.
type app struct {
	cfg      config.Config
	logger   zerolog.Logger
	store    *store.Store
	provider *aws.Provider
	lang     i18n.Language
	closeLog func() error
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "emd",
		Short:         "Browse AWS resources and export them as Markdown",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(opts)
			if err != nil {
				return err
			}
			defer a.closeLog()
			return runTUI(a)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.region, "region", "", "AWS region to start in")
	flags.StringVar(&opts.profile, "profile", "", "shared config profile")
	flags.StringVar(&opts.lang, "lang", "", "UI and document language (en, ko)")
	flags.StringVar(&opts.output, "output", "", "directory or s3://bucket/prefix for saved documents")

	cmd.AddCommand(newExportCmd(&opts), newBlueprintsCmd(&opts))
	return cmd
}

// setup loads configuration, applies flag overrides and builds the logger,
// store and provider.
func setup(opts options) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.region != "" {
		cfg.Region = opts.region
	}
	if opts.profile != "" {
		cfg.Profile = opts.profile
	}
	if opts.lang != "" {
		cfg.Language = opts.lang
	}
	if opts.output != "" {
		cfg.OutputDir = opts.output
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	st := store.New(cfg.DataDir, logger)
	lang := st.LoadSettings().Language
	if cfg.Language != "" {
		if lang, err = i18n.ParseLanguage(cfg.Language); err != nil {
			closeLog()
			return nil, err
		}
	}

	logger.Info().
		Str("region", cfg.Region).
		Str("profile", cfg.Profile).
		Str("data_dir", cfg.DataDir).
		Stringer("language", lang).
		Msg("starting emd")

	return &app{
		cfg:      cfg,
		logger:   logger,
		store:    st,
		provider: aws.NewProvider(cfg.Profile, logger),
		lang:     lang,
		closeLog: closeLog,
	}, nil
}

// newLogger writes to the log file since the terminal belongs to the UI.
func newLogger(cfg config.Config) (zerolog.Logger, func() error, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("parse log level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0700); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), closeFn, nil
}

func runTUI(a *app) error {
	m := newModel(a.cfg, a.provider, a.store, a.lang, a.logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
