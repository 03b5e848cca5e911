package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/multicalc/loancalc/internal/calculation"
	"github.com/multicalc/loancalc/internal/config"
	"github.com/multicalc/loancalc/internal/domain"
	"github.com/multicalc/loancalc/internal/store"
)

// app carries global flags and the state derived from them.
type app struct {
	settingsPath string
	dataDir      string
	format       string
	redisAddr    string
	verbose      bool
	noHistory    bool

	settings config.Settings
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "loancalc",
		Short:        "Loan amortization calculator",
		Long:         "Compute loan payments, amortization schedules and early payoff scenarios.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.settingsPath, "config", config.SettingsPath(), "Settings file (TOML)")
	root.PersistentFlags().StringVarP(&a.dataDir, "data-dir", "d", "", "Directory holding the history database")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "", "Output format (console, console-lite, csv, detailed-csv, json, html)")
	root.PersistentFlags().StringVar(&a.redisAddr, "redis-addr", "", "Store preferences in Redis at this address")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log calculation details to stderr")
	root.PersistentFlags().BoolVar(&a.noHistory, "no-history", false, "Do not record calculations in history")

	root.AddCommand(
		newSummaryCmd(a),
		newScheduleCmd(a),
		newPayoffCmd(a),
		newReportCmd(a),
		newInterestCmd(a),
		newHistoryCmd(a),
		newPrefsCmd(a),
		newConfigCmd(a),
		newExampleCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	settings, err := config.LoadSettings(a.settingsPath)
	if err != nil {
		return err
	}
	a.settings = settings

	if a.dataDir == "" {
		a.dataDir = settings.DataDir()
	}
	if a.redisAddr == "" {
		a.redisAddr = settings.Storage.RedisAddr
	}
	if a.format == "" {
		a.format = settings.General.DefaultFormat
	}
	if settings.General.Verbose && !a.verbose {
		a.verbose = true
		a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return nil
}

func (a *app) engine() *calculation.Engine {
	e := calculation.NewEngine()
	e.SetLogger(calculation.NewSlogLogger(a.logger))
	e.Debug = a.verbose
	return e
}

func (a *app) openStore() (*store.SQLiteStore, error) {
	return store.Open(filepath.Join(a.dataDir, "history.db"))
}

// preferenceStore returns Redis when configured, otherwise the history database.
func (a *app) preferenceStore() (config.BlobStore, func() error, error) {
	if a.redisAddr != "" {
		kv := store.NewRedisKV(a.redisAddr, a.settings.Storage.RedisDB)
		return kv, kv.Close, nil
	}
	s, err := a.openStore()
	if err != nil {
		return nil, nil, err
	}
	return s, s.Close, nil
}

func (a *app) loadPreferences(ctx context.Context) config.Preferences {
	kv, closeFn, err := a.preferenceStore()
	if err != nil {
		a.logger.Warn("preferences unavailable", "err", err)
		return config.Preferences{SchemaVersion: config.CurrentPreferencesSchema}
	}
	defer closeFn()

	p, err := config.LoadPreferences(ctx, kv)
	if err != nil {
		a.logger.Warn("could not load preferences", "err", err)
		return config.Preferences{SchemaVersion: config.CurrentPreferencesSchema}
	}
	return p
}

func (a *app) savePreferences(ctx context.Context, p config.Preferences) error {
	kv, closeFn, err := a.preferenceStore()
	if err != nil {
		return err
	}
	defer closeFn()
	return config.SavePreferences(ctx, kv, p)
}

// rememberTerms stores the last loan entered. Failures only warn.
func (a *app) rememberTerms(ctx context.Context, terms domain.LoanTerms) {
	p := a.loadPreferences(ctx)
	p.LastTerms = terms
	p.UpdatedAt = nowFunc().UTC()
	if err := a.savePreferences(ctx, p); err != nil {
		a.logger.Warn("could not save preferences", "err", err)
	}
}

// recordHistory appends a calculation to the history log. Failures only warn.
func (a *app) recordHistory(ctx context.Context, kind domain.Kind, inputs, outputs any) {
	if a.noHistory {
		return
	}
	entry, err := store.NewHistoryEntry(kind, inputs, outputs)
	if err != nil {
		a.logger.Warn("could not encode history entry", "err", err)
		return
	}
	s, err := a.openStore()
	if err != nil {
		a.logger.Warn("history unavailable", "err", err)
		return
	}
	defer s.Close()

	saved, err := s.AppendHistory(ctx, entry)
	if err != nil {
		a.logger.Warn("could not record history", "err", err)
		return
	}
	a.logger.Debug("recorded history", "id", saved.ID, "kind", saved.Kind)
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

// outputFormat prefers --format, then the saved preference, then settings.
func (a *app) outputFormat(ctx context.Context, cmd *cobra.Command) string {
	if !cmd.Flags().Changed("format") {
		if p := a.loadPreferences(ctx); p.DefaultFormat != "" {
			return p.DefaultFormat
		}
	}
	return a.format
}
