// Package cli provides the command-line interface for the pricer.
package cli

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fxbarrier-pricer/internal/calendar"
	"fxbarrier-pricer/internal/config"
	"fxbarrier-pricer/internal/marketdata"
	"fxbarrier-pricer/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Store    store.ResultStore
	Calendar *calendar.AdjustmentConfig
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	dbPath := cfg.Store.Path
	if dbPath == "" {
		dbPath = filepath.Join(config.DefaultConfigDir(), "pricer.db")
	}
	resultStore, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize store, results will not be persisted")
	} else {
		app.Store = resultStore
		logger.Debug().Str("path", dbPath).Msg("SQLite store initialized")
	}

	adj, err := cfg.Calendar.AdjustmentConfig()
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid calendar configuration, using weekends only")
		adj = calendar.NewAdjustmentConfig()
	}
	app.Calendar = adj

	rootCmd := &cobra.Command{
		Use:     "fxbarrier-pricer",
		Short:   "Static-replication pricer for FX European barrier options",
		Version: Version,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Store != nil {
				_ = app.Store.Close()
			}
		},
	}

	rootCmd.AddCommand(newPriceCmd(app))
	rootCmd.AddCommand(newResultsCmd(app))
	rootCmd.AddCommand(newMarketCmd(app))

	return rootCmd
}

// loadSnapshot loads the configured market snapshot.
func (a *App) loadSnapshot() (*marketdata.Snapshot, error) {
	asOf, err := a.Config.Market.AsOfDate()
	if err != nil {
		return nil, err
	}
	return marketdata.Load(a.Config.Market.SnapshotPath, asOf)
}
