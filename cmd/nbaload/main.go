// Command nbaload fills the NBA history schema from the CSV and XLSX exports.
//
// Usage:
//
//	nbaload teams
//	nbaload players --dry-run
//	nbaload all
//	nbaload migrate up
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AgustinTorres17/i-datos-55-cents/internal/config"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/loader"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/metrics"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/repository"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("nbaload failed")
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfg    *config.Config
		dryRun bool
	)

	root := &cobra.Command{
		Use:           "nbaload",
		Short:         "Load NBA teams, players, stats and awards into Postgres",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded
			setupLogger(cfg)
			log.Info().
				Str("env", cfg.AppEnv).
				Str("data_dir", cfg.DataDir).
				Msg("Configuration loaded")
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "read and reconcile everything but skip the inserts")

	for _, name := range loader.JobNames() {
		root.AddCommand(&cobra.Command{
			Use:   name,
			Short: fmt.Sprintf("Run the %s load", name),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runJobs(cmd.Context(), cfg, dryRun, name)
			},
		})
	}

	root.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Run every load in dependency order, stopping at the first failure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJobs(cmd.Context(), cfg, dryRun, "")
		},
	})

	root.AddCommand(migrateCmd(func() *config.Config { return cfg }))

	return root
}

// runJobs runs one job, or all of them when name is empty
func runJobs(ctx context.Context, cfg *config.Config, dryRun bool, name string) error {
	runner := loader.NewRunner(
		connector(cfg),
		loader.Files{
			PlayerStats: cfg.PlayerStatsPath(),
			PlayerIDs:   cfg.PlayerIDsPath(),
			TeamStats:   cfg.TeamStatsPath(),
			Champions:   cfg.ChampionsPath(),
		},
		loader.Options{
			DryRun: dryRun,
			Audit:  cfg.AuditEnabled,
		},
	)

	job := name
	if job == "" {
		job = "all"
	}
	defer pushMetrics(cfg, job, runner.RunID())

	var err error
	if name == "" {
		_, err = runner.RunAll(ctx)
	} else {
		_, err = runner.Run(ctx, name)
	}
	return err
}

// connector opens a pool for a single job and checks it answers before the
// job reads anything
func connector(cfg *config.Config) loader.Connector {
	return func(ctx context.Context) (loader.Deps, func(), error) {
		db, err := repository.NewDatabase(ctx, repository.Config{
			URL:      cfg.DatabaseURL,
			MaxConns: cfg.DatabaseMaxConns,
		})
		if err != nil {
			return loader.Deps{}, nil, err
		}
		if err := db.Health(ctx); err != nil {
			db.Close()
			return loader.Deps{}, nil, err
		}

		release := func() {
			log.Debug().Fields(db.PoolStats()).Msg("Database pool stats")
			db.Close()
		}
		deps := loader.Deps{
			Teams:   db.Teams,
			Players: db.Players,
			Writer:  db.Bulk,
			Counter: db,
		}
		return deps, release, nil
	}
}

func pushMetrics(cfg *config.Config, job, runID string) {
	if cfg.PushgatewayURL == "" {
		return
	}
	if err := metrics.Push(cfg.PushgatewayURL, "nbaload_"+job, runID); err != nil {
		log.Warn().Err(err).Str("pushgateway", cfg.PushgatewayURL).Msg("Failed to push metrics")
		return
	}
	log.Debug().Str("run_id", runID).Msg("Metrics pushed")
}

func setupLogger(cfg *config.Config) {
	// Pretty console logging in development
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Debug().
		Str("level", level.String()).
		Msg("Logger initialized")
}
