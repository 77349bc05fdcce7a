// Package loader runs the batch jobs that fill the NBA schema. Every job
// reads its source, reconciles names against canonical rows, reports what
// could not be matched and appends the rest in one transaction.
package loader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/AgustinTorres17/i-datos-55-cents/internal/metrics"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/models"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/reconcile"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrInvalidRecord is returned when a shaped record fails validation.
// Nothing is written when any record of a batch is invalid.
var ErrInvalidRecord = errors.New("invalid record")

// ErrUnknownJob is returned by Run for a job name that does not exist
var ErrUnknownJob = errors.New("unknown job")

// CanonicalSource lists the canonical rows names are matched against
type CanonicalSource interface {
	ListCanonical(ctx context.Context) ([]reconcile.Canonical, error)
}

// BatchWriter appends a batch of rows to a table as one unit
type BatchWriter interface {
	Insert(ctx context.Context, table models.Table, rows [][]any) (int64, error)
}

// RowCounter reports the size of a table after a load
type RowCounter interface {
	CountRows(ctx context.Context, table string) (int64, error)
}

// Deps are the collaborators one job needs
type Deps struct {
	Teams   CanonicalSource
	Players CanonicalSource
	Writer  BatchWriter
	// Counter is optional
	Counter RowCounter
}

// Connector opens the database resources for a single job. The returned
// release func is called when that job ends, on every path.
type Connector func(ctx context.Context) (deps Deps, release func(), err error)

// Files locates the source files
type Files struct {
	PlayerStats string
	PlayerIDs   string
	TeamStats   string
	Champions   string
}

// Options tune a run
type Options struct {
	// DryRun does everything except the insert
	DryRun bool
	// Audit writes the reconciled CSV files next to the player stats source
	Audit bool
}

// Report summarizes one job run
type Report struct {
	Job       string
	RunID     string
	Read      int
	Matched   int
	Unmatched []reconcile.Miss
	Nullified int
	Inserted  int64
	DryRun    bool
}

// UnmatchedRows returns the number of source rows behind Unmatched
func (r *Report) UnmatchedRows() int {
	n := 0
	for _, m := range r.Unmatched {
		n += m.Count
	}
	return n
}

type job struct {
	name  string
	table models.Table
	run   func(ctx context.Context, r *Runner, deps Deps, lg zerolog.Logger, rep *Report) error
}

// jobs in dependency order: stats and awards need teams and players loaded
var jobs = []job{
	{name: "teams", table: models.TeamsTable, run: runTeams},
	{name: "players", table: models.PlayersTable, run: runPlayers},
	{name: "player-stats", table: models.PlayersStatsTable, run: runPlayerStats},
	{name: "team-stats", table: models.TeamsStatsTable, run: runTeamStats},
	{name: "mvps", table: models.MVPTable, run: runMVPs},
	{name: "champions", table: models.ChampionsTable, run: runChampions},
}

// JobNames returns every job name in dependency order
func JobNames() []string {
	names := make([]string, len(jobs))
	for i, j := range jobs {
		names[i] = j.name
	}
	return names
}

// Runner executes jobs with a shared run id. Each job opens and releases
// its own connection through the Connector.
type Runner struct {
	connect  Connector
	files    Files
	opts     Options
	runID    string
	validate *validator.Validate
}

// NewRunner creates a runner with a fresh run id
func NewRunner(connect Connector, files Files, opts Options) *Runner {
	return &Runner{
		connect:  connect,
		files:    files,
		opts:     opts,
		runID:    uuid.NewString(),
		validate: validator.New(),
	}
}

// RunID identifies this invocation in logs and pushed metrics
func (r *Runner) RunID() string {
	return r.runID
}

// Run executes the named job
func (r *Runner) Run(ctx context.Context, name string) (*Report, error) {
	for _, j := range jobs {
		if j.name == name {
			return r.runJob(ctx, j)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownJob, name)
}

// RunAll executes every job in dependency order and stops at the first failure
func (r *Runner) RunAll(ctx context.Context) ([]*Report, error) {
	reports := make([]*Report, 0, len(jobs))
	for _, j := range jobs {
		rep, err := r.runJob(ctx, j)
		if err != nil {
			return reports, err
		}
		reports = append(reports, rep)
	}
	return reports, nil
}

func (r *Runner) runJob(ctx context.Context, j job) (*Report, error) {
	lg := log.With().Str("job", j.name).Str("run_id", r.runID).Logger()
	rep := &Report{Job: j.name, RunID: r.runID, DryRun: r.opts.DryRun}

	lg.Info().Bool("dry_run", r.opts.DryRun).Msg("Starting job")
	start := time.Now()

	deps, release, err := r.connect(ctx)
	if err != nil {
		metrics.RecordJob(j.name, "error", time.Since(start).Seconds())
		return rep, fmt.Errorf("job %s failed to connect: %w", j.name, err)
	}
	defer release()

	err = j.run(ctx, r, deps, lg, rep)
	duration := time.Since(start)

	metrics.RecordRows(j.name, rep.Read, rep.UnmatchedRows(), int(rep.Inserted), rep.Nullified)
	if err != nil {
		metrics.RecordJob(j.name, "error", duration.Seconds())
		lg.Error().Err(err).Dur("duration", duration).Msg("Job failed")
		return rep, fmt.Errorf("job %s failed: %w", j.name, err)
	}
	metrics.RecordJob(j.name, "success", duration.Seconds())

	if deps.Counter != nil && !r.opts.DryRun {
		if n, err := deps.Counter.CountRows(ctx, j.table.Name); err != nil {
			lg.Warn().Err(err).Msg("Failed to count destination rows")
		} else {
			metrics.UpdateTableRows(j.table.Name, n)
		}
	}

	lg.Info().
		Int("read", rep.Read).
		Int("matched", rep.Matched).
		Int("unmatched", rep.UnmatchedRows()).
		Int("nullified", rep.Nullified).
		Int64("inserted", rep.Inserted).
		Dur("duration", duration).
		Msg("Job completed")

	return rep, nil
}

// canonicalIndex loads canonical rows and indexes them by normalized name
func canonicalIndex(ctx context.Context, src CanonicalSource, lg zerolog.Logger) (*reconcile.Index, error) {
	rows, err := src.ListCanonical(ctx)
	if err != nil {
		return nil, err
	}
	ix := reconcile.NewIndex(rows)
	for _, d := range ix.Duplicates() {
		lg.Warn().
			Str("key", d.Key).
			Int64("kept_id", d.KeptID).
			Int64("dropped_id", d.DroppedID).
			Msg("Duplicate canonical name, keeping lowest id")
	}
	lg.Debug().Int("canonical", ix.Len()).Msg("Canonical index built")
	return ix, nil
}

func reportMisses(lg zerolog.Logger, misses []reconcile.Miss, msg string) {
	for _, m := range misses {
		lg.Warn().Str("name", m.Name).Int("count", m.Count).Msg(msg)
	}
}

// store validates records and appends them to table
func store[T repository.Copyable](ctx context.Context, r *Runner, w BatchWriter, lg zerolog.Logger, table models.Table, records []T, rep *Report) error {
	for i, rec := range records {
		if err := r.validate.StructCtx(ctx, rec); err != nil {
			return fmt.Errorf("%w: %s row %d: %v", ErrInvalidRecord, table.Name, i, err)
		}
	}

	if r.opts.DryRun {
		lg.Info().Str("table", table.Name).Int("rows", len(records)).Msg("Dry run, skipping insert")
		return nil
	}

	n, err := w.Insert(ctx, table, repository.Rows(records))
	if errors.Is(err, repository.ErrEmptyBatch) {
		lg.Warn().Str("table", table.Name).Msg("Nothing to insert")
		return nil
	}
	if err != nil {
		return err
	}

	rep.Inserted = n
	return nil
}

func (r *Runner) auditPath(name string) string {
	return filepath.Join(filepath.Dir(r.files.PlayerStats), name)
}
