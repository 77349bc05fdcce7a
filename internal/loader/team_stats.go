package loader

import (
	"context"

	"github.com/AgustinTorres17/i-datos-55-cents/internal/models"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/normalize"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/reconcile"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/source"

	"github.com/rs/zerolog"
)

// teamStatsOptions reads the team stats export, whose second line repeats the header
var teamStatsOptions = source.CSVOptions{
	SkipLines: []int{1},
	Required:  []string{"Team", "Year", "G", "Fgm-a", "Pct", "3gm-a", "Pct.1", "Ftm-a", "Pct.2"},
}

// reportTeamMisses logs unmatched team names, or a single line when every team matched
func reportTeamMisses(lg zerolog.Logger, misses []reconcile.Miss) {
	if len(misses) == 0 {
		lg.Info().Msg("All teams mapped")
		return
	}
	reportMisses(lg, misses, "Team not found in teams table, rows dropped")
}

func runTeamStats(ctx context.Context, r *Runner, deps Deps, lg zerolog.Logger, rep *Report) error {
	rows, err := source.ReadCSV[models.TeamStatsRow](r.files.TeamStats, teamStatsOptions)
	if err != nil {
		return err
	}
	rep.Read = len(rows)

	ix, err := canonicalIndex(ctx, deps.Teams, lg)
	if err != nil {
		return err
	}

	resolver := normalize.NewTeamResolver()
	lg.Debug().Int("aliases", resolver.Len()).Msg("Team alias table loaded")
	joined := reconcile.Join(rows, func(row models.TeamStatsRow) string { return resolver.Resolve(row.Team) }, ix)
	res := reconcile.Partition(joined, func(row models.TeamStatsRow) string { return row.Team })
	rep.Matched = len(res.Matched)
	rep.Unmatched = res.Unmatched
	reportTeamMisses(lg, res.Unmatched)

	records := make([]*models.TeamSeasonStats, len(res.Matched))
	for i, j := range res.Matched {
		records[i] = j.Row.ToTeamSeasonStats(j.ID)
	}

	return store(ctx, r, deps.Writer, lg, models.TeamsStatsTable, records, rep)
}
