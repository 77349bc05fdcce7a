package loader

import (
	"context"

	"github.com/AgustinTorres17/i-datos-55-cents/internal/models"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/normalize"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/reconcile"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/source"

	"github.com/rs/zerolog"
)

const (
	championsYearColumn = "Year"
	championsTeamColumn = "NBA Champion"
)

func runChampions(ctx context.Context, r *Runner, deps Deps, lg zerolog.Logger, rep *Report) error {
	records, err := source.ReadSheet(r.files.Champions, source.SheetOptions{
		Columns: []string{championsYearColumn, championsTeamColumn},
	})
	if err != nil {
		return err
	}

	rows := make([]models.ChampionRow, len(records))
	for i, rec := range records {
		rows[i] = models.ChampionRow{Year: rec.Get(championsYearColumn), Champion: rec.Get(championsTeamColumn)}
	}
	rep.Read = len(rows)

	ix, err := canonicalIndex(ctx, deps.Teams, lg)
	if err != nil {
		return err
	}

	resolver := normalize.NewTeamResolver()
	lg.Debug().Int("aliases", resolver.Len()).Msg("Team alias table loaded")
	joined := reconcile.Join(rows, func(row models.ChampionRow) string { return resolver.Resolve(row.Champion) }, ix)
	res := reconcile.Partition(joined, func(row models.ChampionRow) string { return row.Champion })
	rep.Matched = len(res.Matched)
	rep.Unmatched = res.Unmatched
	reportTeamMisses(lg, res.Unmatched)

	champions := make([]*models.Champion, len(res.Matched))
	for i, j := range res.Matched {
		champions[i] = &models.Champion{TeamID: j.ID, Year: j.Row.Year}
	}

	return store(ctx, r, deps.Writer, lg, models.ChampionsTable, champions, rep)
}
