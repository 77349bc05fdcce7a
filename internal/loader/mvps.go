package loader

import (
	"context"

	"github.com/AgustinTorres17/i-datos-55-cents/internal/models"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/reconcile"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/source"

	"github.com/rs/zerolog"
)

func runMVPs(ctx context.Context, r *Runner, deps Deps, lg zerolog.Logger, rep *Report) error {
	rows, err := source.ReadCSV[models.PlayerStatsRow](r.files.PlayerStats, source.CSVOptions{
		Required: []string{"Season", "Player", "MVP"},
	})
	if err != nil {
		return err
	}

	var winners []models.PlayerStatsRow
	for i := range rows {
		if rows[i].IsMVP() {
			winners = append(winners, rows[i])
		}
	}
	rep.Read = len(winners)
	lg.Debug().Int("lines", len(rows)).Int("mvps", len(winners)).Msg("MVP lines selected")

	ix, err := canonicalIndex(ctx, deps.Players, lg)
	if err != nil {
		return err
	}

	res := reconcile.Partition(reconcile.Join(winners, playerKey, ix), playerName)
	rep.Matched = len(res.Matched)
	rep.Unmatched = res.Unmatched
	reportMisses(lg, res.Unmatched, "Player not found in players table, MVP dropped")

	records := make([]*models.MVP, len(res.Matched))
	for i, j := range res.Matched {
		records[i] = &models.MVP{PlayerID: j.ID, Year: j.Row.Season}
	}

	return store(ctx, r, deps.Writer, lg, models.MVPTable, records, rep)
}
