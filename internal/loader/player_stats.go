package loader

import (
	"context"
	"fmt"

	"github.com/AgustinTorres17/i-datos-55-cents/internal/models"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/normalize"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/reconcile"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/source"

	"github.com/rs/zerolog"
)

const playerStatsAuditFile = "NBA_Player_Stats_Out.csv"

// PlayerStatsAuditRow is one matched line of the player stats audit file
type PlayerStatsAuditRow struct {
	PlayerID int64  `csv:"id"`
	Player   string `csv:"Player"`
	Season   string `csv:"Season"`
	Team     string `csv:"Tm"`
	Pos      string `csv:"Pos"`
}

func playerKey(row models.PlayerStatsRow) string  { return normalize.Name(row.Player) }
func playerName(row models.PlayerStatsRow) string { return row.Player }

func runPlayerStats(ctx context.Context, r *Runner, deps Deps, lg zerolog.Logger, rep *Report) error {
	rows, err := source.ReadCSV[models.PlayerStatsRow](r.files.PlayerStats, source.CSVOptions{
		Required: []string{"Season", "Player", "Tm"},
	})
	if err != nil {
		return err
	}
	rep.Read = len(rows)

	ix, err := canonicalIndex(ctx, deps.Players, lg)
	if err != nil {
		return err
	}

	res := reconcile.Partition(reconcile.Join(rows, playerKey, ix), playerName)
	rep.Matched = len(res.Matched)
	rep.Unmatched = res.Unmatched
	reportMisses(lg, res.Unmatched, "Player not found in players table, rows dropped")

	records := make([]*models.PlayerSeasonStats, len(res.Matched))
	for i, j := range res.Matched {
		records[i] = j.Row.ToPlayerSeasonStats(j.ID)
	}

	if r.opts.Audit {
		audit := make([]PlayerStatsAuditRow, len(res.Matched))
		for i, j := range res.Matched {
			audit[i] = PlayerStatsAuditRow{PlayerID: j.ID, Player: j.Row.Player, Season: j.Row.Season, Team: j.Row.Tm, Pos: j.Row.Pos}
		}
		path := r.auditPath(playerStatsAuditFile)
		if err := source.WriteCSV(path, audit); err != nil {
			return fmt.Errorf("failed to write player stats audit: %w", err)
		}
		lg.Info().Str("path", path).Int("rows", len(audit)).Msg("Player stats audit written")
	}

	return store(ctx, r, deps.Writer, lg, models.PlayersStatsTable, records, rep)
}
