package loader

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/AgustinTorres17/i-datos-55-cents/internal/models"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/normalize"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/reconcile"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/source"

	"github.com/rs/zerolog"
)

const playersAuditFile = "NBA_Player_Stats_cleaned.csv"

// PlayerAuditRow is one line of the cleaned players audit file
type PlayerAuditRow struct {
	Player string `csv:"Player"`
	Pos    string `csv:"Pos"`
	NBAID  int64  `csv:"NBAID"`
}

// playerGroup is every stat line of one player name
type playerGroup struct {
	name      string
	positions []string
	lines     int
}

// groupPlayers collapses stat lines by player name. Positions are the
// unique non-blank values sorted and joined with ", ". Groups are sorted by name.
func groupPlayers(rows []models.PlayerStatsRow) []playerGroup {
	byName := make(map[string]*playerGroup)
	seenPos := make(map[string]map[string]bool)

	for _, row := range rows {
		name := strings.TrimSpace(row.Player)
		if name == "" {
			continue
		}
		g, ok := byName[name]
		if !ok {
			g = &playerGroup{name: name}
			byName[name] = g
			seenPos[name] = make(map[string]bool)
		}
		g.lines++
		if pos := strings.TrimSpace(row.Pos); pos != "" && !seenPos[name][pos] {
			seenPos[name][pos] = true
			g.positions = append(g.positions, pos)
		}
	}

	groups := make([]playerGroup, 0, len(byName))
	for _, g := range byName {
		sort.Strings(g.positions)
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].name < groups[j].name })
	return groups
}

// nbaIDCandidates maps each normalized NBAName to its distinct ids in file order.
// reconcile.Index keeps one id per key, which would hide the ambiguity
// NullifyConflicts has to see, so this job keys on every candidate instead.
func nbaIDCandidates(rows []models.PlayerIDRow) map[string][]int64 {
	out := make(map[string][]int64)
	for i := range rows {
		key := normalize.Name(rows[i].NBAName)
		id := rows[i].ID()
		if key == "" || id == models.UnknownNBAID {
			continue
		}
		dup := false
		for _, seen := range out[key] {
			if seen == id {
				dup = true
				break
			}
		}
		if !dup {
			out[key] = append(out[key], id)
		}
	}
	return out
}

// resolvePlayers attaches NBA ids to grouped players. A name with several
// candidate ids gets UnknownNBAID, as does a name with none.
func resolvePlayers(groups []playerGroup, candidates map[string][]int64) (players []models.Player, misses []reconcile.Miss, conflicting []string) {
	// one row per (player, candidate id) so ambiguity is visible to the nullifier
	var rows []models.Player
	for _, g := range groups {
		position := strings.Join(g.positions, ", ")
		ids := candidates[normalize.Name(g.name)]
		if len(ids) == 0 {
			misses = append(misses, reconcile.Miss{Name: g.name, Count: g.lines})
			rows = append(rows, models.Player{Name: g.name, Position: position, NBAID: models.UnknownNBAID})
			continue
		}
		for _, id := range ids {
			rows = append(rows, models.Player{Name: g.name, Position: position, NBAID: id})
		}
	}

	conflicting = reconcile.NullifyConflicts(rows,
		func(p *models.Player) string { return p.Name },
		func(p *models.Player) int64 { return p.NBAID },
		func(p *models.Player, id int64) { p.NBAID = id },
		models.UnknownNBAID,
	)

	seen := make(map[string]bool, len(groups))
	for _, p := range rows {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		players = append(players, p)
	}

	return players, misses, conflicting
}

func runPlayers(ctx context.Context, r *Runner, deps Deps, lg zerolog.Logger, rep *Report) error {
	stats, err := source.ReadCSV[models.PlayerStatsRow](r.files.PlayerStats, source.CSVOptions{
		Required: []string{"Player", "Pos"},
	})
	if err != nil {
		return err
	}
	ids, err := source.ReadCSV[models.PlayerIDRow](r.files.PlayerIDs, source.CSVOptions{
		Latin1:   true,
		Required: []string{"NBAName", "NBAID"},
	})
	if err != nil {
		return err
	}
	rep.Read = len(stats)

	groups := groupPlayers(stats)
	players, misses, conflicting := resolvePlayers(groups, nbaIDCandidates(ids))

	rep.Unmatched = misses
	rep.Nullified = len(conflicting)
	for _, p := range players {
		if p.NBAID != models.UnknownNBAID {
			rep.Matched++
		}
	}

	reportMisses(lg, misses, "No NBA id found, loading player with unknown id")
	for _, name := range conflicting {
		lg.Warn().Str("name", name).Msg("Player has several NBA ids, loading with unknown id")
	}

	if r.opts.Audit {
		audit := make([]PlayerAuditRow, len(players))
		for i, p := range players {
			audit[i] = PlayerAuditRow{Player: p.Name, Pos: p.Position, NBAID: p.NBAID}
		}
		path := r.auditPath(playersAuditFile)
		if err := source.WriteCSV(path, audit); err != nil {
			return fmt.Errorf("failed to write players audit: %w", err)
		}
		lg.Info().Str("path", path).Int("rows", len(audit)).Msg("Players audit written")
	}

	records := make([]*models.Player, len(players))
	for i := range players {
		records[i] = &players[i]
	}

	return store(ctx, r, deps.Writer, lg, models.PlayersTable, records, rep)
}
