package loader

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/AgustinTorres17/i-datos-55-cents/internal/models"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/reconcile"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupPlayers(t *testing.T) {
	rows := []models.PlayerStatsRow{
		{Player: "Zach Randolph", Pos: "PF"},
		{Player: "Kevin Durant", Pos: "SF"},
		{Player: "Kevin Durant", Pos: "PF"},
		{Player: "Kevin Durant", Pos: "SF"},
		{Player: " ", Pos: "C"},
	}

	groups := groupPlayers(rows)

	require.Len(t, groups, 2)
	assert.Equal(t, "Kevin Durant", groups[0].name)
	assert.Equal(t, []string{"PF", "SF"}, groups[0].positions)
	assert.Equal(t, 3, groups[0].lines)
	assert.Equal(t, "Zach Randolph", groups[1].name)
}

func TestResolvePlayers(t *testing.T) {
	groups := []playerGroup{
		{name: "Charles Smith", positions: []string{"PF"}, lines: 2},
		{name: "LeBron James", positions: []string{"PF", "SF"}, lines: 3},
		{name: "Nobody Known", positions: []string{"C"}, lines: 1},
	}
	candidates := nbaIDCandidates([]models.PlayerIDRow{
		{NBAName: "Charles Smith", NBAID: "1111"},
		{NBAName: "Charles  Smith", NBAID: "2222"},
		{NBAName: "LeBron James", NBAID: "2544"},
		{NBAName: "LeBron James", NBAID: "2544.0"},
		{NBAName: "Ghost", NBAID: ""},
	})

	players, misses, conflicting := resolvePlayers(groups, candidates)

	assert.Equal(t, []models.Player{
		{Name: "Charles Smith", Position: "PF", NBAID: models.UnknownNBAID},
		{Name: "LeBron James", Position: "PF, SF", NBAID: 2544},
		{Name: "Nobody Known", Position: "C", NBAID: models.UnknownNBAID},
	}, players)
	assert.Equal(t, []reconcile.Miss{{Name: "Nobody Known", Count: 1}}, misses)
	assert.Equal(t, []string{"Charles Smith"}, conflicting)
}

func TestPlayers_LoadsWithAudit(t *testing.T) {
	dir := t.TempDir()
	stats := writeFile(t, dir, "NBA_Player_Stats.csv", "Season,Player,Pos,Tm\n"+
		"2019-20,José Calderón,PG,TOR\n"+
		"2020-21,José Calderón,SF,DET\n"+
		"2020-21,Jimmy Nobody,C,MIA\n")
	ids := writeFile(t, dir, "NBA_Player_IDs.csv", "NBAName,NBAID\nJos\xe9 Calder\xf3n,101181\n")

	r, w := testRunner(t, Files{PlayerStats: stats, PlayerIDs: ids}, Options{Audit: true})

	rep, err := r.Run(context.Background(), "players")
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Read)
	assert.Equal(t, 1, rep.Matched)
	assert.Equal(t, []reconcile.Miss{{Name: "Jimmy Nobody", Count: 1}}, rep.Unmatched)
	assert.Equal(t, int64(2), rep.Inserted, "unmatched players are kept with the unknown id")
	assert.Equal(t, [][]any{
		{"Jimmy Nobody", "C", models.UnknownNBAID},
		{"José Calderón", "PG, SF", int64(101181)},
	}, w.batches["players"])

	audit, err := source.ReadCSV[PlayerAuditRow](filepath.Join(dir, playersAuditFile), source.CSVOptions{})
	require.NoError(t, err)
	require.Len(t, audit, 2)
	assert.Equal(t, int64(101181), audit[1].NBAID)
}

func TestPlayers_MissingIDsFile(t *testing.T) {
	dir := t.TempDir()
	stats := writeFile(t, dir, "stats.csv", "Season,Player,Pos,Tm\n2020,A,C,MIA\n")

	r, w := testRunner(t, Files{PlayerStats: stats, PlayerIDs: filepath.Join(dir, "missing.csv")}, Options{})

	_, err := r.Run(context.Background(), "players")
	require.Error(t, err)
	assert.Zero(t, w.calls)
}
