package loader

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/AgustinTorres17/i-datos-55-cents/internal/models"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/reconcile"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const playerStatsHeader = "Season,Player,Pos,Tm,G,GS,MP,FG,FGA,FG%,PTS,MVP\n"

func TestPlayerStats_OneMatchOneMiss(t *testing.T) {
	dir := t.TempDir()
	stats := writeFile(t, dir, "NBA_Player_Stats.csv", playerStatsHeader+
		"2019-20,LEBRON  JAMES,PG,LAL,67,67,34.6,9.6,19.4,.493,25.3,False\n"+
		"2019-20,Someone Else,C,LAL,10,0,5.0,1,2,.500,2.0,False\n")

	r, w := testRunner(t, Files{PlayerStats: stats}, Options{})

	rep, err := r.Run(context.Background(), "player-stats")
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Read)
	assert.Equal(t, 1, rep.Matched)
	assert.Equal(t, int64(1), rep.Inserted)
	assert.Equal(t, []reconcile.Miss{{Name: "Someone Else", Count: 1}}, rep.Unmatched)

	rows := w.batches["players_stats"]
	require.Len(t, rows, 1)
	require.Len(t, rows[0], len(models.PlayersStatsTable.Columns))
	assert.Equal(t, int64(1), rows[0][0])
	assert.Equal(t, "2019-20", rows[0][1])
	assert.Equal(t, "LAL", rows[0][2])
	assert.Equal(t, sql.NullFloat64{Float64: 67, Valid: true}, rows[0][3])
	assert.Equal(t, sql.NullFloat64{}, rows[0][9], "missing 3P column loads as NULL")
	assert.Equal(t, "2019-20", rows[0][28])
}

func TestPlayerStats_WritesAudit(t *testing.T) {
	dir := t.TempDir()
	stats := writeFile(t, dir, "NBA_Player_Stats.csv", playerStatsHeader+
		"2019-20,Luka Doncic,PG,DAL,61,61,33.6,9.5,20.7,.463,28.8,False\n")

	r, _ := testRunner(t, Files{PlayerStats: stats}, Options{Audit: true, DryRun: true})

	_, err := r.Run(context.Background(), "player-stats")
	require.NoError(t, err)

	audit, err := source.ReadCSV[PlayerStatsAuditRow](filepath.Join(dir, playerStatsAuditFile), source.CSVOptions{})
	require.NoError(t, err)
	require.Len(t, audit, 1)
	assert.Equal(t, int64(2), audit[0].PlayerID, "accent-free spelling matches the canonical Dončić")
}

func TestMVPs_OnlyFlaggedLines(t *testing.T) {
	dir := t.TempDir()
	stats := writeFile(t, dir, "NBA_Player_Stats.csv", playerStatsHeader+
		"2012-13,LeBron James,SF,MIA,76,76,37.9,10.1,17.8,.565,26.8,True\n"+
		"2013-14,LeBron James,SF,MIA,77,77,37.7,10.0,17.6,.567,27.1,False\n"+
		"2019-20,Giannis Antetokounmpo,PF,MIL,63,63,30.4,10.9,19.7,.553,29.5,True\n")

	r, w := testRunner(t, Files{PlayerStats: stats}, Options{})

	rep, err := r.Run(context.Background(), "mvps")
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Read)
	assert.Equal(t, []reconcile.Miss{{Name: "Giannis Antetokounmpo", Count: 1}}, rep.Unmatched)
	assert.Equal(t, [][]any{{int64(1), "2012-13"}}, w.batches["mvp"])
}

func TestTeamStats_AliasesAndRepeatedHeader(t *testing.T) {
	dir := t.TempDir()
	header := "Team,Year,G,Min,Pts,Reb,Ast,Stl,Blk,To,Pf,Dreb,Oreb,Fgm-a,Pct,3gm-a,Pct,Ftm-a,Pct,Eff,Deff\n"
	teams := writeFile(t, dir, "NBA_Team_Stats.csv", header+header+
		"Seattle,2005,82,240,102.6,42.1,21.0,7.1,4.2,13.3,22.1,28.6,13.5,3012-6543,.460,500-1400,.357,1500-2000,.750,105.1,101.2\n"+
		"L.A. Clippers,2005,82,240,96.2,42.9,19.4,6.4,5.1,14.2,21.9,30.1,12.8,2900-6600,.439,350-1000,.350,1600-2100,.762,-,99.0\n"+
		"Atlantis,2005,82,240,90.0,40.0,20.0,7.0,4.0,14.0,20.0,29.0,11.0,2800-6500,.431,300-900,.333,1400-1900,.737,95.0,100.0\n")

	r, w := testRunner(t, Files{TeamStats: teams}, Options{})

	rep, err := r.Run(context.Background(), "team-stats")
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Read)
	assert.Equal(t, 2, rep.Matched)
	assert.Equal(t, []reconcile.Miss{{Name: "Atlantis", Count: 1}}, rep.Unmatched)

	rows := w.batches["teams_stats"]
	require.Len(t, rows, 2)
	assert.Equal(t, int64(21), rows[0][0], "Seattle resolves to the Thunder")
	assert.Equal(t, sql.NullFloat64{Float64: 3012, Valid: true}, rows[0][3])
	assert.Equal(t, sql.NullFloat64{Float64: 6543, Valid: true}, rows[0][4])
	assert.Equal(t, sql.NullFloat64{Float64: .357, Valid: true}, rows[0][8])
	assert.Equal(t, int64(13), rows[1][0], "L.A. Clippers resolves to the LA Clippers")
	assert.Equal(t, sql.NullFloat64{}, rows[1][21], "non-numeric Eff loads as NULL")
}

func TestTeamStats_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	teams := writeFile(t, dir, "teams.csv", "Team,Year\nskip,me\nBoston,2005\n")

	r, w := testRunner(t, Files{TeamStats: teams}, Options{})

	_, err := r.Run(context.Background(), "team-stats")
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrMissingColumn)
	assert.Zero(t, w.calls)
}
