package models

import "database/sql"

// Team represents an NBA franchise row in the teams table
type Team struct {
	ID           int64  `db:"id" validate:"required,gt=0"`
	Name         string `db:"name" validate:"required"`
	ImageURL     string `db:"imageurl" validate:"omitempty,url"`
	Abbreviation string `db:"abbreviation" validate:"required,len=3"`
}

// TeamSeasonStats represents one team season line for the teams_stats table
type TeamSeasonStats struct {
	TeamID int64           `db:"idteam" validate:"required,gt=0"`
	Year   string          `db:"year" validate:"required"`
	Games  sql.NullFloat64 `db:"games"`

	// Shooting
	FG               sql.NullFloat64 `db:"fg"`
	FGA              sql.NullFloat64 `db:"fga"`
	FGPercentage     sql.NullFloat64 `db:"fg_percentage"`
	ThreePoints      sql.NullFloat64 `db:"three_points"`
	ThreePA          sql.NullFloat64 `db:"three_pa"`
	ThreePPercentage sql.NullFloat64 `db:"three_p_percentage"`
	FT               sql.NullFloat64 `db:"ft"`
	FTA              sql.NullFloat64 `db:"fta"`
	FTPercentage     sql.NullFloat64 `db:"ft_percentage"`

	// Rebounds
	ORB sql.NullFloat64 `db:"orb"`
	DRB sql.NullFloat64 `db:"drb"`
	TRB sql.NullFloat64 `db:"trb"`

	AST  sql.NullFloat64 `db:"ast"`
	STL  sql.NullFloat64 `db:"stl"`
	BLK  sql.NullFloat64 `db:"blk"`
	TOV  sql.NullFloat64 `db:"tov"`
	PF   sql.NullFloat64 `db:"pf"`
	PTS  sql.NullFloat64 `db:"pts"`
	Eff  sql.NullFloat64 `db:"eff"`
	DEff sql.NullFloat64 `db:"deff"`
}

// Champion represents a finals winner for the nba_champions table
type Champion struct {
	TeamID int64  `db:"idteam" validate:"required,gt=0"`
	Year   string `db:"year" validate:"required"`
}

// TeamStatsRow is one line of the team stats CSV.
// The source repeats "Pct" three times; the reader renames the
// repeats to "Pct.1" and "Pct.2".
type TeamStatsRow struct {
	Team  string `csv:"Team"`
	Year  string `csv:"Year"`
	G     string `csv:"G"`
	Min   string `csv:"Min"`
	Pts   string `csv:"Pts"`
	Reb   string `csv:"Reb"`
	Ast   string `csv:"Ast"`
	Stl   string `csv:"Stl"`
	Blk   string `csv:"Blk"`
	To    string `csv:"To"`
	Pf    string `csv:"Pf"`
	Dreb  string `csv:"Dreb"`
	Oreb  string `csv:"Oreb"`
	FgmA  string `csv:"Fgm-a"`
	FgPct string `csv:"Pct"`
	TgmA  string `csv:"3gm-a"`
	TPct  string `csv:"Pct.1"`
	FtmA  string `csv:"Ftm-a"`
	FtPct string `csv:"Pct.2"`
	Eff   string `csv:"Eff"`
	Deff  string `csv:"Deff"`
}

// ToTeamSeasonStats converts a CSV line into a teams_stats record for teamID
func (r *TeamStatsRow) ToTeamSeasonStats(teamID int64) *TeamSeasonStats {
	fgm, fga := ParseMadeAttempted(r.FgmA)
	tpm, tpa := ParseMadeAttempted(r.TgmA)
	ftm, fta := ParseMadeAttempted(r.FtmA)

	return &TeamSeasonStats{
		TeamID:           teamID,
		Year:             r.Year,
		Games:            ParseStat(r.G),
		FG:               fgm,
		FGA:              fga,
		FGPercentage:     ParseStat(r.FgPct),
		ThreePoints:      tpm,
		ThreePA:          tpa,
		ThreePPercentage: ParseStat(r.TPct),
		FT:               ftm,
		FTA:              fta,
		FTPercentage:     ParseStat(r.FtPct),
		ORB:              ParseStat(r.Oreb),
		DRB:              ParseStat(r.Dreb),
		TRB:              ParseStat(r.Reb),
		AST:              ParseStat(r.Ast),
		STL:              ParseStat(r.Stl),
		BLK:              ParseStat(r.Blk),
		TOV:              ParseStat(r.To),
		PF:               ParseStat(r.Pf),
		PTS:              ParseStat(r.Pts),
		Eff:              ParseStat(r.Eff),
		DEff:             ParseStat(r.Deff),
	}
}

// ChampionRow is one line of the finals workbook
type ChampionRow struct {
	Year     string
	Champion string
}
