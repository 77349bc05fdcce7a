package models

import (
	"database/sql"
	"math"
	"strconv"
	"strings"
)

// UnknownNBAID marks a player whose NBA id could not be resolved or is ambiguous
const UnknownNBAID int64 = -1

// Player represents a row in the players table
type Player struct {
	Name     string `db:"name" validate:"required"`
	Position string `db:"position"`
	NBAID    int64  `db:"nba_id" validate:"gte=-1"`
}

// PlayerSeasonStats represents one player season line for the players_stats table
type PlayerSeasonStats struct {
	PlayerID int64  `db:"id_player" validate:"required,gt=0"`
	Year     string `db:"year" validate:"required"`
	Team     string `db:"team"`

	Games         sql.NullFloat64 `db:"games"`
	GamesStarted  sql.NullFloat64 `db:"games_started"`
	MinutesPlayed sql.NullFloat64 `db:"minutes_played"`

	// Shooting
	FG               sql.NullFloat64 `db:"fg"`
	FGA              sql.NullFloat64 `db:"fga"`
	FGPercentage     sql.NullFloat64 `db:"fg_percentage"`
	ThreePoints      sql.NullFloat64 `db:"three_points"`
	ThreePA          sql.NullFloat64 `db:"three_pa"`
	ThreePPercentage sql.NullFloat64 `db:"three_p_percentage"`
	TwoPoints        sql.NullFloat64 `db:"two_points"`
	TwoPA            sql.NullFloat64 `db:"two_pa"`
	TwoPPercentage   sql.NullFloat64 `db:"two_p_percentage"`
	EFGPercentage    sql.NullFloat64 `db:"efg_percentage"`
	FT               sql.NullFloat64 `db:"ft"`
	FTA              sql.NullFloat64 `db:"fta"`
	FTPercentage     sql.NullFloat64 `db:"ft_percentage"`

	// Rebounds
	ORB sql.NullFloat64 `db:"orb"`
	DRB sql.NullFloat64 `db:"drb"`
	TRB sql.NullFloat64 `db:"trb"`

	AST sql.NullFloat64 `db:"ast"`
	STL sql.NullFloat64 `db:"stl"`
	BLK sql.NullFloat64 `db:"blk"`
	TOV sql.NullFloat64 `db:"tov"`
	PF  sql.NullFloat64 `db:"pf"`
	PTS sql.NullFloat64 `db:"pts"`

	Season string `db:"season" validate:"required"`
}

// MVP represents a season MVP award for the mvp table
type MVP struct {
	PlayerID int64  `db:"idplayer" validate:"required,gt=0"`
	Year     string `db:"year" validate:"required"`
}

// PlayerStatsRow is one line of the player stats CSV
type PlayerStatsRow struct {
	Season   string `csv:"Season"`
	Player   string `csv:"Player"`
	Pos      string `csv:"Pos"`
	Tm       string `csv:"Tm"`
	G        string `csv:"G"`
	GS       string `csv:"GS"`
	MP       string `csv:"MP"`
	FG       string `csv:"FG"`
	FGA      string `csv:"FGA"`
	FGPct    string `csv:"FG%"`
	ThreeP   string `csv:"3P"`
	ThreePA  string `csv:"3PA"`
	ThreePct string `csv:"3P%"`
	TwoP     string `csv:"2P"`
	TwoPA    string `csv:"2PA"`
	TwoPct   string `csv:"2P%"`
	EFGPct   string `csv:"eFG%"`
	FT       string `csv:"FT"`
	FTA      string `csv:"FTA"`
	FTPct    string `csv:"FT%"`
	ORB      string `csv:"ORB"`
	DRB      string `csv:"DRB"`
	TRB      string `csv:"TRB"`
	AST      string `csv:"AST"`
	STL      string `csv:"STL"`
	BLK      string `csv:"BLK"`
	TOV      string `csv:"TOV"`
	PF       string `csv:"PF"`
	PTS      string `csv:"PTS"`
	MVP      string `csv:"MVP"`
}

// IsMVP reports whether the MVP column marks this line as the season MVP
func (r *PlayerStatsRow) IsMVP() bool {
	switch strings.ToLower(strings.TrimSpace(r.MVP)) {
	case "true", "t", "1", "1.0", "yes", "y":
		return true
	default:
		return false
	}
}

// ToPlayerSeasonStats converts a CSV line into a players_stats record for playerID
func (r *PlayerStatsRow) ToPlayerSeasonStats(playerID int64) *PlayerSeasonStats {
	return &PlayerSeasonStats{
		PlayerID:         playerID,
		Year:             r.Season,
		Team:             r.Tm,
		Games:            ParseStat(r.G),
		GamesStarted:     ParseStat(r.GS),
		MinutesPlayed:    ParseStat(r.MP),
		FG:               ParseStat(r.FG),
		FGA:              ParseStat(r.FGA),
		FGPercentage:     ParseStat(r.FGPct),
		ThreePoints:      ParseStat(r.ThreeP),
		ThreePA:          ParseStat(r.ThreePA),
		ThreePPercentage: ParseStat(r.ThreePct),
		TwoPoints:        ParseStat(r.TwoP),
		TwoPA:            ParseStat(r.TwoPA),
		TwoPPercentage:   ParseStat(r.TwoPct),
		EFGPercentage:    ParseStat(r.EFGPct),
		FT:               ParseStat(r.FT),
		FTA:              ParseStat(r.FTA),
		FTPercentage:     ParseStat(r.FTPct),
		ORB:              ParseStat(r.ORB),
		DRB:              ParseStat(r.DRB),
		TRB:              ParseStat(r.TRB),
		AST:              ParseStat(r.AST),
		STL:              ParseStat(r.STL),
		BLK:              ParseStat(r.BLK),
		TOV:              ParseStat(r.TOV),
		PF:               ParseStat(r.PF),
		PTS:              ParseStat(r.PTS),
		Season:           r.Season,
	}
}

// PlayerIDRow is one line of the NBA player id mapping CSV
type PlayerIDRow struct {
	NBAName string `csv:"NBAName"`
	NBAID   string `csv:"NBAID"`
}

// ID parses the NBAID column, returning UnknownNBAID when it is blank or malformed
func (r *PlayerIDRow) ID() int64 {
	s := strings.TrimSpace(r.NBAID)
	if s == "" {
		return UnknownNBAID
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id
	}
	// pandas writes integer columns with missing values as floats ("2544.0")
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return int64(f)
	}
	return UnknownNBAID
}

// ParseStat converts a numeric cell, yielding NULL for blank or non-numeric input
func ParseStat(raw string) sql.NullFloat64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return sql.NullFloat64{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

// ParseMadeAttempted splits a "made-attempted" cell such as "3012-6543"
func ParseMadeAttempted(raw string) (made, attempted sql.NullFloat64) {
	parts := strings.SplitN(strings.TrimSpace(raw), "-", 2)
	if len(parts) != 2 {
		return sql.NullFloat64{}, sql.NullFloat64{}
	}
	return ParseStat(parts[0]), ParseStat(parts[1])
}
