package models

// Table describes a destination table and the column order used for bulk inserts
type Table struct {
	Name    string
	Columns []string
}

var (
	TeamsTable = Table{
		Name:    "teams",
		Columns: []string{"id", "name", "imageurl", "abbreviation"},
	}

	PlayersTable = Table{
		Name:    "players",
		Columns: []string{"name", "position", "nba_id"},
	}

	PlayersStatsTable = Table{
		Name: "players_stats",
		Columns: []string{
			"id_player", "year", "team", "games", "games_started", "minutes_played",
			"fg", "fga", "fg_percentage", "three_points", "three_pa", "three_p_percentage",
			"two_points", "two_pa", "two_p_percentage", "efg_percentage",
			"ft", "fta", "ft_percentage", "orb", "drb", "trb",
			"ast", "stl", "blk", "tov", "pf", "pts", "season",
		},
	}

	TeamsStatsTable = Table{
		Name: "teams_stats",
		Columns: []string{
			"idteam", "year", "games",
			"fg", "fga", "fg_percentage", "three_points", "three_pa", "three_p_percentage",
			"ft", "fta", "ft_percentage", "orb", "drb", "trb",
			"ast", "stl", "blk", "tov", "pf", "pts", "eff", "deff",
		},
	}

	MVPTable = Table{
		Name:    "mvp",
		Columns: []string{"idplayer", "year"},
	}

	ChampionsTable = Table{
		Name:    "nba_champions",
		Columns: []string{"idteam", "year"},
	}
)

// CopyValues returns the values in TeamsTable column order
func (t *Team) CopyValues() []any {
	return []any{t.ID, t.Name, t.ImageURL, t.Abbreviation}
}

// CopyValues returns the values in PlayersTable column order
func (p *Player) CopyValues() []any {
	return []any{p.Name, p.Position, p.NBAID}
}

// CopyValues returns the values in PlayersStatsTable column order
func (s *PlayerSeasonStats) CopyValues() []any {
	return []any{
		s.PlayerID, s.Year, s.Team, s.Games, s.GamesStarted, s.MinutesPlayed,
		s.FG, s.FGA, s.FGPercentage, s.ThreePoints, s.ThreePA, s.ThreePPercentage,
		s.TwoPoints, s.TwoPA, s.TwoPPercentage, s.EFGPercentage,
		s.FT, s.FTA, s.FTPercentage, s.ORB, s.DRB, s.TRB,
		s.AST, s.STL, s.BLK, s.TOV, s.PF, s.PTS, s.Season,
	}
}

// CopyValues returns the values in TeamsStatsTable column order
func (s *TeamSeasonStats) CopyValues() []any {
	return []any{
		s.TeamID, s.Year, s.Games,
		s.FG, s.FGA, s.FGPercentage, s.ThreePoints, s.ThreePA, s.ThreePPercentage,
		s.FT, s.FTA, s.FTPercentage, s.ORB, s.DRB, s.TRB,
		s.AST, s.STL, s.BLK, s.TOV, s.PF, s.PTS, s.Eff, s.DEff,
	}
}

// CopyValues returns the values in MVPTable column order
func (m *MVP) CopyValues() []any {
	return []any{m.PlayerID, m.Year}
}

// CopyValues returns the values in ChampionsTable column order
func (c *Champion) CopyValues() []any {
	return []any{c.TeamID, c.Year}
}
