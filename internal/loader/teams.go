package loader

import (
	"context"

	"github.com/AgustinTorres17/i-datos-55-cents/internal/models"

	"github.com/rs/zerolog"
)

// Franchises are the 30 current NBA teams with the ids every other table refers to
var Franchises = []models.Team{
	{ID: 1, Name: "Atlanta Hawks", ImageURL: "https://upload.wikimedia.org/wikipedia/en/2/24/Atlanta_Hawks_logo.svg", Abbreviation: "ATL"},
	{ID: 2, Name: "Boston Celtics", ImageURL: "https://upload.wikimedia.org/wikipedia/en/thumb/8/8f/Boston_Celtics.svg/800px-Boston_Celtics.svg.png", Abbreviation: "BOS"},
	{ID: 3, Name: "Brooklyn Nets", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/4/44/Brooklyn_Nets_newlogo.svg/800px-Brooklyn_Nets_newlogo.svg.png", Abbreviation: "BKN"},
	{ID: 4, Name: "Charlotte Hornets", ImageURL: "https://upload.wikimedia.org/wikipedia/en/c/c4/Charlotte_Hornets_%282014%29.svg", Abbreviation: "CHH"},
	{ID: 5, Name: "Chicago Bulls", ImageURL: "https://upload.wikimedia.org/wikipedia/en/6/67/Chicago_Bulls_logo.svg", Abbreviation: "CHI"},
	{ID: 6, Name: "Cleveland Cavaliers", ImageURL: "https://seeklogo.com/images/N/nba-cleveland-cavaliers-logo-EC287BF14E-seeklogo.com.png", Abbreviation: "CLE"},
	{ID: 7, Name: "Dallas Mavericks", ImageURL: "https://upload.wikimedia.org/wikipedia/en/9/97/Dallas_Mavericks_logo.svg", Abbreviation: "DAL"},
	{ID: 8, Name: "Denver Nuggets", ImageURL: "https://upload.wikimedia.org/wikipedia/en/7/76/Denver_Nuggets.svg", Abbreviation: "DEN"},
	{ID: 9, Name: "Detroit Pistons", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/3/39/Logo_of_the_Detroit_Pistons.png", Abbreviation: "DET"},
	{ID: 10, Name: "Golden State Warriors", ImageURL: "https://upload.wikimedia.org/wikipedia/sco/thumb/0/01/Golden_State_Warriors_logo.svg/1200px-Golden_State_Warriors_logo.svg.png", Abbreviation: "GSW"},
	{ID: 11, Name: "Houston Rockets", ImageURL: "https://upload.wikimedia.org/wikipedia/en/2/28/Houston_Rockets.svg", Abbreviation: "HOU"},
	{ID: 12, Name: "Indiana Pacers", ImageURL: "https://upload.wikimedia.org/wikipedia/en/1/1b/Indiana_Pacers.svg", Abbreviation: "IND"},
	{ID: 13, Name: "LA Clippers", ImageURL: "https://upload.wikimedia.org/wikipedia/en/thumb/e/ed/Los_Angeles_Clippers_%282024%29.svg/1200px-Los_Angeles_Clippers_%282024%29.svg.png", Abbreviation: "LAC"},
	{ID: 14, Name: "Los Angeles Lakers", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/3/3c/Los_Angeles_Lakers_logo.svg/1200px-Los_Angeles_Lakers_logo.svg.png", Abbreviation: "LAL"},
	{ID: 15, Name: "Memphis Grizzlies", ImageURL: "https://upload.wikimedia.org/wikipedia/en/f/f1/Memphis_Grizzlies.svg", Abbreviation: "MEM"},
	{ID: 16, Name: "Miami Heat", ImageURL: "https://upload.wikimedia.org/wikipedia/en/thumb/f/fb/Miami_Heat_logo.svg/1200px-Miami_Heat_logo.svg.png", Abbreviation: "MIA"},
	{ID: 17, Name: "Milwaukee Bucks", ImageURL: "https://upload.wikimedia.org/wikipedia/en/thumb/4/4a/Milwaukee_Bucks_logo.svg/640px-Milwaukee_Bucks_logo.svg.png", Abbreviation: "MIL"},
	{ID: 18, Name: "Minnesota Timberwolves", ImageURL: "https://upload.wikimedia.org/wikipedia/en/c/c2/Minnesota_Timberwolves_logo.svg", Abbreviation: "MIN"},
	{ID: 19, Name: "New Orleans Pelicans", ImageURL: "https://upload.wikimedia.org/wikipedia/en/0/0d/New_Orleans_Pelicans_logo.svg", Abbreviation: "NOP"},
	{ID: 20, Name: "New York Knicks", ImageURL: "https://upload.wikimedia.org/wikipedia/en/2/25/New_York_Knicks_logo.svg", Abbreviation: "NYK"},
	{ID: 21, Name: "Oklahoma City Thunder", ImageURL: "https://upload.wikimedia.org/wikipedia/en/5/5d/Oklahoma_City_Thunder.svg", Abbreviation: "OKC"},
	{ID: 22, Name: "Orlando Magic", ImageURL: "https://upload.wikimedia.org/wikipedia/en/1/10/Orlando_Magic_logo.svg", Abbreviation: "ORL"},
	{ID: 23, Name: "Philadelphia 76ers", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/e/eb/Philadelphia-76ers-Logo-1977-1996.png", Abbreviation: "PHI"},
	{ID: 24, Name: "Phoenix Suns", ImageURL: "https://upload.wikimedia.org/wikipedia/en/d/dc/Phoenix_Suns_logo.svg", Abbreviation: "PHX"},
	{ID: 25, Name: "Portland Trail Blazers", ImageURL: "https://s.yimg.com/cv/apiv2/default/nba/20181221/500x500/trailblazers_wbgs.png", Abbreviation: "POR"},
	{ID: 26, Name: "Sacramento Kings", ImageURL: "https://upload.wikimedia.org/wikipedia/en/c/c7/SacramentoKings.svg", Abbreviation: "SAC"},
	{ID: 27, Name: "San Antonio Spurs", ImageURL: "https://upload.wikimedia.org/wikipedia/en/a/a2/San_Antonio_Spurs.svg", Abbreviation: "SAS"},
	{ID: 28, Name: "Toronto Raptors", ImageURL: "https://upload.wikimedia.org/wikipedia/en/3/36/Toronto_Raptors_logo.svg", Abbreviation: "TOR"},
	{ID: 29, Name: "Utah Jazz", ImageURL: "https://b.fssta.com/uploads/application/nba/team-logos/Jazz.vresize.350.350.medium.0.png", Abbreviation: "UTA"},
	{ID: 30, Name: "Washington Wizards", ImageURL: "https://upload.wikimedia.org/wikipedia/en/0/02/Washington_Wizards_logo.svg", Abbreviation: "WAS"},
}

func runTeams(ctx context.Context, r *Runner, deps Deps, lg zerolog.Logger, rep *Report) error {
	teams := make([]*models.Team, len(Franchises))
	for i := range Franchises {
		team := Franchises[i]
		teams[i] = &team
	}

	rep.Read = len(teams)
	rep.Matched = len(teams)

	return store(ctx, r, deps.Writer, lg, models.TeamsTable, teams, rep)
}
