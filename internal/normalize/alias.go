package normalize

// teamAliases maps historical city names, relocated franchises and
// spelling variants to the franchise name stored in the teams table.
var teamAliases = map[string]string{
	"atlanta":                "Atlanta Hawks",
	"st louis hawks":         "Atlanta Hawks",
	"boston":                 "Boston Celtics",
	"brooklyn":               "Brooklyn Nets",
	"new jersey":             "Brooklyn Nets",
	"new jersey nets":        "Brooklyn Nets",
	"charlotte":              "Charlotte Hornets",
	"charlotte bobcats":      "Charlotte Hornets",
	"chicago":                "Chicago Bulls",
	"cleveland":              "Cleveland Cavaliers",
	"dallas":                 "Dallas Mavericks",
	"denver":                 "Denver Nuggets",
	"detroit":                "Detroit Pistons",
	"fort wayne pistons":     "Detroit Pistons",
	"golden state":           "Golden State Warriors",
	"philadelphia warriors":  "Golden State Warriors",
	"san francisco warriors": "Golden State Warriors",
	"houston":                "Houston Rockets",
	"indiana":                "Indiana Pacers",
	"la clippers":            "LA Clippers",
	"l a clippers":           "LA Clippers",
	"laclippers":             "LA Clippers",
	"los angeles clippers":   "LA Clippers",
	"la lakers":              "Los Angeles Lakers",
	"l a lakers":             "Los Angeles Lakers",
	"lalakers":               "Los Angeles Lakers",
	"lakers":                 "Los Angeles Lakers",
	"los angeles lakers":     "Los Angeles Lakers",
	"minneapolis lakers":     "Los Angeles Lakers",
	"memphis":                "Memphis Grizzlies",
	"vancouver":              "Memphis Grizzlies",
	"miami":                  "Miami Heat",
	"milwaukee":              "Milwaukee Bucks",
	"minnesota":              "Minnesota Timberwolves",
	"new orleans":            "New Orleans Pelicans",
	"new york":               "New York Knicks",
	"oklahoma city":          "Oklahoma City Thunder",
	"seattle":                "Oklahoma City Thunder",
	"seattle supersonics":    "Oklahoma City Thunder",
	"orlando":                "Orlando Magic",
	"philadelphia":           "Philadelphia 76ers",
	"syracuse nationals":     "Philadelphia 76ers",
	"phoenix":                "Phoenix Suns",
	"portland":               "Portland Trail Blazers",
	"sacramento":             "Sacramento Kings",
	"rochester royals":       "Sacramento Kings",
	"cincinnati royals":      "Sacramento Kings",
	"kansas city kings":      "Sacramento Kings",
	"san antonio":            "San Antonio Spurs",
	"toronto":                "Toronto Raptors",
	"utah":                   "Utah Jazz",
	"new orleans jazz":       "Utah Jazz",
	"washington":             "Washington Wizards",
	"baltimore bullets":      "Washington Wizards",
	"washington bullets":     "Washington Wizards",
}

// AliasResolver turns raw team names into team-table keys.
// It is read-only after construction.
type AliasResolver struct {
	aliases map[string]string // normalized alias -> normalized canonical name
}

// NewAliasResolver builds a resolver from alias -> canonical name pairs.
// Both sides are normalized here, so callers may pass display spellings.
func NewAliasResolver(aliases map[string]string) *AliasResolver {
	m := make(map[string]string, len(aliases))
	for alias, canonical := range aliases {
		m[Name(alias)] = Name(canonical)
	}
	return &AliasResolver{aliases: m}
}

// NewTeamResolver is NewAliasResolver over the built-in relocation and spelling table.
func NewTeamResolver() *AliasResolver {
	return NewAliasResolver(teamAliases)
}

// Resolve returns the normalized canonical name for raw, or the normalized
// form of raw itself when no alias covers it.
func (r *AliasResolver) Resolve(raw string) string {
	key := Name(raw)
	if canonical, ok := r.aliases[key]; ok {
		return canonical
	}
	return key
}

// Len returns the number of aliases known to the resolver.
func (r *AliasResolver) Len() int {
	return len(r.aliases)
}
