package reconcile

import (
	"testing"

	"github.com/AgustinTorres17/i-datos-55-cents/internal/normalize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statLine struct {
	Player string
	Season string
}

func playerKey(s statLine) string  { return normalize.Name(s.Player) }
func playerName(s statLine) string { return s.Player }

func TestNewIndex_FirstRowWins(t *testing.T) {
	ix := NewIndex([]Canonical{
		{ID: 1, Name: "Tony Parker"},
		{ID: 2, Name: "TONY  PARKER"},
		{ID: 3, Name: "Manu Ginóbili"},
		{ID: 4, Name: "   "},
	})

	assert.Equal(t, 2, ix.Len())

	id, ok := ix.Lookup("tony parker")
	require.True(t, ok)
	assert.Equal(t, int64(1), id, "first canonical row in order wins")

	id, ok = ix.Lookup("manu ginobili")
	require.True(t, ok)
	assert.Equal(t, int64(3), id)

	_, ok = ix.Lookup("")
	assert.False(t, ok, "empty key never matches")

	require.Len(t, ix.Duplicates(), 1)
	assert.Equal(t, Duplicate{Key: "tony parker", KeptID: 1, DroppedID: 2}, ix.Duplicates()[0])
}

func TestJoin_PreservesEveryRow(t *testing.T) {
	ix := NewIndex([]Canonical{{ID: 30, Name: "Stephen Curry"}, {ID: 23, Name: "LeBron James"}})
	rows := []statLine{
		{Player: "Stephen Curry", Season: "2015"},
		{Player: "Unknown Guy", Season: "2015"},
		{Player: "LEBRON JAMES", Season: "2016"},
		{Player: "Unknown Guy", Season: "2016"},
		{Player: "", Season: "2016"},
	}

	joined := Join(rows, playerKey, ix)
	require.Len(t, joined, len(rows))

	assert.True(t, joined[0].Matched)
	assert.Equal(t, int64(30), joined[0].ID)
	assert.False(t, joined[1].Matched)
	assert.Equal(t, int64(23), joined[2].ID)
	assert.Equal(t, "lebron james", joined[2].Key)
	assert.False(t, joined[4].Matched)

	res := Partition(joined, playerName)
	assert.Len(t, res.Matched, 2)
	assert.Equal(t, []Miss{{Name: "Unknown Guy", Count: 2}, {Name: "", Count: 1}}, res.Unmatched)
	assert.Equal(t, len(rows), len(res.Matched)+res.UnmatchedRows(), "no row vanishes before the drop")
}

func TestPartition_AllMatched(t *testing.T) {
	ix := NewIndex([]Canonical{{ID: 7, Name: "Kevin Durant"}})
	res := Partition(Join([]statLine{{Player: "Kevin Durant"}}, playerKey, ix), playerName)

	assert.Len(t, res.Matched, 1)
	assert.Empty(t, res.Unmatched)
	assert.Zero(t, res.UnmatchedRows())
}

type candidate struct {
	Player string
	ID     int64
}

func TestNullifyConflicts(t *testing.T) {
	rows := []candidate{
		{Player: "A", ID: 1},
		{Player: "A", ID: 2},
		{Player: "B", ID: 3},
	}

	conflicting := NullifyConflicts(rows,
		func(c *candidate) string { return c.Player },
		func(c *candidate) int64 { return c.ID },
		func(c *candidate, id int64) { c.ID = id },
		-1,
	)

	assert.Equal(t, []string{"A"}, conflicting)
	assert.Equal(t, []candidate{{"A", -1}, {"A", -1}, {"B", 3}}, rows)
}

func TestNullifyConflicts_IgnoresUnknownAndRepeats(t *testing.T) {
	rows := []candidate{
		{Player: "A", ID: 1},
		{Player: "A", ID: 1},
		{Player: "A", ID: -1},
		{Player: "B", ID: -1},
	}

	conflicting := NullifyConflicts(rows,
		func(c *candidate) string { return c.Player },
		func(c *candidate) int64 { return c.ID },
		func(c *candidate, id int64) { c.ID = id },
		-1,
	)

	assert.Nil(t, conflicting)
	assert.Equal(t, int64(1), rows[0].ID)
	assert.Equal(t, int64(1), rows[1].ID)
}
