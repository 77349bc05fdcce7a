package reconcile

// Joined is a source row after the left join. ID is meaningful only when Matched.
type Joined[T any] struct {
	Row     T
	Key     string
	ID      int64
	Matched bool
}

// Miss is an unmatched source name and how many rows carried it
type Miss struct {
	Name  string
	Count int
}

// Result splits joined rows into the matched set and the unmatched names
type Result[T any] struct {
	Matched   []Joined[T]
	Unmatched []Miss
}

// UnmatchedRows returns the number of rows behind Unmatched
func (r Result[T]) UnmatchedRows() int {
	n := 0
	for _, m := range r.Unmatched {
		n += m.Count
	}
	return n
}

// Join left-joins rows against ix. key must return an already-normalized key.
// The output has one entry per input row, in input order.
func Join[T any](rows []T, key func(T) string, ix *Index) []Joined[T] {
	out := make([]Joined[T], 0, len(rows))
	for _, row := range rows {
		k := key(row)
		id, ok := ix.Lookup(k)
		out = append(out, Joined[T]{Row: row, Key: k, ID: id, Matched: ok})
	}
	return out
}

// Partition separates matched rows from misses. Misses are grouped by the
// display name returned by name, in first-seen order.
func Partition[T any](joined []Joined[T], name func(T) string) Result[T] {
	res := Result[T]{Matched: make([]Joined[T], 0, len(joined))}
	seen := make(map[string]int)

	for _, j := range joined {
		if j.Matched {
			res.Matched = append(res.Matched, j)
			continue
		}
		n := name(j.Row)
		if i, ok := seen[n]; ok {
			res.Unmatched[i].Count++
			continue
		}
		seen[n] = len(res.Unmatched)
		res.Unmatched = append(res.Unmatched, Miss{Name: n, Count: 1})
	}

	return res
}
