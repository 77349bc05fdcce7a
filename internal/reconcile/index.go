// Package reconcile attaches canonical identifiers to source rows by
// normalized name and separates the rows that could not be matched.
package reconcile

import "github.com/AgustinTorres17/i-datos-55-cents/internal/normalize"

// Canonical is an authoritative row (team or player) that source names are matched against
type Canonical struct {
	ID   int64
	Name string
}

// Duplicate records a canonical row whose key was already taken by an earlier row
type Duplicate struct {
	Key       string
	KeptID    int64
	DroppedID int64
}

// Index maps normalized canonical names to identifiers.
//
// When several canonical rows share a key, the first one in input order
// wins and the rest are reported by Duplicates. Rows whose name normalizes
// to the empty key are never indexed.
type Index struct {
	ids        map[string]int64
	duplicates []Duplicate
}

// NewIndex builds an index over rows, keyed by normalize.Name
func NewIndex(rows []Canonical) *Index {
	ix := &Index{ids: make(map[string]int64, len(rows))}
	for _, row := range rows {
		key := normalize.Name(row.Name)
		if key == "" {
			continue
		}
		if kept, ok := ix.ids[key]; ok {
			ix.duplicates = append(ix.duplicates, Duplicate{Key: key, KeptID: kept, DroppedID: row.ID})
			continue
		}
		ix.ids[key] = row.ID
	}
	return ix
}

// Lookup returns the identifier for an already-normalized key
func (ix *Index) Lookup(key string) (int64, bool) {
	if key == "" {
		return 0, false
	}
	id, ok := ix.ids[key]
	return id, ok
}

// Len returns the number of distinct keys
func (ix *Index) Len() int {
	return len(ix.ids)
}

// Duplicates returns the canonical rows shadowed by an earlier row with the same key
func (ix *Index) Duplicates() []Duplicate {
	return ix.duplicates
}
