package reconcile

// NullifyConflicts replaces the identifier of every row whose name carries
// more than one distinct identifier with unknown. Rows already holding
// unknown do not count as a distinct identifier. Rows are modified in place;
// the conflicting names are returned in first-seen order.
func NullifyConflicts[T any](rows []T, name func(*T) string, id func(*T) int64, setID func(*T, int64), unknown int64) []string {
	distinct := make(map[string]map[int64]struct{})
	var order []string

	for i := range rows {
		n := name(&rows[i])
		ids, ok := distinct[n]
		if !ok {
			ids = make(map[int64]struct{})
			distinct[n] = ids
			order = append(order, n)
		}
		if v := id(&rows[i]); v != unknown {
			ids[v] = struct{}{}
		}
	}

	var conflicting []string
	conflict := make(map[string]bool)
	for _, n := range order {
		if len(distinct[n]) > 1 {
			conflict[n] = true
			conflicting = append(conflicting, n)
		}
	}
	if len(conflicting) == 0 {
		return nil
	}

	for i := range rows {
		if conflict[name(&rows[i])] {
			setID(&rows[i], unknown)
		}
	}

	return conflicting
}
