package classify

// Batch operations over a lead collection. "Today" is computed once per batch
// so every record sees the same calendar date even when evaluation spans a
// midnight boundary. The input collection is never mutated or reordered.

// CountsByCategory returns the member count for every category, including the
// synthetic "all" entry equal to len(recs). Categories with no members are
// present with a zero count.
func (e *Engine) CountsByCategory(recs []Record) map[Category]int {
	return e.CountsAt(recs, e.Today())
}

// CountsAt is CountsByCategory with an explicit "today".
func (e *Engine) CountsAt(recs []Record, today string) map[Category]int {
	counts := make(map[Category]int, len(categories)+1)
	for _, c := range categories {
		counts[c] = 0
	}
	counts[CategoryAll] = len(recs)

	for _, rec := range recs {
		v := e.normalize(rec)
		for _, c := range categories {
			if e.matches(c, v, today) {
				counts[c]++
			}
		}
	}

	return counts
}

// FilterByCategory returns the ordered sub-list of records belonging to the
// category. For CategoryAll the input is returned unchanged.
func (e *Engine) FilterByCategory(recs []Record, c Category) []Record {
	return e.FilterAt(recs, c, e.Today())
}

// FilterAt is FilterByCategory with an explicit "today".
func (e *Engine) FilterAt(recs []Record, c Category, today string) []Record {
	if c == CategoryAll {
		return recs
	}

	matched := make([]Record, 0, len(recs))
	for _, rec := range recs {
		if e.matches(c, e.normalize(rec), today) {
			matched = append(matched, rec)
		}
	}
	return matched
}
