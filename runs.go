package fastmask

// run is the intermediate (symbol, count) pair the run extractor produces
// for one row. It is never exported: spec.md's data model treats it as a
// value computed fresh per row, not a caller-visible type.
type run struct {
	symbol uint8
	count  uint32
}

// forEachRun walks row left to right and invokes f once per maximal run of
// equal samples, in order. This is the canonical decomposition spec.md §4.3
// fixes: a new run starts each time the current sample differs from the
// previous one, so adjacent runs always have distinct symbols and the sum
// of counts always equals len(row). A row of identical samples yields
// exactly one run.
//
// It never allocates, so the encoder's statistics and emit passes (which
// both call it once per row) add no per-row garbage.
func forEachRun(row []byte, f func(symbol uint8, count uint32)) {
	if len(row) == 0 {
		return
	}
	cur := row[0]
	count := uint32(1)
	for i := 1; i < len(row); i++ {
		if row[i] == cur {
			count++
			continue
		}
		f(cur, count)
		cur = row[i]
		count = 1
	}
	f(cur, count)
}

// extractRuns is the allocating convenience form of forEachRun, used by
// tests that want to inspect a row's run decomposition directly.
func extractRuns(row []byte) []run {
	var runs []run
	forEachRun(row, func(symbol uint8, count uint32) {
		runs = append(runs, run{symbol: symbol, count: count})
	})
	return runs
}
