package cache

// Statistics holds the running access counters. Only Cache.Access mutates
// them; everything else reads a copy via Cache.Stats.
type Statistics struct {
	// Hits counts accesses that found a matching valid line.
	Hits uint64
	// Misses counts accesses that did not.
	Misses uint64
	// Evictions counts replacements of a valid line.
	Evictions uint64
	// DirtyBytes is the number of bytes currently held in valid dirty
	// lines (block size per dirty line).
	DirtyBytes uint64
	// DirtyEvictions is the cumulative number of dirty bytes evicted.
	DirtyEvictions uint64
}
