// Package cache models a set-associative write-back cache with LRU
// replacement and dirty-byte accounting. The model tracks tags and line
// state only; it never touches the data behind an address.
package cache

// A line is one slot of a set. Lines are owned by their set and are
// mutated in place; they are never replaced as objects.
type line struct {
	valid bool
	dirty bool
	tag   uint64
	lru   uint64
}

// A set holds a fixed number of lines plus a fill cursor. The cursor counts
// lines filled since construction; while it is below the associativity no
// eviction can happen in this set.
type set struct {
	lines      []line
	fillCursor uint64
}

// lookup returns the valid line holding tag, or nil on a miss. At most one
// valid line in a set can hold a given tag.
func (s *set) lookup(tag uint64) *line {
	for i := range s.lines {
		l := &s.lines[i]
		if l.valid && l.tag == tag {
			return l
		}
	}
	return nil
}

// victim returns the line with the smallest LRU timestamp, preferring the
// lowest index on equal timestamps. Only meaningful once the set is full.
func (s *set) victim() *line {
	v := &s.lines[0]
	for i := 1; i < len(s.lines); i++ {
		if s.lines[i].lru < v.lru {
			v = &s.lines[i]
		}
	}
	return v
}

// Cache is a complete cache model: 2^s sets of E lines each, a shared
// logical clock for LRU ordering, and the running statistics.
type Cache struct {
	config    Config
	blockSize uint64

	sets []set

	// clock is a logical counter bumped once per hit and once per fill.
	// It is the sole LRU ordering signal. It is never reset; a run long
	// enough to overflow uint64 would corrupt the LRU ordering, matching
	// the reference simulator.
	clock uint64

	stats Statistics
}

// AccessResult reports the side effects of a single access.
type AccessResult struct {
	// Hit indicates the access found a matching valid line.
	Hit bool
	// Evicted is true if a line was replaced to serve the access.
	Evicted bool
	// EvictedDirty is true if the replaced line was dirty.
	EvictedDirty bool
}

// New creates a cache from config with every line invalid and statistics
// zeroed. It returns an error if the configuration is invalid.
func New(config Config) (*Cache, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	sets := make([]set, config.NumSets())
	for i := range sets {
		sets[i].lines = make([]line, config.Associativity)
	}

	return &Cache{
		config:    config,
		blockSize: config.BlockSize(),
		sets:      sets,
	}, nil
}

// Config returns the cache configuration.
func (c *Cache) Config() Config {
	return c.config
}

// Stats returns the current statistics.
func (c *Cache) Stats() Statistics {
	return c.stats
}

// ResetStats clears the statistics without touching cache state.
func (c *Cache) ResetStats() {
	c.stats = Statistics{}
}

// Access applies one memory access to the cache and returns its side
// effects. The size is accepted for symmetry with trace records but does
// not affect the model: an access is assumed to be fully contained in one
// block.
func (c *Cache) Access(op Op, addr uint64, size uint64) AccessResult {
	tag, setIndex := DecodeAddress(addr, c.config.SetBits, c.config.BlockBits)
	s := &c.sets[setIndex]

	if l := s.lookup(tag); l != nil {
		c.stats.Hits++
		l.lru = c.clock
		c.clock++
		// A store dirties a clean line exactly once; re-storing to an
		// already-dirty line must not double-count the block.
		if op == Store && !l.dirty {
			l.dirty = true
			c.stats.DirtyBytes += c.blockSize
		}
		return AccessResult{Hit: true}
	}

	c.stats.Misses++

	// Cold miss: the set still has never-used lines.
	if s.fillCursor < uint64(len(s.lines)) {
		l := &s.lines[s.fillCursor]
		s.fillCursor++
		c.fill(l, tag, op)
		return AccessResult{}
	}

	// The set is full: replace the least recently used line.
	v := s.victim()
	result := AccessResult{Evicted: true}
	if v.dirty {
		result.EvictedDirty = true
		c.stats.DirtyEvictions += c.blockSize
		c.stats.DirtyBytes -= c.blockSize
	}
	c.fill(v, tag, op)
	c.stats.Evictions++

	return result
}

// fill overwrites l with a freshly loaded block and advances the clock.
func (c *Cache) fill(l *line, tag uint64, op Op) {
	l.valid = true
	l.tag = tag
	l.dirty = op == Store
	l.lru = c.clock
	c.clock++
	if l.dirty {
		c.stats.DirtyBytes += c.blockSize
	}
}
