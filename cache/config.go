package cache

import "fmt"

// Config holds the cache geometry.
type Config struct {
	// SetBits is the number of set index bits (there are 2^SetBits sets).
	SetBits uint64
	// BlockBits is the number of block offset bits (blocks hold 2^BlockBits
	// bytes).
	BlockBits uint64
	// Associativity is the number of lines per set.
	Associativity uint64
}

// NumSets returns the number of sets in the cache.
func (c Config) NumSets() uint64 {
	return uint64(1) << c.SetBits
}

// BlockSize returns the block size in bytes.
func (c Config) BlockSize() uint64 {
	return uint64(1) << c.BlockBits
}

// Validate checks that the geometry describes a realizable cache. The set
// and block bits must leave at least one tag bit in a 64-bit address.
func (c Config) Validate() error {
	if c.Associativity < 1 {
		return fmt.Errorf("associativity must be >= 1")
	}
	if c.SetBits >= 64 {
		return fmt.Errorf("set index bits must be < 64 (s = %d)", c.SetBits)
	}
	if c.BlockBits >= 64 {
		return fmt.Errorf("block bits must be < 64 (b = %d)", c.BlockBits)
	}
	if c.SetBits+c.BlockBits >= 64 {
		return fmt.Errorf("s + b is too large (s = %d, b = %d)",
			c.SetBits, c.BlockBits)
	}
	return nil
}
