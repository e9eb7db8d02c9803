package cache_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	akitacache "github.com/sarchlab/akita/v4/mem/cache"

	"github.com/RyanROCKET-YYH/Cache-lab/cache"
)

// directoryOracle is an independent LRU reference built on the Akita cache
// directory. It only tracks hit/miss/eviction outcomes, which is enough to
// cross-check the replacement behavior of the model.
type directoryOracle struct {
	directory *akitacache.DirectoryImpl
	blockSize uint64
}

func newDirectoryOracle(numSets, ways int, blockSize uint64) *directoryOracle {
	return &directoryOracle{
		directory: akitacache.NewDirectory(
			numSets, ways, int(blockSize),
			akitacache.NewLRUVictimFinder(),
		),
		blockSize: blockSize,
	}
}

func (o *directoryOracle) access(addr uint64) (hit, evicted bool) {
	blockAddr := addr / o.blockSize * o.blockSize

	block := o.directory.Lookup(0, blockAddr)
	if block != nil && block.IsValid {
		o.directory.Visit(block)
		return true, false
	}

	victim := o.directory.FindVictim(blockAddr)
	evicted = victim.IsValid
	victim.Tag = blockAddr
	victim.IsValid = true
	o.directory.Visit(victim)

	return false, evicted
}

var _ = Describe("Directory cross-check", func() {
	replay := func(config cache.Config, addrs []uint64) {
		c, err := cache.New(config)
		Expect(err).NotTo(HaveOccurred())
		oracle := newDirectoryOracle(
			int(config.NumSets()), int(config.Associativity), config.BlockSize())

		for i, addr := range addrs {
			result := c.Access(cache.Load, addr, 1)
			hit, evicted := oracle.access(addr)
			Expect(result.Hit).To(Equal(hit),
				"access %d (addr %#x): hit/miss diverged", i, addr)
			Expect(result.Evicted).To(Equal(evicted),
				"access %d (addr %#x): eviction diverged", i, addr)
		}
	}

	It("should match the Akita LRU directory on a conflict-heavy trace", func() {
		rng := rand.New(rand.NewSource(1))
		addrs := make([]uint64, 5000)
		for i := range addrs {
			addrs[i] = uint64(rng.Intn(1 << 10))
		}
		replay(cache.Config{SetBits: 2, BlockBits: 4, Associativity: 4}, addrs)
	})

	It("should match on a direct-mapped geometry", func() {
		rng := rand.New(rand.NewSource(2))
		addrs := make([]uint64, 2000)
		for i := range addrs {
			addrs[i] = uint64(rng.Intn(1 << 8))
		}
		replay(cache.Config{SetBits: 3, BlockBits: 3, Associativity: 1}, addrs)
	})

	It("should match on a fully associative geometry", func() {
		rng := rand.New(rand.NewSource(3))
		addrs := make([]uint64, 2000)
		for i := range addrs {
			addrs[i] = uint64(rng.Intn(1 << 8))
		}
		replay(cache.Config{SetBits: 0, BlockBits: 4, Associativity: 8}, addrs)
	})
})
