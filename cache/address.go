package cache

// DecodeAddress splits a 64-bit address into its tag and set index for the
// given geometry. With zero set bits every address maps to set 0 (a fully
// associative cache). The block offset is implied by blockBits and is not
// needed by the model.
func DecodeAddress(addr uint64, setBits, blockBits uint64) (tag, setIndex uint64) {
	tag = addr >> (blockBits + setBits)
	if setBits == 0 {
		return tag, 0
	}
	setIndex = (addr >> blockBits) & ((uint64(1) << setBits) - 1)
	return tag, setIndex
}
