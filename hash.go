package segview

// The view hash is a two-accumulator rolling hash over the logical character
// stream. Both accumulators seed at 5381; each 16-bit code unit is split into
// its low and high byte, the low bytes folding into the first accumulator and
// the high bytes into the second, via acc = ((acc << 5) + acc) ^ b. The final
// hash combines both accumulators. All arithmetic wraps modulo 2^32.
//
// Because the hash consumes only the logical character stream, it is
// identical for equal views regardless of how many segments back them; the
// case-insensitive variants feed ASCII-folded code units into the same
// machinery.

const (
	hashSeed uint32 = 5381
	hashMix  uint32 = 1566083941
)

type hasher struct {
	h1, h2 uint32
}

func (h *hasher) init() {
	h.h1 = hashSeed
	h.h2 = hashSeed
}

func (h *hasher) write(u uint16) {
	h.h1 = ((h.h1 << 5) + h.h1) ^ uint32(u&0xff)
	h.h2 = ((h.h2 << 5) + h.h2) ^ uint32(u>>8)
}

func (h *hasher) sum() uint32 {
	return h.h1 + h.h2*hashMix
}
