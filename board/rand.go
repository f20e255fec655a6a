package board

// PseudoRand is a xorshift64* generator, deterministic for a given seed.
type PseudoRand struct {
	s uint64
}

func NewPseudoRand(seed uint64) *PseudoRand {
	r := &PseudoRand{}
	r.Seed(seed)
	return r
}

func (r *PseudoRand) Seed(seed uint64) {
	if seed == 0 {
		seed = 1 // xorshift is stuck at zero
	}
	r.s = seed
}

func (r *PseudoRand) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

func (r *PseudoRand) Intn(n int) int {
	return int(r.Uint64() % uint64(n))
}

// RandomMove picks a legal move uniformly, false when there is none.
func (b *Board) RandomMove(r *PseudoRand) (Move, bool) {
	mvs := b.GenerateMoves()
	if len(mvs) == 0 {
		return Move{}, false
	}
	return mvs[r.Intn(len(mvs))], true
}
