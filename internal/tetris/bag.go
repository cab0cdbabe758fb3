package tetris

// RandSource yields uniformly distributed integers in [0, n).
// *math/rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// Bag is the 7-bag randomizer: every run of seven draws starting at a
// bag boundary is a permutation of all seven kinds.
type Bag struct {
	kinds [NumKinds]Kind
	next  int
	rnd   RandSource
}

// NewBag creates a bag drawing its shuffles from rnd.
// The first call to Next shuffles.
func NewBag(rnd RandSource) *Bag {
	b := &Bag{rnd: rnd}
	b.Reset()
	return b
}

// Reset restores the identity order and marks the bag exhausted.
func (b *Bag) Reset() {
	for i := range b.kinds {
		b.kinds[i] = Kind(i)
	}
	b.next = NumKinds
}

// Next returns the next kind, reshuffling when the bag is exhausted.
func (b *Bag) Next() Kind {
	if b.next >= NumKinds {
		b.shuffle()
		b.next = 0
	}
	k := b.kinds[b.next]
	b.next++
	return k
}

// shuffle is an in-place Fisher-Yates shuffle: element i is swapped with
// a uniformly chosen element in [i, NumKinds).
func (b *Bag) shuffle() {
	for i := 0; i < NumKinds; i++ {
		j := i + b.rnd.Intn(NumKinds-i)
		b.kinds[i], b.kinds[j] = b.kinds[j], b.kinds[i]
	}
}
