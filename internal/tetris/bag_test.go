package tetris

import (
	"math/rand"
	"testing"
)

func TestBagDealsPermutations(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		bag := NewBag(rand.New(rand.NewSource(seed)))
		for round := 0; round < 10; round++ {
			var seen [NumKinds]bool
			for i := 0; i < NumKinds; i++ {
				k := bag.Next()
				if seen[k] {
					t.Fatalf("seed %d round %d: %s dealt twice", seed, round, k)
				}
				seen[k] = true
			}
		}
	}
}

func TestBagResetReplays(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	bag := NewBag(rnd)
	first := make([]Kind, 14)
	for i := range first {
		first[i] = bag.Next()
	}

	rnd.Seed(7)
	bag.Reset()
	for i, want := range first {
		if got := bag.Next(); got != want {
			t.Fatalf("draw %d after reset = %s, want %s", i, got, want)
		}
	}
}
