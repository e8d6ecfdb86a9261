package engine

import "math/rand"

// Bag deals piece kinds using the 7-bag system: every kind appears exactly
// once per bag, bags are independent uniform permutations, and a kind may
// repeat across the seam between two bags. The RNG is injected so runs are
// reproducible from a seed.
type Bag struct {
	rng   *rand.Rand
	queue []Kind
}

// NewBag creates a bag randomizer drawing from the given source.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// Next draws the next piece kind, refilling with a fresh shuffled bag when
// the current one is exhausted.
func (b *Bag) Next() Kind {
	b.fill(1)
	kind := b.queue[0]
	b.queue = b.queue[1:]
	return kind
}

// Peek returns the next n kinds without consuming them, generating further
// bags as needed. Used for the next-queue preview.
func (b *Bag) Peek(n int) []Kind {
	b.fill(n)
	preview := make([]Kind, n)
	copy(preview, b.queue[:n])
	return preview
}

// fill tops the queue up to at least n pending kinds.
func (b *Bag) fill(n int) {
	for len(b.queue) < n {
		perm := b.rng.Perm(len(Kinds))
		for _, i := range perm {
			b.queue = append(b.queue, Kinds[i])
		}
	}
}
