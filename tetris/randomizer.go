package tetris

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Randomizer chooses the kind of the next piece.
type Randomizer interface {
	Next() Kind
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type uniform struct {
	rng *rand.Rand
}

// NewUniform returns a randomizer that picks every kind with equal
// probability on every draw.
func NewUniform(seed uint64) Randomizer {
	return &uniform{rng: newRand(seed)}
}

func (u *uniform) Next() Kind {
	return Kinds[u.rng.IntN(len(Kinds))]
}

type bag struct {
	rng     *rand.Rand
	pending []Kind
}

// NewBag returns a 7-bag randomizer: each run of seven draws contains every
// kind exactly once, in shuffled order.
func NewBag(seed uint64) Randomizer {
	return &bag{rng: newRand(seed)}
}

func (b *bag) Next() Kind {
	if len(b.pending) == 0 {
		b.pending = append(b.pending[:0], Kinds[:]...)
		b.rng.Shuffle(len(b.pending), func(i, j int) {
			b.pending[i], b.pending[j] = b.pending[j], b.pending[i]
		})
	}
	k := b.pending[0]
	b.pending = b.pending[1:]
	return k
}

type sequence struct {
	kinds []Kind
	pos   int
}

// NewSequence returns a randomizer that cycles through kinds in order.
// It panics if kinds is empty or holds an invalid kind.
func NewSequence(kinds ...Kind) Randomizer {
	if len(kinds) == 0 {
		panic("tetris: empty piece sequence")
	}
	for _, k := range kinds {
		if !k.Valid() {
			panic(fmt.Sprintf("tetris: invalid kind %d in piece sequence", k))
		}
	}
	return &sequence{kinds: append([]Kind(nil), kinds...)}
}

func (s *sequence) Next() Kind {
	k := s.kinds[s.pos]
	s.pos = (s.pos + 1) % len(s.kinds)
	return k
}
