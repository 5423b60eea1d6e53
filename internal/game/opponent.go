package game

import (
	rand "math/rand/v2"
	"sync"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// Opponent chooses the computer's move.
type Opponent interface {
	NextMove() Move
}

// RandomOpponent draws uniformly from Moves.
type RandomOpponent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomOpponent returns an opponent seeded from seed. A zero seed is
// replaced by the current time, so only non-zero seeds are reproducible.
func NewRandomOpponent(seed int64) *RandomOpponent {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomOpponent{rng: newRand(seed)}
}

// NextMove returns a uniformly random move.
func (o *RandomOpponent) NextMove() Move {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Moves[o.rng.IntN(len(Moves))]
}

// newRand derives the two PCG seeds from a single int64 so every call site
// gets the same reproducible sequence for a given seed.
func newRand(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64)))
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// FixedOpponent plays a scripted sequence of moves, cycling when it runs out.
type FixedOpponent struct {
	mu    sync.Mutex
	moves []Move
	next  int
}

// NewFixedOpponent creates an opponent that plays moves in order. With no
// moves it always plays Rock.
func NewFixedOpponent(moves ...Move) *FixedOpponent {
	if len(moves) == 0 {
		moves = []Move{Rock}
	}
	return &FixedOpponent{moves: moves}
}

// NextMove returns the next scripted move.
func (o *FixedOpponent) NextMove() Move {
	o.mu.Lock()
	defer o.mu.Unlock()
	m := o.moves[o.next%len(o.moves)]
	o.next++
	return m
}
