// Package rng provides the splittable pseudo-random state consumed by
// the generator engine. A State is an immutable value: every draw
// returns the drawn value together with a successor state, and Split
// derives two independent child states from one parent. Because state
// is passed in and out explicitly, no two generation steps ever
// observe the same state.
package rng

import (
	"fmt"
	"math/big"
	"math/rand"
)

// State is an immutable pseudo-random state. All methods are pure
// functions of the receiver; reusing a state replays its draws.
type State interface {
	// Split derives two independent states. The first seeds a
	// substructure, the second continues the caller's own sequence.
	Split() (State, State)

	// Bool draws a uniformly random boolean.
	Bool() (bool, State)

	// IntRange draws a uniformly random integer in [lo, hi], both
	// bounds inclusive. Panics if lo > hi.
	IntRange(lo, hi *big.Int) (*big.Int, State)

	// Intn draws a uniformly random int in [lo, hi], both bounds
	// inclusive. Panics if lo > hi.
	Intn(lo, hi int) (int, State)
}

// New returns the default State seeded from seed. Two States built
// from the same seed produce identical draw sequences.
func New(seed int64) State {
	return mixState{s: mix64(uint64(seed))}
}

// Distinct stream constants keep the outputs drawn from a state
// decorrelated from the seeds of its successor and children.
const (
	boolStream  = 0x2545f4914f6cdd1d
	intStream   = 0x632be59bd9b4e019
	leftStream  = 0xd1342543de82ef95
	rightStream = 0xaf251af3b0f025b5
)

type mixState struct {
	s uint64
}

// mix64 is the splitmix64 finalizer. One application both decorrelates
// the output from the input and advances the stream.
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	z := x
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func (m mixState) next() mixState {
	return mixState{s: mix64(m.s)}
}

func (m mixState) Split() (State, State) {
	return mixState{s: mix64(m.s ^ leftStream)}, mixState{s: mix64(m.s ^ rightStream)}
}

func (m mixState) Bool() (bool, State) {
	return mix64(m.s^boolStream)&1 == 1, m.next()
}

func (m mixState) IntRange(lo, hi *big.Int) (*big.Int, State) {
	if lo.Cmp(hi) > 0 {
		panic(fmt.Sprintf("rng: empty range [%s, %s]", lo, hi))
	}
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, big.NewInt(1))
	// The rand.Rand instance is local to this draw; the successor
	// state is derived by mixing, never from rand internals.
	r := rand.New(rand.NewSource(int64(mix64(m.s ^ intStream))))
	v := new(big.Int).Rand(r, span)
	v.Add(v, lo)
	return v, m.next()
}

func (m mixState) Intn(lo, hi int) (int, State) {
	if lo > hi {
		panic(fmt.Sprintf("rng: empty range [%d, %d]", lo, hi))
	}
	r := rand.New(rand.NewSource(int64(mix64(m.s ^ intStream))))
	return lo + r.Intn(hi-lo+1), m.next()
}
