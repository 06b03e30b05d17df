// Package minhash implements a fixed-size minimum-hash sketch of a
// string set supporting approximate Jaccard similarity without
// retaining the set.
package minhash

import (
	"hash/fnv"
	"math"
	"strconv"
)

// DefaultSize is the number of independent hash slots. More slots give
// a tighter Jaccard estimate; the standard error is about 1/sqrt(size).
const DefaultSize = 512

// Signature is a min-hash sketch. The zero value is not usable; create
// one with New or the From helpers.
type Signature struct {
	mins []uint64
}

func New(size int) *Signature {
	if size <= 0 {
		size = DefaultSize
	}

	mins := make([]uint64, size)
	for i := range mins {
		mins[i] = math.MaxUint64
	}
	return &Signature{mins: mins}
}

// FromStrings sketches a string set.
func FromStrings(items []string, size int) *Signature {
	s := New(size)
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// FromInts sketches an integer identity set via its decimal strings.
func FromInts(ids []int, size int) *Signature {
	s := New(size)
	for _, id := range ids {
		s.Add(strconv.Itoa(id))
	}
	return s
}

// Add folds one element into the sketch.
func (s *Signature) Add(item string) {
	h := fnv.New64a()
	h.Write([]byte(item))
	base := h.Sum64()

	for i := range s.mins {
		// one independent hash per slot, derived from the slot index
		v := splitmix64(base ^ splitmix64(uint64(i)+1))
		if v < s.mins[i] {
			s.mins[i] = v
		}
	}
}

// Jaccard estimates the Jaccard similarity against another signature of
// the same size as the fraction of matching slots. Mismatched sizes
// estimate 0.
func (s *Signature) Jaccard(other *Signature) float64 {
	if other == nil || len(s.mins) != len(other.mins) || len(s.mins) == 0 {
		return 0
	}

	match := 0
	for i := range s.mins {
		if s.mins[i] == other.mins[i] {
			match++
		}
	}

	return float64(match) / float64(len(s.mins))
}

// splitmix64 is the finalizer of the SplitMix64 generator, used as a
// cheap independent mixing function per slot.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
