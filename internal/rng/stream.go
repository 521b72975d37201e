package rng

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Stream is the single random source consulted by one player's curation.
// Every choice is a full permutation so that taking a prefix of k is k draws
// without replacement.
type Stream struct {
	r     *rand.Rand
	draws int
}

func New(seed int64) *Stream {
	return &Stream{r: seededRNG(seed, "")}
}

// ForPlayer derives an independent stream for one slot of a multiworld seed.
func ForPlayer(seed int64, slot int) *Stream {
	return &Stream{r: seededRNG(seed, fmt.Sprintf("player-%d", slot))}
}

// Shuffle returns a permuted copy of names. The input is not modified.
func (s *Stream) Shuffle(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	s.r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	s.draws++
	return out
}

// Draws reports how many permutations have been taken from the stream.
func (s *Stream) Draws() int {
	return s.draws
}

func seededRNG(seed int64, scope string) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic generation.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, scope+"a"), seedWord(seed, scope+"b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
