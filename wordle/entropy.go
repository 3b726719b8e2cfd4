package wordle

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Entropy is the expected information in bits from guessing guess when the
// secret is equally likely to be any of the candidates.
func (d *Dictionary) Entropy(guess Word, candidates *WordList) float64 {
	return entropy(guess, d.Words(candidates))
}

// entropy of the partition of secrets by the pattern guess produces
func entropy(guess Word, secrets []Word) float64 {
	n := len(secrets)
	if n <= 1 {
		return 0
	}
	var counts [PatternCount]int
	for _, secret := range secrets {
		counts[Encode(guess, secret).Code()]++
	}
	total := float64(n)
	ret := 0.0
	for _, count := range counts {
		if count == 0 {
			continue
		}
		p := float64(count) / total
		ret -= p * math.Log2(p)
	}
	return ret
}

// Scored is a guess with its entropy.
type Scored struct {
	Word    Word
	Entropy float64
}

// BestGuess scans the whole vocabulary and returns the guess with the highest
// entropy over candidates, the earliest in vocabulary order on ties. The scan is
// split across workers goroutines when workers > 1, the result does not depend on it.
func (d *Dictionary) BestGuess(candidates *WordList, workers int) Scored {
	return d.bestGuess(d.Words(candidates), workers)
}

func (d *Dictionary) bestGuess(secrets []Word, workers int) Scored {
	chunks := chunkRanges(len(d.guesses), workers)
	results := make([]Scored, len(chunks))
	var g errgroup.Group
	for c, r := range chunks {
		g.Go(func() error {
			best := Scored{Entropy: -1}
			for _, guess := range d.guesses[r[0]:r[1]] {
				if e := entropy(guess, secrets); e > best.Entropy {
					best = Scored{Word: guess, Entropy: e}
				}
			}
			results[c] = best
			return nil
		})
	}
	_ = g.Wait()
	best := Scored{Entropy: -1}
	for _, r := range results {
		if r.Entropy > best.Entropy {
			best = r
		}
	}
	return best
}

// Rank scores every guess against candidates and returns the n best, highest
// entropy first and vocabulary order among equals. n <= 0 returns all of them.
func (d *Dictionary) Rank(candidates *WordList, n int, workers int) []Scored {
	secrets := d.Words(candidates)
	ret := make([]Scored, len(d.guesses))
	var g errgroup.Group
	for _, r := range chunkRanges(len(d.guesses), workers) {
		g.Go(func() error {
			for i := r[0]; i < r[1]; i++ {
				ret[i] = Scored{Word: d.guesses[i], Entropy: entropy(d.guesses[i], secrets)}
			}
			return nil
		})
	}
	_ = g.Wait()
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Entropy > ret[j].Entropy
	})
	if n > 0 && n < len(ret) {
		ret = ret[:n]
	}
	return ret
}

// chunkRanges splits [0,n) into at most workers contiguous non empty [start,end) ranges.
func chunkRanges(n, workers int) [][2]int {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	var ret [][2]int
	if n == 0 {
		return ret
	}
	size := (n + workers - 1) / workers
	for start := 0; start < n; start += size {
		ret = append(ret, [2]int{start, min(start+size, n)})
	}
	return ret
}
