// Package statistics aggregates simulated round results.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// RoundResult is the outcome of one simulated round
type RoundResult struct {
	Seed     int64 // Deck seed, for replay
	Pairs    int
	Moves    int
	Misses   int // Reveals that did not match
	Complete bool
}

// Statistics tracks move counts across rounds
type Statistics struct {
	Rounds     int
	Incomplete int
	SumMoves   float64
	SumMoves2  float64   // Sum of squares for variance calculation
	Values     []float64 // Every move count, for median and percentiles
	MinMoves   int
	MaxMoves   int
	SumMisses  int
	Perfect    int // Rounds won with one move per pair
}

// Add incorporates a round. Incomplete rounds are counted but kept out of
// the move statistics.
func (s *Statistics) Add(r RoundResult) {
	if !r.Complete {
		s.Incomplete++
		return
	}

	moves := float64(r.Moves)
	s.Rounds++
	s.SumMoves += moves
	s.SumMoves2 += moves * moves
	s.Values = append(s.Values, moves)
	s.SumMisses += r.Misses

	if s.Rounds == 1 || r.Moves < s.MinMoves {
		s.MinMoves = r.Moves
	}
	if r.Moves > s.MaxMoves {
		s.MaxMoves = r.Moves
	}
	if r.Moves == r.Pairs {
		s.Perfect++
	}
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	if other.Rounds > 0 {
		if s.Rounds == 0 || other.MinMoves < s.MinMoves {
			s.MinMoves = other.MinMoves
		}
		if other.MaxMoves > s.MaxMoves {
			s.MaxMoves = other.MaxMoves
		}
	}
	s.Rounds += other.Rounds
	s.Incomplete += other.Incomplete
	s.SumMoves += other.SumMoves
	s.SumMoves2 += other.SumMoves2
	s.Values = append(s.Values, other.Values...)
	s.SumMisses += other.SumMisses
	s.Perfect += other.Perfect
}

// Mean returns the average number of moves per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumMoves / float64(s.Rounds)
}

// Variance returns the sample variance of the move counts
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumMoves2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median move count
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the move count at p (0.0 to 1.0), interpolating
// between neighbours.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// MissRate returns the share of reveals that were mismatches
func (s *Statistics) MissRate() float64 {
	if s.SumMoves == 0 {
		return 0
	}
	return float64(s.SumMisses) / s.SumMoves
}

// Validate checks the aggregates agree with each other
func (s *Statistics) Validate() error {
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values array length (%d) does not match round count (%d)", len(s.Values), s.Rounds)
	}
	if s.Perfect > s.Rounds {
		return fmt.Errorf("perfect rounds (%d) exceed total rounds (%d)", s.Perfect, s.Rounds)
	}
	if float64(s.SumMisses) > s.SumMoves {
		return fmt.Errorf("misses (%d) exceed moves (%.0f)", s.SumMisses, s.SumMoves)
	}
	if s.Rounds > 0 && s.MinMoves > s.MaxMoves {
		return fmt.Errorf("min moves (%d) above max moves (%d)", s.MinMoves, s.MaxMoves)
	}
	return nil
}
