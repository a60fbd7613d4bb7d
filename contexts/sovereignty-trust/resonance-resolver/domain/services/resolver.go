package services

import (
	"math/rand"
	"sort"
	"time"

	domainerrors "mostar/contexts/sovereignty-trust/resonance-resolver/domain/errors"
)

// Result is one resolution outcome. Elapsed is metadata only and never feeds
// back into the decision.
type Result struct {
	Pattern    int
	Confidence float64
	Posterior  []float64
	Alternates []int
	ElapsedMS  float64
}

// Resolver holds a fixed likelihood matrix and uniform default prior, both
// derived from the seed at construction time so identically configured
// instances resolve identically.
type Resolver struct {
	patterns   int
	contexts   int
	seed       int64
	likelihood [][]float64 // contexts x patterns, each column sums to 1
	prior      []float64
}

func NewResolver(patterns int, contexts int, seed int64) (*Resolver, error) {
	if patterns < 2 || contexts < 2 {
		return nil, domainerrors.ErrInvalidDimensions
	}

	rng := rand.New(rand.NewSource(seed))
	likelihood := make([][]float64, contexts)
	for j := range likelihood {
		likelihood[j] = make([]float64, patterns)
		for i := range likelihood[j] {
			likelihood[j][i] = rng.Float64() + 1e-6
		}
	}
	for i := 0; i < patterns; i++ {
		columnSum := 0.0
		for j := 0; j < contexts; j++ {
			columnSum += likelihood[j][i]
		}
		for j := 0; j < contexts; j++ {
			likelihood[j][i] /= columnSum
		}
	}

	prior := make([]float64, patterns)
	for i := range prior {
		prior[i] = 1.0 / float64(patterns)
	}

	return &Resolver{
		patterns:   patterns,
		contexts:   contexts,
		seed:       seed,
		likelihood: likelihood,
		prior:      prior,
	}, nil
}

func (r *Resolver) Patterns() int { return r.patterns }
func (r *Resolver) Contexts() int { return r.contexts }
func (r *Resolver) Seed() int64   { return r.seed }

// Resolve scores evidence against every pattern and returns the normalized
// posterior. A nil prior uses the stored uniform prior. topK bounds the
// alternate list; topK <= 0 yields no alternates.
func (r *Resolver) Resolve(evidence []float64, prior []float64, topK int) (Result, error) {
	if len(evidence) != r.contexts {
		return Result{}, domainerrors.ErrEvidenceDimension
	}
	if prior != nil && len(prior) != r.patterns {
		return Result{}, domainerrors.ErrPriorDimension
	}

	started := time.Now()

	ev := normalize(evidence)
	pr := r.prior
	if prior != nil {
		pr = normalize(prior)
	}

	score := make([]float64, r.patterns)
	for i := 0; i < r.patterns; i++ {
		sum := 0.0
		for j := 0; j < r.contexts; j++ {
			sum += r.likelihood[j][i] * ev[j]
		}
		score[i] = pr[i] * sum
	}

	total := 0.0
	for _, value := range score {
		total += value
	}
	if total == 0 {
		// Degenerate: all-zero scores normalize to an all-zero posterior.
		total = 1
	}
	posterior := make([]float64, r.patterns)
	for i, value := range score {
		posterior[i] = value / total
	}

	best := 0
	for i := 1; i < r.patterns; i++ {
		if posterior[i] > posterior[best] {
			best = i
		}
	}

	order := make([]int, r.patterns)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a int, b int) bool {
		if posterior[order[a]] != posterior[order[b]] {
			return posterior[order[a]] > posterior[order[b]]
		}
		return order[a] < order[b]
	})

	alternates := make([]int, 0, r.patterns-1)
	for _, index := range order {
		if index == best {
			continue
		}
		alternates = append(alternates, index)
	}
	if topK < 0 {
		topK = 0
	}
	if len(alternates) > topK {
		alternates = alternates[:topK]
	}

	return Result{
		Pattern:    best,
		Confidence: posterior[best],
		Posterior:  posterior,
		Alternates: alternates,
		ElapsedMS:  float64(time.Since(started).Microseconds()) / 1000.0,
	}, nil
}

// normalize clamps negative entries to zero and scales the positive mass to
// sum 1. A vector without positive mass becomes uniform.
func normalize(vector []float64) []float64 {
	sum := 0.0
	for _, value := range vector {
		if value > 0 {
			sum += value
		}
	}

	out := make([]float64, len(vector))
	if sum <= 0 {
		uniform := 1.0 / float64(len(vector))
		for i := range out {
			out[i] = uniform
		}
		return out
	}
	for i, value := range vector {
		if value > 0 {
			out[i] = value / sum
		}
	}
	return out
}
