package services

import (
	"math"
	"testing"

	domainerrors "mostar/contexts/sovereignty-trust/resonance-resolver/domain/errors"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	resolver, err := NewResolver(8, 8, 108)
	if err != nil {
		t.Fatalf("new resolver failed: %v", err)
	}
	return resolver
}

func TestNewResolverRejectsDegenerateDimensions(t *testing.T) {
	if _, err := NewResolver(1, 8, 108); err != domainerrors.ErrInvalidDimensions {
		t.Fatalf("expected invalid dimensions, got %v", err)
	}
	if _, err := NewResolver(8, 0, 108); err != domainerrors.ErrInvalidDimensions {
		t.Fatalf("expected invalid dimensions, got %v", err)
	}
}

func TestResolveRejectsEvidenceDimensionMismatch(t *testing.T) {
	resolver := newTestResolver(t)
	if _, err := resolver.Resolve([]float64{1, 0, 0}, nil, 5); err != domainerrors.ErrEvidenceDimension {
		t.Fatalf("expected evidence dimension error, got %v", err)
	}
}

func TestResolveRejectsPriorDimensionMismatch(t *testing.T) {
	resolver := newTestResolver(t)
	evidence := make([]float64, 8)
	evidence[0] = 1
	if _, err := resolver.Resolve(evidence, []float64{0.5, 0.5}, 5); err != domainerrors.ErrPriorDimension {
		t.Fatalf("expected prior dimension error, got %v", err)
	}
}

func TestResolveIsDeterministicAcrossInstances(t *testing.T) {
	first := newTestResolver(t)
	second := newTestResolver(t)

	evidence := []float64{0, 0, 0, 1, 0, 0, 0, 0}
	a, err := first.Resolve(evidence, nil, 5)
	if err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}
	b, err := second.Resolve(evidence, nil, 5)
	if err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}

	if a.Pattern != b.Pattern {
		t.Fatalf("pattern diverged: %d vs %d", a.Pattern, b.Pattern)
	}
	if a.Confidence != b.Confidence {
		t.Fatalf("confidence diverged: %v vs %v", a.Confidence, b.Confidence)
	}
	for i := range a.Posterior {
		if a.Posterior[i] != b.Posterior[i] {
			t.Fatalf("posterior[%d] diverged: %v vs %v", i, a.Posterior[i], b.Posterior[i])
		}
	}
	for i := range a.Alternates {
		if a.Alternates[i] != b.Alternates[i] {
			t.Fatalf("alternates[%d] diverged: %d vs %d", i, a.Alternates[i], b.Alternates[i])
		}
	}
}

func TestResolvePosteriorIsValidDistribution(t *testing.T) {
	resolver := newTestResolver(t)

	inputs := [][]float64{
		{0, 0, 0, 1, 0, 0, 0, 0},
		{0.2, 0.1, 0, 0, 0.5, 0, 0, 0.2},
		{-1, -2, 0, 0, 0, 0, 0, 0}, // no positive mass, normalized to uniform
		{5, 5, 5, 5, 5, 5, 5, 5},
	}
	for _, evidence := range inputs {
		result, err := resolver.Resolve(evidence, nil, 5)
		if err != nil {
			t.Fatalf("resolve failed for %v: %v", evidence, err)
		}
		sum := 0.0
		for i, p := range result.Posterior {
			if p < 0 {
				t.Fatalf("posterior[%d] negative: %v", i, p)
			}
			sum += p
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Fatalf("posterior sums to %v for evidence %v", sum, evidence)
		}
	}
}

func TestResolveAlternatesExcludeWinnerAndRespectTopK(t *testing.T) {
	resolver := newTestResolver(t)
	evidence := []float64{0, 1, 0, 0, 0, 0, 0, 0}

	result, err := resolver.Resolve(evidence, nil, 3)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if len(result.Alternates) != 3 {
		t.Fatalf("expected 3 alternates, got %d", len(result.Alternates))
	}
	previous := result.Confidence
	for _, index := range result.Alternates {
		if index == result.Pattern {
			t.Fatalf("alternates contain the winner %d", index)
		}
		if result.Posterior[index] > previous {
			t.Fatalf("alternates not sorted by descending posterior")
		}
		previous = result.Posterior[index]
	}

	none, err := resolver.Resolve(evidence, nil, 0)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if len(none.Alternates) != 0 {
		t.Fatalf("expected no alternates for top_k 0, got %d", len(none.Alternates))
	}
	negative, err := resolver.Resolve(evidence, nil, -2)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if len(negative.Alternates) != 0 {
		t.Fatalf("expected no alternates for negative top_k, got %d", len(negative.Alternates))
	}
}

func TestResolveExplicitPriorShiftsMass(t *testing.T) {
	resolver := newTestResolver(t)
	evidence := make([]float64, 8)
	for i := range evidence {
		evidence[i] = 1
	}

	prior := make([]float64, 8)
	prior[2] = 1
	result, err := resolver.Resolve(evidence, prior, 5)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if result.Pattern != 2 {
		t.Fatalf("expected point-mass prior to force pattern 2, got %d", result.Pattern)
	}
	if math.Abs(result.Confidence-1.0) > 1e-9 {
		t.Fatalf("expected confidence 1 under point-mass prior, got %v", result.Confidence)
	}
}

func TestResolveTimingDoesNotAffectDecision(t *testing.T) {
	resolver := newTestResolver(t)
	evidence := []float64{0, 0, 0, 1, 0, 0, 0, 0}

	first, err := resolver.Resolve(evidence, nil, 5)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	second, err := resolver.Resolve(evidence, nil, 5)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if first.Pattern != second.Pattern || first.Confidence != second.Confidence {
		t.Fatalf("repeat resolution diverged: %d/%v vs %d/%v",
			first.Pattern, first.Confidence, second.Pattern, second.Confidence)
	}
}
