// Package pattern flags insider-like behavior in a wallet's raw purchase
// history and measures how consistent its position sizes are.
package pattern

import (
	"fmt"
	"math"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
	"github.com/Harry-maxy/whale-radar-ai/internal/scoring"
)

// minConsistencySample is the smallest interaction count for which a
// coefficient of variation is meaningful.
const minConsistencySample = 3

// Detector gates wallets on early-entry repetition and buy-size behavior.
type Detector struct {
	// MinEarlyEntries is the minimum number of early-flagged interactions
	// (and the minimum total interactions) required for a pattern match.
	MinEarlyEntries uint64

	// MinAvgBuySize is the minimum mean purchase size in SOL.
	MinAvgBuySize float64

	// ConsistencyThreshold is the fraction of the maximum consistency
	// score (in [0,1]) at which a wallet counts as consistent.
	ConsistencyThreshold float64
}

// Detect reports whether the interactions exhibit the insider pattern:
// enough early entries and a mean purchase size above the configured floor.
func (d Detector) Detect(interactions []domain.TokenInteraction) bool {
	if uint64(len(interactions)) < d.MinEarlyEntries {
		return false
	}

	var earlyCount uint64
	total := 0.0
	for _, it := range interactions {
		if it.IsEarlyEntry {
			earlyCount++
		}
		total += it.SolAmount
	}
	if earlyCount < d.MinEarlyEntries {
		return false
	}

	avgSize := total / float64(len(interactions))
	return avgSize >= d.MinAvgBuySize
}

// ConsistencyScore measures purchase-size consistency in [0, 100] via the
// population coefficient of variation: lower variance relative to the mean
// scores higher, and a CV of 1 or more floors the score at 0. Fewer than
// three interactions return 0 (insufficient sample). A zero mean purchase
// size is outside the formula's domain and returns an invalid-input error
// instead of a NaN.
func (d Detector) ConsistencyScore(interactions []domain.TokenInteraction) (float64, error) {
	if len(interactions) < minConsistencySample {
		return 0, nil
	}

	n := float64(len(interactions))
	sum := 0.0
	for _, it := range interactions {
		sum += it.SolAmount
	}
	mean := sum / n
	if mean <= 0 {
		return 0, fmt.Errorf("%w: mean purchase size must be positive, got %v", scoring.ErrInvalidInput, mean)
	}

	variance := 0.0
	for _, it := range interactions {
		diff := it.SolAmount - mean
		variance += diff * diff
	}
	variance /= n

	cv := math.Sqrt(variance) / mean
	return (1.0 - math.Min(cv, 1.0)) * 100.0, nil
}

// IsConsistent reports whether the wallet's consistency score reaches
// ConsistencyThreshold (expressed as a fraction of the 100-point scale).
func (d Detector) IsConsistent(interactions []domain.TokenInteraction) (bool, error) {
	score, err := d.ConsistencyScore(interactions)
	if err != nil {
		return false, err
	}
	return score >= d.ConsistencyThreshold*100.0, nil
}
