package scoring

import (
	"math"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
)

// Weights are the component caps for the configurable-weight scorer.
// Each weight is the hard ceiling of its component; the component's
// internal structure (sub-caps and normalization ratios) scales with it.
type Weights struct {
	EarlyEntry float64
	BuySize    float64
	Repetition float64
	Profit     float64
}

// DefaultWeights returns the standard 40/30/20/10 split used by the fixed
// whale score. Callers tune sensitivity by constructing their own Weights;
// there is no process-wide default state.
func DefaultWeights() Weights {
	return Weights{
		EarlyEntry: 40.0,
		BuySize:    30.0,
		Repetition: 20.0,
		Profit:     10.0,
	}
}

// Scorer computes whale scores with caller-supplied component weights.
// With DefaultWeights it reproduces WhaleScore exactly, including integer
// truncation.
type Scorer struct {
	Weights Weights
}

// NewScorer creates a Scorer with the given weights.
func NewScorer(w Weights) *Scorer {
	return &Scorer{Weights: w}
}

// Score computes the weighted whale score for a wallet. The formula mirrors
// WhaleScore with every multiplier and cap derived from the weights: the
// early-entry weight splits evenly between its ratio and count terms, and
// the buy-size weight splits 2:1 between average entry size and total
// volume. A wallet with no interactions scores 0.
func (s *Scorer) Score(stats domain.WalletStats) int {
	if stats.InteractionCount == 0 {
		return 0
	}

	w := s.Weights

	ratioCap := w.EarlyEntry / 2.0
	countCap := w.EarlyEntry / 2.0
	// With the default weight of 40 these reduce to the fixed formula's
	// *20 and *2 multipliers.
	countMul := w.EarlyEntry / 20.0

	earlyRatio := float64(stats.EarlyEntryCount) / float64(stats.InteractionCount)
	earlyEntryScore := math.Min(earlyRatio*ratioCap, ratioCap) +
		math.Min(float64(stats.EarlyEntryCount)*countMul, countCap)

	avgSizeCap := w.BuySize * 2.0 / 3.0
	volumeCap := w.BuySize / 3.0
	buySizeScore := math.Min((stats.AverageEntrySize/maxAverageEntrySOL)*avgSizeCap, avgSizeCap) +
		math.Min((stats.TotalVolumeSOL/maxTotalVolumeSOL)*volumeCap, volumeCap)

	repetitionScore := math.Min((float64(stats.InteractionCount)/maxRepetitionCount)*w.Repetition, w.Repetition)

	profitScore := stats.WinrateProxy * w.Profit

	total := earlyEntryScore + buySizeScore + repetitionScore + profitScore
	return int(math.Min(total, 100.0))
}
