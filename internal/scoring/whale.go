// Package scoring converts aggregated wallet statistics into bounded
// whale/insider scores. All scores are integers in [0, 100]; fractional
// totals are truncated toward zero, not rounded.
package scoring

import (
	"errors"
	"math"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
)

// ErrInvalidInput is returned when a scoring parameter is outside the
// formula's documented domain (for example, a non-positive buy-size
// threshold that would divide by zero).
var ErrInvalidInput = errors.New("scoring: invalid input")

// Normalization constants for the buy-size and repetition components.
// Average entry sizes at or above 50 SOL, total volumes at or above 500 SOL,
// and 50+ interactions each saturate their component.
const (
	maxAverageEntrySOL = 50.0
	maxTotalVolumeSOL  = 500.0
	maxRepetitionCount = 50.0
)

// WhaleScore computes the fixed-weight whale score for a wallet.
//
// Components (each a hard ceiling, never redistributed):
//   - early entry (cap 40): ratio of early entries plus absolute early count
//   - buy size (cap 30): normalized average entry size plus total volume
//   - repetition (cap 20): linear in interaction count up to 50
//   - profit (cap 10): winrate proxy
//
// A wallet with no interactions scores 0.
func WhaleScore(stats domain.WalletStats) int {
	if stats.InteractionCount == 0 {
		return 0
	}

	earlyRatio := float64(stats.EarlyEntryCount) / float64(stats.InteractionCount)

	ratioScore := math.Min(earlyRatio*20.0, 20.0)
	countScore := math.Min(float64(stats.EarlyEntryCount)*2.0, 20.0)
	earlyEntryScore := ratioScore + countScore

	avgSizeScore := math.Min((stats.AverageEntrySize/maxAverageEntrySOL)*20.0, 20.0)
	volumeScore := math.Min((stats.TotalVolumeSOL/maxTotalVolumeSOL)*10.0, 10.0)
	buySizeScore := avgSizeScore + volumeScore

	repetitionScore := math.Min((float64(stats.InteractionCount)/maxRepetitionCount)*20.0, 20.0)

	profitScore := stats.WinrateProxy * 10.0

	total := earlyEntryScore + buySizeScore + repetitionScore + profitScore
	return int(math.Min(total, 100.0))
}
