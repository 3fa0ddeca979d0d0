package scoring

import (
	"fmt"
	"math"
)

// InsiderConfidence computes a 0-100 confidence score that a wallet is
// trading on insider-grade information, from its early-entry frequency and
// buy-size behavior.
//
//   - early-entry repetition (cap 40): proportional to the early-entry
//     ratio, contributed only once earlyEntryCount reaches minRepetitions
//     (hard gate, no partial credit below the gate)
//   - buy-size threshold (cap 30): flat 30 at or above minThreshold,
//     linear fraction below it
//   - volume indicator (cap 20): flat 20 at or above twice minThreshold
//   - fixed +10 winrate placeholder, pending a real profit signal
//
// minThreshold must be positive; a non-positive threshold returns
// ErrInvalidInput. Zero totalInteractions scores 0.
func InsiderConfidence(earlyEntryCount, totalInteractions uint64, avgBuySize, minThreshold float64, minRepetitions uint64) (int, error) {
	if minThreshold <= 0 {
		return 0, fmt.Errorf("%w: min buy-size threshold must be positive, got %v", ErrInvalidInput, minThreshold)
	}

	if totalInteractions == 0 {
		return 0, nil
	}

	confidence := 0.0

	if earlyEntryCount >= minRepetitions {
		ratio := float64(earlyEntryCount) / float64(totalInteractions)
		confidence += ratio * 40.0
	}

	if avgBuySize >= minThreshold {
		confidence += 30.0
	} else {
		confidence += (avgBuySize / minThreshold) * 30.0
	}

	if avgBuySize >= minThreshold*2.0 {
		confidence += 20.0
	} else {
		confidence += math.Min((avgBuySize/(minThreshold*2.0))*20.0, 20.0)
	}

	confidence += 10.0

	return int(math.Min(confidence, 100.0)), nil
}
