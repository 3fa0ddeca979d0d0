package cluster

import (
	"math"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
)

// Similarity computes the pairwise behavior similarity of two wallets as
// the mean of three per-dimension similarities, each in [0, 1]: total
// volume, average entry size, and winrate proxy. The +1 denominators keep
// the volume and size terms defined when both wallets are empty; two
// zero-activity wallets are maximally similar.
//
// The measure is symmetric but not a metric (no triangle inequality).
func Similarity(a, b domain.WalletStats) float64 {
	volumeSim := 1.0 - math.Abs(a.TotalVolumeSOL-b.TotalVolumeSOL)/(a.TotalVolumeSOL+b.TotalVolumeSOL+1.0)
	sizeSim := 1.0 - math.Abs(a.AverageEntrySize-b.AverageEntrySize)/(a.AverageEntrySize+b.AverageEntrySize+1.0)
	winrateSim := 1.0 - math.Abs(a.WinrateProxy-b.WinrateProxy)

	return (volumeSim + sizeSim + winrateSim) / 3.0
}
