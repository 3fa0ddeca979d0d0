// Package profile reduces raw interaction logs into per-wallet statistics.
package profile

import (
	"math"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
)

// winrateEarlyFactor scales the early-entry ratio into the winrate proxy.
// A wallet early on two thirds of its entries already proxies a perfect
// winrate.
const winrateEarlyFactor = 1.5

// Aggregate reduces one wallet's interactions into WalletStats. All records
// are assumed (not verified) to share a wallet address; the first record's
// address labels the result. Empty input returns zero-valued stats with the
// empty-address sentinel.
//
// Sums and counts are commutative, so the result is independent of element
// order up to floating-point summation rounding.
func Aggregate(interactions []domain.TokenInteraction) domain.WalletStats {
	if len(interactions) == 0 {
		return domain.WalletStats{}
	}

	totalVolume := 0.0
	var earlyCount uint64
	for _, it := range interactions {
		totalVolume += it.SolAmount
		if it.IsEarlyEntry {
			earlyCount++
		}
	}

	count := uint64(len(interactions))

	// The winrate proxy stands in for realized profitability; no profit
	// data is consulted. count is always positive on this path, so the
	// empty-input zero value above is the single no-data fallback.
	winrate := math.Min(float64(earlyCount)/float64(count)*winrateEarlyFactor, 1.0)

	return domain.WalletStats{
		Address:          interactions[0].WalletAddress,
		TotalVolumeSOL:   totalVolume,
		InteractionCount: count,
		AverageEntrySize: totalVolume / float64(count),
		EarlyEntryCount:  earlyCount,
		WinrateProxy:     winrate,
	}
}

// GroupByWallet partitions interactions by wallet address. The partition is
// a pure set operation; visitation order does not matter and the output map
// carries no key ordering.
func GroupByWallet(interactions []domain.TokenInteraction) map[string][]domain.TokenInteraction {
	grouped := make(map[string][]domain.TokenInteraction)
	for _, it := range interactions {
		grouped[it.WalletAddress] = append(grouped[it.WalletAddress], it)
	}
	return grouped
}

// AggregateByWallet partitions interactions by wallet address and aggregates
// each partition.
func AggregateByWallet(interactions []domain.TokenInteraction) map[string]domain.WalletStats {
	grouped := GroupByWallet(interactions)

	stats := make(map[string]domain.WalletStats, len(grouped))
	for address, walletInteractions := range grouped {
		stats[address] = Aggregate(walletInteractions)
	}
	return stats
}
