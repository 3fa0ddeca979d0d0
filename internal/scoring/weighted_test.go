package scoring

import (
	"testing"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
)

func TestScorer_DefaultWeightsMatchFixedFormula(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	stats := []domain.WalletStats{
		{},
		{InteractionCount: 1, TotalVolumeSOL: 5, AverageEntrySize: 5},
		{InteractionCount: 10, EarlyEntryCount: 5, TotalVolumeSOL: 100, AverageEntrySize: 10, WinrateProxy: 0.8},
		{InteractionCount: 5, EarlyEntryCount: 3, TotalVolumeSOL: 50, AverageEntrySize: 10, WinrateProxy: 0.7},
		{InteractionCount: 100, EarlyEntryCount: 30, TotalVolumeSOL: 1000, AverageEntrySize: 60, WinrateProxy: 1},
		{InteractionCount: 3, EarlyEntryCount: 3, TotalVolumeSOL: 0.3, AverageEntrySize: 0.1, WinrateProxy: 0.45},
		{InteractionCount: 7, EarlyEntryCount: 1, TotalVolumeSOL: 333.33, AverageEntrySize: 47.619, WinrateProxy: 0.214},
		{InteractionCount: 1 << 32, EarlyEntryCount: 1 << 31, TotalVolumeSOL: 1e9, AverageEntrySize: 1e6, WinrateProxy: 1},
	}

	for i, s := range stats {
		fixed := WhaleScore(s)
		weighted := scorer.Score(s)
		if fixed != weighted {
			t.Errorf("stats[%d]: default-weight score %d != fixed score %d", i, weighted, fixed)
		}
	}
}

func TestScorer_ZeroInteractions(t *testing.T) {
	scorer := NewScorer(Weights{EarlyEntry: 50, BuySize: 25, Repetition: 15, Profit: 10})
	if got := scorer.Score(domain.WalletStats{}); got != 0 {
		t.Errorf("expected 0 for zero interactions, got %d", got)
	}
}

func TestScorer_CustomWeightsBounded(t *testing.T) {
	scorer := NewScorer(Weights{EarlyEntry: 70, BuySize: 20, Repetition: 5, Profit: 5})

	stats := domain.WalletStats{
		InteractionCount: 200,
		EarlyEntryCount:  200,
		TotalVolumeSOL:   1e6,
		AverageEntrySize: 5000,
		WinrateProxy:     1,
	}
	got := scorer.Score(stats)
	if got < 0 || got > 100 {
		t.Errorf("score %d out of [0,100]", got)
	}
	// Weights sum to 100 and every component saturates.
	if got != 100 {
		t.Errorf("expected fully saturated score 100, got %d", got)
	}
}

func TestScorer_ProfitWeightOnly(t *testing.T) {
	// Isolating one component: profit weight 10, winrate 0.5 => 5.
	scorer := NewScorer(Weights{Profit: 10})
	stats := domain.WalletStats{InteractionCount: 1, WinrateProxy: 0.5}
	if got := scorer.Score(stats); got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
}
