package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/Harry-maxy/whale-radar-ai/internal/classify"
	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
	"github.com/Harry-maxy/whale-radar-ai/internal/storage/memory"
)

func TestAggregator_ComputeBatch(t *testing.T) {
	ctx := context.Background()

	tokens := memory.NewTokenMetaStore()
	if err := tokens.Insert(ctx, &domain.TokenMeta{Mint: "m1", CreatedAt: 1000}); err != nil {
		t.Fatalf("seed token meta: %v", err)
	}

	interactions := memory.NewInteractionStore()
	err := interactions.InsertBulk(ctx, []*domain.TokenInteraction{
		{WalletAddress: "addr1", TokenMint: "m1", BlockTime: 1010, SolAmount: 10}, // early
		{WalletAddress: "addr1", TokenMint: "m1", BlockTime: 2000, SolAmount: 20},
		{WalletAddress: "addr2", TokenMint: "m1", BlockTime: 1020, SolAmount: 5}, // early
	})
	if err != nil {
		t.Fatalf("seed interactions: %v", err)
	}

	agg := NewAggregator(interactions, classify.NewClassifier(60, tokens))

	batch, err := agg.ComputeBatch(ctx, 0, 1<<62)
	if err != nil {
		t.Fatalf("ComputeBatch failed: %v", err)
	}

	if len(batch.Stats) != 2 {
		t.Fatalf("expected stats for 2 wallets, got %d", len(batch.Stats))
	}

	addr1 := batch.Stats["addr1"]
	if addr1.InteractionCount != 2 || addr1.TotalVolumeSOL != 30 || addr1.AverageEntrySize != 15 {
		t.Errorf("unexpected addr1 stats: %+v", addr1)
	}
	if addr1.EarlyEntryCount != 1 {
		t.Errorf("expected 1 early entry for addr1, got %d", addr1.EarlyEntryCount)
	}

	addr2 := batch.Stats["addr2"]
	if addr2.EarlyEntryCount != 1 || addr2.WinrateProxy != 1.0 {
		t.Errorf("unexpected addr2 stats: %+v", addr2)
	}

	if len(batch.ByWallet["addr1"]) != 2 || len(batch.ByWallet["addr2"]) != 1 {
		t.Errorf("unexpected wallet partitions: %d/%d",
			len(batch.ByWallet["addr1"]), len(batch.ByWallet["addr2"]))
	}
}

func TestAggregator_EmptyRange(t *testing.T) {
	agg := NewAggregator(memory.NewInteractionStore(), classify.NewClassifier(60, memory.NewTokenMetaStore()))

	_, err := agg.ComputeBatch(context.Background(), 0, 1<<62)
	if !errors.Is(err, ErrNoInteractions) {
		t.Errorf("expected ErrNoInteractions, got %v", err)
	}
}

func TestAggregator_Rebuilds(t *testing.T) {
	ctx := context.Background()
	tokens := memory.NewTokenMetaStore()
	interactions := memory.NewInteractionStore()
	if err := interactions.Insert(ctx, &domain.TokenInteraction{WalletAddress: "a", TokenMint: "m1", BlockTime: 10, SolAmount: 1}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	agg := NewAggregator(interactions, classify.NewClassifier(60, tokens))

	first, err := agg.ComputeBatch(ctx, 0, 100)
	if err != nil {
		t.Fatalf("first batch: %v", err)
	}

	// New data visible on the next call: no incremental state retained.
	if err := interactions.Insert(ctx, &domain.TokenInteraction{WalletAddress: "a", TokenMint: "m1", BlockTime: 20, SolAmount: 2}); err != nil {
		t.Fatalf("seed second: %v", err)
	}
	second, err := agg.ComputeBatch(ctx, 0, 100)
	if err != nil {
		t.Fatalf("second batch: %v", err)
	}

	if first.Stats["a"].InteractionCount != 1 || second.Stats["a"].InteractionCount != 2 {
		t.Errorf("expected counts 1 then 2, got %d then %d",
			first.Stats["a"].InteractionCount, second.Stats["a"].InteractionCount)
	}
}
