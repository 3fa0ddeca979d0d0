package classify

import (
	"context"
	"strings"
	"testing"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
	"github.com/Harry-maxy/whale-radar-ai/internal/storage/memory"
)

func TestClassifier_FlagsEarlyEntries(t *testing.T) {
	ctx := context.Background()
	tokens := memory.NewTokenMetaStore()
	if err := tokens.Insert(ctx, &domain.TokenMeta{Mint: "m1", CreatedAt: 1000}); err != nil {
		t.Fatalf("seed token meta: %v", err)
	}

	c := NewClassifier(60, tokens)

	interactions := []domain.TokenInteraction{
		{WalletAddress: "w1", TokenMint: "m1", BlockTime: 1050, SolAmount: 10},
		{WalletAddress: "w1", TokenMint: "m1", BlockTime: 1100, SolAmount: 20},
		{WalletAddress: "w2", TokenMint: "m1", BlockTime: 900, SolAmount: 5},
	}

	classified, err := c.Classify(ctx, interactions)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if !classified[0].IsEarlyEntry {
		t.Error("expected interaction 50s after creation to be early")
	}
	if classified[1].IsEarlyEntry {
		t.Error("expected interaction 100s after creation to not be early")
	}
	if classified[2].IsEarlyEntry {
		t.Error("expected interaction before creation to not be early")
	}

	// Input slice must not be mutated
	for i, it := range interactions {
		if it.IsEarlyEntry {
			t.Errorf("input interaction %d was mutated", i)
		}
	}
}

func TestClassifier_MissingMintTracked(t *testing.T) {
	ctx := context.Background()
	c := NewClassifier(60, memory.NewTokenMetaStore())

	interactions := []domain.TokenInteraction{
		{WalletAddress: "w1", TokenMint: "unknown", BlockTime: 1050, SolAmount: 10},
		{WalletAddress: "w2", TokenMint: "unknown", BlockTime: 1060, SolAmount: 20},
	}

	classified, err := c.Classify(ctx, interactions)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	for i, it := range classified {
		if it.IsEarlyEntry {
			t.Errorf("interaction %d flagged early despite missing metadata", i)
		}
	}
	if c.MissingMints["unknown"] != 2 {
		t.Errorf("expected 2 missing-mint records, got %d", c.MissingMints["unknown"])
	}

	msgs := c.MissingMintErrors()
	if len(msgs) != 1 || !strings.Contains(msgs[0], "unknown") {
		t.Errorf("unexpected missing mint errors: %v", msgs)
	}
}

func TestClassifier_EmptyInput(t *testing.T) {
	c := NewClassifier(60, memory.NewTokenMetaStore())

	classified, err := c.Classify(context.Background(), nil)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if classified != nil {
		t.Errorf("expected nil result for empty input, got %v", classified)
	}
}
