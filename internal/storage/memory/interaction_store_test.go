package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
	"github.com/Harry-maxy/whale-radar-ai/internal/storage"
)

func TestInteractionStore_InsertAndGetByWallet(t *testing.T) {
	store := NewInteractionStore()
	ctx := context.Background()

	its := []*domain.TokenInteraction{
		{WalletAddress: "w1", TokenMint: "m1", BlockTime: 2000, SolAmount: 5},
		{WalletAddress: "w1", TokenMint: "m2", BlockTime: 1000, SolAmount: 10},
		{WalletAddress: "w2", TokenMint: "m1", BlockTime: 1500, SolAmount: 1},
	}
	for _, it := range its {
		if err := store.Insert(ctx, it); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	result, err := store.GetByWallet(ctx, "w1")
	if err != nil {
		t.Fatalf("GetByWallet failed: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Expected 2 interactions, got %d", len(result))
	}
	// Ordered by block_time ASC
	if result[0].BlockTime != 1000 || result[1].BlockTime != 2000 {
		t.Errorf("Interactions not ordered by block time: %+v", result)
	}
}

func TestInteractionStore_GetByTimeRange(t *testing.T) {
	store := NewInteractionStore()
	ctx := context.Background()

	err := store.InsertBulk(ctx, []*domain.TokenInteraction{
		{WalletAddress: "w1", TokenMint: "m1", BlockTime: 100},
		{WalletAddress: "w1", TokenMint: "m1", BlockTime: 200},
		{WalletAddress: "w1", TokenMint: "m1", BlockTime: 300},
	})
	if err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	// Inclusive bounds
	result, err := store.GetByTimeRange(ctx, 100, 200)
	if err != nil {
		t.Fatalf("GetByTimeRange failed: %v", err)
	}
	if len(result) != 2 {
		t.Errorf("Expected 2 interactions in [100,200], got %d", len(result))
	}
}

func TestInteractionStore_InvalidInput(t *testing.T) {
	store := NewInteractionStore()
	ctx := context.Background()

	err := store.Insert(ctx, &domain.TokenInteraction{TokenMint: "m1"})
	if !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for empty wallet, got %v", err)
	}

	err = store.InsertBulk(ctx, []*domain.TokenInteraction{
		{WalletAddress: "w1", TokenMint: "m1", BlockTime: 100},
		{WalletAddress: "w1", TokenMint: ""},
	})
	if !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for empty mint in bulk, got %v", err)
	}

	// Failed bulk insert must not partially apply
	result, err := store.GetByTimeRange(ctx, 0, 1<<62)
	if err != nil {
		t.Fatalf("GetByTimeRange failed: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("Expected no records after failed bulk insert, got %d", len(result))
	}
}

func TestInteractionStore_InsertDoesNotAlias(t *testing.T) {
	store := NewInteractionStore()
	ctx := context.Background()

	it := &domain.TokenInteraction{WalletAddress: "w1", TokenMint: "m1", BlockTime: 100, SolAmount: 5}
	if err := store.Insert(ctx, it); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	it.SolAmount = 999

	result, err := store.GetByWallet(ctx, "w1")
	if err != nil {
		t.Fatalf("GetByWallet failed: %v", err)
	}
	if result[0].SolAmount != 5 {
		t.Errorf("Stored record aliased caller memory: %v", result[0].SolAmount)
	}
}
