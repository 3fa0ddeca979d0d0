package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
	"github.com/Harry-maxy/whale-radar-ai/internal/storage"
)

func TestInteractionStore_InsertAndGetByWallet(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewInteractionStore(pool)

	it := &domain.TokenInteraction{
		WalletAddress: "WalletA",
		TokenMint:     "MintX",
		BlockTime:     1700000100,
		SolAmount:     12.5,
		IsEarlyEntry:  true,
	}

	err := store.Insert(ctx, it)
	require.NoError(t, err)

	got, err := store.GetByWallet(ctx, "WalletA")
	require.NoError(t, err)

	assert.Len(t, got, 1)
	assert.Equal(t, it.WalletAddress, got[0].WalletAddress)
	assert.Equal(t, it.TokenMint, got[0].TokenMint)
	assert.Equal(t, it.BlockTime, got[0].BlockTime)
	assert.InDelta(t, it.SolAmount, got[0].SolAmount, 0.0001)
	assert.True(t, got[0].IsEarlyEntry)
}

func TestInteractionStore_InsertInvalidInput(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewInteractionStore(pool)

	err := store.Insert(ctx, &domain.TokenInteraction{TokenMint: "MintX", BlockTime: 1})
	assert.ErrorIs(t, err, storage.ErrInvalidInput)

	err = store.Insert(ctx, &domain.TokenInteraction{WalletAddress: "WalletA", BlockTime: 1})
	assert.ErrorIs(t, err, storage.ErrInvalidInput)
}

func TestInteractionStore_GetByWalletOrdering(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewInteractionStore(pool)

	// Insert out of chronological order.
	its := []*domain.TokenInteraction{
		{WalletAddress: "WalletB", TokenMint: "Mint1", BlockTime: 1700000300, SolAmount: 3},
		{WalletAddress: "WalletB", TokenMint: "Mint2", BlockTime: 1700000100, SolAmount: 1},
		{WalletAddress: "WalletB", TokenMint: "Mint3", BlockTime: 1700000200, SolAmount: 2},
		{WalletAddress: "OtherWallet", TokenMint: "Mint4", BlockTime: 1700000150, SolAmount: 9},
	}
	err := store.InsertBulk(ctx, its)
	require.NoError(t, err)

	got, err := store.GetByWallet(ctx, "WalletB")
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, uint64(1700000100), got[0].BlockTime)
	assert.Equal(t, uint64(1700000200), got[1].BlockTime)
	assert.Equal(t, uint64(1700000300), got[2].BlockTime)
}

func TestInteractionStore_GetByTimeRangeInclusive(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewInteractionStore(pool)

	its := []*domain.TokenInteraction{
		{WalletAddress: "W1", TokenMint: "M", BlockTime: 1700000099, SolAmount: 1},
		{WalletAddress: "W2", TokenMint: "M", BlockTime: 1700000100, SolAmount: 1},
		{WalletAddress: "W3", TokenMint: "M", BlockTime: 1700000200, SolAmount: 1},
		{WalletAddress: "W4", TokenMint: "M", BlockTime: 1700000201, SolAmount: 1},
	}
	err := store.InsertBulk(ctx, its)
	require.NoError(t, err)

	got, err := store.GetByTimeRange(ctx, 1700000100, 1700000200)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "W2", got[0].WalletAddress)
	assert.Equal(t, "W3", got[1].WalletAddress)
}

func TestInteractionStore_InsertBulkInvalidInputNoPartialApply(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewInteractionStore(pool)

	its := []*domain.TokenInteraction{
		{WalletAddress: "WalletC", TokenMint: "Mint1", BlockTime: 1700000100, SolAmount: 1},
		{WalletAddress: "", TokenMint: "Mint2", BlockTime: 1700000200, SolAmount: 2},
	}
	err := store.InsertBulk(ctx, its)
	assert.ErrorIs(t, err, storage.ErrInvalidInput)

	got, err := store.GetByWallet(ctx, "WalletC")
	require.NoError(t, err)
	assert.Empty(t, got)
}
