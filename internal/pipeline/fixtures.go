package pipeline

import (
	"context"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
	"github.com/Harry-maxy/whale-radar-ai/internal/storage"
)

// Fixture mints. metaqbx... deliberately has no metadata so runs against
// fixtures exercise the missing-mint path.
const (
	FixtureMintAlpha     = "So11111111111111111111111111111111111111112"
	FixtureMintBeta      = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	FixtureMintGamma     = "JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4"
	FixtureMintOrphan    = "metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s"
	FixtureWalletWhale   = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
	FixtureWalletInsider = "7TTGKXuhDL4XHeo2J2ZfKijhY4J8wYhPMHagzdUh6ZSQ"
	FixtureWalletSmallA  = "ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL"
	FixtureWalletSmallB  = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
)

// Fixture time range, passed to Runner.Run when demonstrating the pipeline.
const (
	FixtureRangeStart uint64 = 1704067200 // 2024-01-01 00:00:00 UTC
	FixtureRangeEnd   uint64 = 1704326400 // 2024-01-04 00:00:00 UTC
)

// LoadFixtures populates stores with demonstration data: one heavy early
// buyer, one small consistent early buyer, and two late retail wallets.
func LoadFixtures(ctx context.Context, interactions storage.InteractionStore, tokens storage.TokenMetaStore) error {
	metas := []*domain.TokenMeta{
		{Mint: FixtureMintAlpha, CreatedAt: 1704067200}, // 2024-01-01 00:00:00 UTC
		{Mint: FixtureMintBeta, CreatedAt: 1704153600},  // 2024-01-02 00:00:00 UTC
		{Mint: FixtureMintGamma, CreatedAt: 1704240000}, // 2024-01-03 00:00:00 UTC
	}
	for _, meta := range metas {
		if err := tokens.Insert(ctx, meta); err != nil {
			return err
		}
	}

	records := []*domain.TokenInteraction{
		// Whale: large buys minutes after each launch, plus later re-buys.
		{WalletAddress: FixtureWalletWhale, TokenMint: FixtureMintAlpha, BlockTime: 1704067500, SolAmount: 62},
		{WalletAddress: FixtureWalletWhale, TokenMint: FixtureMintAlpha, BlockTime: 1704078000, SolAmount: 58},
		{WalletAddress: FixtureWalletWhale, TokenMint: FixtureMintBeta, BlockTime: 1704153900, SolAmount: 61},
		{WalletAddress: FixtureWalletWhale, TokenMint: FixtureMintBeta, BlockTime: 1704160000, SolAmount: 59},
		{WalletAddress: FixtureWalletWhale, TokenMint: FixtureMintGamma, BlockTime: 1704240300, SolAmount: 60},
		{WalletAddress: FixtureWalletWhale, TokenMint: FixtureMintGamma, BlockTime: 1704250000, SolAmount: 60},

		// Insider-like wallet: smaller but always inside the launch window.
		{WalletAddress: FixtureWalletInsider, TokenMint: FixtureMintAlpha, BlockTime: 1704067260, SolAmount: 12},
		{WalletAddress: FixtureWalletInsider, TokenMint: FixtureMintAlpha, BlockTime: 1704068000, SolAmount: 12.5},
		{WalletAddress: FixtureWalletInsider, TokenMint: FixtureMintBeta, BlockTime: 1704153700, SolAmount: 11.5},
		{WalletAddress: FixtureWalletInsider, TokenMint: FixtureMintGamma, BlockTime: 1704240120, SolAmount: 12},
		{WalletAddress: FixtureWalletInsider, TokenMint: FixtureMintGamma, BlockTime: 1704241000, SolAmount: 12.2},

		// Retail wallets: late, small, uneven.
		{WalletAddress: FixtureWalletSmallA, TokenMint: FixtureMintAlpha, BlockTime: 1704100000, SolAmount: 0.4},
		{WalletAddress: FixtureWalletSmallA, TokenMint: FixtureMintBeta, BlockTime: 1704200000, SolAmount: 2.1},
		{WalletAddress: FixtureWalletSmallB, TokenMint: FixtureMintBeta, BlockTime: 1704190000, SolAmount: 1.0},
		{WalletAddress: FixtureWalletSmallB, TokenMint: FixtureMintGamma, BlockTime: 1704300000, SolAmount: 0.2},
		{WalletAddress: FixtureWalletSmallB, TokenMint: FixtureMintOrphan, BlockTime: 1704310000, SolAmount: 5.0},
	}

	return interactions.InsertBulk(ctx, records)
}
