package storage

import (
	"context"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
)

// InteractionStore provides access to the append-only interaction log.
// Interaction records carry no natural unique key, so inserts never report
// duplicates; dedup is the ingestion collaborator's concern.
type InteractionStore interface {
	// Insert appends one interaction record.
	Insert(ctx context.Context, it *domain.TokenInteraction) error

	// InsertBulk appends multiple records atomically.
	InsertBulk(ctx context.Context, its []*domain.TokenInteraction) error

	// GetByWallet retrieves all interactions for a wallet, ordered by
	// block_time ASC.
	GetByWallet(ctx context.Context, walletAddress string) ([]domain.TokenInteraction, error)

	// GetByTimeRange retrieves interactions with block_time within
	// [start, end] (inclusive, seconds), ordered by block_time ASC.
	GetByTimeRange(ctx context.Context, start, end uint64) ([]domain.TokenInteraction, error)
}

// TokenMetaStore provides access to token creation-time metadata.
type TokenMetaStore interface {
	// Insert adds metadata for a mint. Returns ErrDuplicateKey if the
	// mint already has metadata.
	Insert(ctx context.Context, meta *domain.TokenMeta) error

	// GetByMint retrieves metadata by mint address. Returns ErrNotFound
	// if no metadata exists.
	GetByMint(ctx context.Context, mint string) (*domain.TokenMeta, error)
}

// SnapshotStore provides access to persisted wallet score snapshots.
type SnapshotStore interface {
	// InsertBulk stores the snapshots from one pipeline run.
	InsertBulk(ctx context.Context, snapshots []*domain.WalletScoreSnapshot) error

	// GetByAddress retrieves all snapshots for a wallet, ordered by
	// computed_at ASC.
	GetByAddress(ctx context.Context, address string) ([]domain.WalletScoreSnapshot, error)

	// GetTopByWhaleScore retrieves the most recent snapshot per wallet,
	// ordered by whale_score DESC, limited to limit rows.
	GetTopByWhaleScore(ctx context.Context, limit int) ([]domain.WalletScoreSnapshot, error)
}
