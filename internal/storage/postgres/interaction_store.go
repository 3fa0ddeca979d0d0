package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
	"github.com/Harry-maxy/whale-radar-ai/internal/storage"
)

// InteractionStore implements storage.InteractionStore using PostgreSQL.
type InteractionStore struct {
	pool *Pool
}

// NewInteractionStore creates a new InteractionStore.
func NewInteractionStore(pool *Pool) *InteractionStore {
	return &InteractionStore{pool: pool}
}

// Compile-time interface check.
var _ storage.InteractionStore = (*InteractionStore)(nil)

// Insert appends one interaction record.
func (s *InteractionStore) Insert(ctx context.Context, it *domain.TokenInteraction) error {
	if it == nil || it.WalletAddress == "" || it.TokenMint == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO token_interactions (
			wallet_address, token_mint, block_time, sol_amount, is_early_entry
		) VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.pool.Exec(ctx, query,
		it.WalletAddress,
		it.TokenMint,
		it.BlockTime,
		it.SolAmount,
		it.IsEarlyEntry,
	)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}

// InsertBulk appends multiple records atomically.
func (s *InteractionStore) InsertBulk(ctx context.Context, its []*domain.TokenInteraction) error {
	if len(its) == 0 {
		return nil
	}
	for _, it := range its {
		if it == nil || it.WalletAddress == "" || it.TokenMint == "" {
			return storage.ErrInvalidInput
		}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO token_interactions (
			wallet_address, token_mint, block_time, sol_amount, is_early_entry
		) VALUES ($1, $2, $3, $4, $5)
	`

	for _, it := range its {
		_, err := tx.Exec(ctx, query,
			it.WalletAddress,
			it.TokenMint,
			it.BlockTime,
			it.SolAmount,
			it.IsEarlyEntry,
		)
		if err != nil {
			return fmt.Errorf("insert interaction in bulk: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// GetByWallet retrieves all interactions for a wallet, ordered by block_time ASC.
func (s *InteractionStore) GetByWallet(ctx context.Context, walletAddress string) ([]domain.TokenInteraction, error) {
	query := `
		SELECT wallet_address, token_mint, block_time, sol_amount, is_early_entry
		FROM token_interactions
		WHERE wallet_address = $1
		ORDER BY block_time ASC, id ASC
	`

	rows, err := s.pool.Query(ctx, query, walletAddress)
	if err != nil {
		return nil, fmt.Errorf("get interactions by wallet: %w", err)
	}
	defer rows.Close()

	return scanInteractions(rows)
}

// GetByTimeRange retrieves interactions with block_time within [start, end] (inclusive).
func (s *InteractionStore) GetByTimeRange(ctx context.Context, start, end uint64) ([]domain.TokenInteraction, error) {
	query := `
		SELECT wallet_address, token_mint, block_time, sol_amount, is_early_entry
		FROM token_interactions
		WHERE block_time >= $1 AND block_time <= $2
		ORDER BY block_time ASC, id ASC
	`

	rows, err := s.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("get interactions by time range: %w", err)
	}
	defer rows.Close()

	return scanInteractions(rows)
}

// scanInteractions scans multiple rows into a slice of TokenInteraction.
func scanInteractions(rows pgx.Rows) ([]domain.TokenInteraction, error) {
	var its []domain.TokenInteraction

	for rows.Next() {
		var it domain.TokenInteraction

		err := rows.Scan(
			&it.WalletAddress,
			&it.TokenMint,
			&it.BlockTime,
			&it.SolAmount,
			&it.IsEarlyEntry,
		)
		if err != nil {
			return nil, fmt.Errorf("scan interaction row: %w", err)
		}

		its = append(its, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interaction rows: %w", err)
	}

	return its, nil
}
