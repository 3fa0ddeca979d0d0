package postgres

import (
	"context"
	"fmt"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
	"github.com/Harry-maxy/whale-radar-ai/internal/storage"
)

// TokenMetaStore implements storage.TokenMetaStore using PostgreSQL.
type TokenMetaStore struct {
	pool *Pool
}

// NewTokenMetaStore creates a new TokenMetaStore.
func NewTokenMetaStore(pool *Pool) *TokenMetaStore {
	return &TokenMetaStore{pool: pool}
}

// Compile-time interface check.
var _ storage.TokenMetaStore = (*TokenMetaStore)(nil)

// Insert adds metadata for a mint. Returns ErrDuplicateKey if the mint exists.
func (s *TokenMetaStore) Insert(ctx context.Context, meta *domain.TokenMeta) error {
	if meta == nil || meta.Mint == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO token_metadata (mint, created_at) VALUES ($1, $2)
	`

	_, err := s.pool.Exec(ctx, query, meta.Mint, meta.CreatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert token metadata: %w", err)
	}
	return nil
}

// GetByMint retrieves metadata by mint address. Returns ErrNotFound if absent.
func (s *TokenMetaStore) GetByMint(ctx context.Context, mint string) (*domain.TokenMeta, error) {
	query := `
		SELECT mint, created_at FROM token_metadata WHERE mint = $1
	`

	var meta domain.TokenMeta
	err := s.pool.QueryRow(ctx, query, mint).Scan(&meta.Mint, &meta.CreatedAt)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get token metadata by mint: %w", err)
	}

	return &meta, nil
}
