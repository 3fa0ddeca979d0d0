package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
	"github.com/Harry-maxy/whale-radar-ai/internal/storage"
)

// SnapshotStore is an in-memory implementation of storage.SnapshotStore.
type SnapshotStore struct {
	mu   sync.RWMutex
	data []domain.WalletScoreSnapshot
}

// NewSnapshotStore creates a new in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// InsertBulk stores the snapshots from one pipeline run.
func (s *SnapshotStore) InsertBulk(_ context.Context, snapshots []*domain.WalletScoreSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	for _, snap := range snapshots {
		if snap == nil || snap.Address == "" {
			return storage.ErrInvalidInput
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, snap := range snapshots {
		s.data = append(s.data, *snap)
	}
	return nil
}

// GetByAddress retrieves all snapshots for a wallet, ordered by computed_at ASC.
func (s *SnapshotStore) GetByAddress(_ context.Context, address string) ([]domain.WalletScoreSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.WalletScoreSnapshot
	for _, snap := range s.data {
		if snap.Address == address {
			result = append(result, snap)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ComputedAt < result[j].ComputedAt
	})

	return result, nil
}

// GetTopByWhaleScore retrieves the most recent snapshot per wallet, ordered
// by whale_score DESC (addresses breaking ties), limited to limit rows.
func (s *SnapshotStore) GetTopByWhaleScore(_ context.Context, limit int) ([]domain.WalletScoreSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	latest := make(map[string]domain.WalletScoreSnapshot)
	for _, snap := range s.data {
		prev, seen := latest[snap.Address]
		if !seen || snap.ComputedAt > prev.ComputedAt {
			latest[snap.Address] = snap
		}
	}

	result := make([]domain.WalletScoreSnapshot, 0, len(latest))
	for _, snap := range latest {
		result = append(result, snap)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].WhaleScore != result[j].WhaleScore {
			return result[i].WhaleScore > result[j].WhaleScore
		}
		return result[i].Address < result[j].Address
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

var _ storage.SnapshotStore = (*SnapshotStore)(nil)
