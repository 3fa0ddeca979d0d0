package clickhouse

import (
	"context"
	"fmt"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
	"github.com/Harry-maxy/whale-radar-ai/internal/storage"
)

// SnapshotStore implements storage.SnapshotStore using ClickHouse.
// Snapshots are append-only; MergeTree keeps the full run history.
type SnapshotStore struct {
	conn *Conn
}

// NewSnapshotStore creates a new SnapshotStore.
func NewSnapshotStore(conn *Conn) *SnapshotStore {
	return &SnapshotStore{conn: conn}
}

// Compile-time interface check.
var _ storage.SnapshotStore = (*SnapshotStore)(nil)

const snapshotColumns = `
	address, total_volume_sol, interaction_count, average_entry_size,
	early_entry_count, winrate_proxy,
	whale_score, weighted_score, insider_confidence,
	pattern_detected, consistency_score, consistent,
	cluster_id, computed_at`

// InsertBulk stores the snapshots from one pipeline run.
func (s *SnapshotStore) InsertBulk(ctx context.Context, snapshots []*domain.WalletScoreSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	for _, snap := range snapshots {
		if snap.Address == "" {
			return fmt.Errorf("%w: empty address", storage.ErrInvalidInput)
		}
	}

	batch, err := s.conn.PrepareBatch(ctx, "INSERT INTO wallet_score_snapshots ("+snapshotColumns+")")
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, snap := range snapshots {
		err = batch.Append(
			snap.Address, snap.TotalVolumeSOL, snap.InteractionCount, snap.AverageEntrySize,
			snap.EarlyEntryCount, snap.WinrateProxy,
			int32(snap.WhaleScore), int32(snap.WeightedScore), int32(snap.InsiderConfidence),
			snap.PatternDetected, snap.ConsistencyScore, snap.Consistent,
			int32(snap.ClusterID), snap.ComputedAt,
		)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

// GetByAddress retrieves all snapshots for a wallet, ordered by computed_at ASC.
func (s *SnapshotStore) GetByAddress(ctx context.Context, address string) ([]domain.WalletScoreSnapshot, error) {
	query := `
		SELECT` + snapshotColumns + `
		FROM wallet_score_snapshots
		WHERE address = ?
		ORDER BY computed_at ASC
	`

	rows, err := s.conn.Query(ctx, query, address)
	if err != nil {
		return nil, fmt.Errorf("query by address: %w", err)
	}
	defer rows.Close()

	return scanSnapshots(rows)
}

// GetTopByWhaleScore retrieves the most recent snapshot per wallet,
// ordered by whale_score DESC with address as tiebreak.
func (s *SnapshotStore) GetTopByWhaleScore(ctx context.Context, limit int) ([]domain.WalletScoreSnapshot, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", storage.ErrInvalidInput)
	}

	// argMax collapses the history to the latest row per address.
	query := `
		SELECT
			address,
			argMax(total_volume_sol, computed_at),
			argMax(interaction_count, computed_at),
			argMax(average_entry_size, computed_at),
			argMax(early_entry_count, computed_at),
			argMax(winrate_proxy, computed_at),
			argMax(whale_score, computed_at) AS latest_whale_score,
			argMax(weighted_score, computed_at),
			argMax(insider_confidence, computed_at),
			argMax(pattern_detected, computed_at),
			argMax(consistency_score, computed_at),
			argMax(consistent, computed_at),
			argMax(cluster_id, computed_at),
			max(computed_at)
		FROM wallet_score_snapshots
		GROUP BY address
		ORDER BY latest_whale_score DESC, address ASC
		LIMIT ?
	`

	rows, err := s.conn.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query top by whale score: %w", err)
	}
	defer rows.Close()

	return scanSnapshots(rows)
}

type snapshotRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanSnapshots(rows snapshotRows) ([]domain.WalletScoreSnapshot, error) {
	var snapshots []domain.WalletScoreSnapshot
	for rows.Next() {
		var (
			snap                             domain.WalletScoreSnapshot
			whaleScore, weighted, confidence int32
			clusterID                        int32
		)
		err := rows.Scan(
			&snap.Address, &snap.TotalVolumeSOL, &snap.InteractionCount, &snap.AverageEntrySize,
			&snap.EarlyEntryCount, &snap.WinrateProxy,
			&whaleScore, &weighted, &confidence,
			&snap.PatternDetected, &snap.ConsistencyScore, &snap.Consistent,
			&clusterID, &snap.ComputedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snap.WhaleScore = int(whaleScore)
		snap.WeightedScore = int(weighted)
		snap.InsiderConfidence = int(confidence)
		snap.ClusterID = int(clusterID)
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}
	return snapshots, nil
}
