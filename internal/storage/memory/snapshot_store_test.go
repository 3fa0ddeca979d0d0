package memory

import (
	"context"
	"testing"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
)

func TestSnapshotStore_InsertBulkAndGetByAddress(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()

	err := store.InsertBulk(ctx, []*domain.WalletScoreSnapshot{
		{Address: "w1", WhaleScore: 40, ComputedAt: 2000},
		{Address: "w1", WhaleScore: 35, ComputedAt: 1000},
		{Address: "w2", WhaleScore: 80, ComputedAt: 1500},
	})
	if err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	result, err := store.GetByAddress(ctx, "w1")
	if err != nil {
		t.Fatalf("GetByAddress failed: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Expected 2 snapshots, got %d", len(result))
	}
	if result[0].ComputedAt != 1000 || result[1].ComputedAt != 2000 {
		t.Errorf("Snapshots not ordered by computed_at: %+v", result)
	}
}

func TestSnapshotStore_GetTopByWhaleScore(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()

	err := store.InsertBulk(ctx, []*domain.WalletScoreSnapshot{
		// w1 has an older, higher score that must not win: only the most
		// recent snapshot per wallet ranks.
		{Address: "w1", WhaleScore: 90, ComputedAt: 1000},
		{Address: "w1", WhaleScore: 30, ComputedAt: 2000},
		{Address: "w2", WhaleScore: 70, ComputedAt: 2000},
		{Address: "w3", WhaleScore: 50, ComputedAt: 2000},
	})
	if err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	top, err := store.GetTopByWhaleScore(ctx, 2)
	if err != nil {
		t.Fatalf("GetTopByWhaleScore failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(top))
	}
	if top[0].Address != "w2" || top[1].Address != "w3" {
		t.Errorf("Unexpected ranking: %v, %v", top[0].Address, top[1].Address)
	}
}
