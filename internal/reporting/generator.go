package reporting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Harry-maxy/whale-radar-ai/internal/storage"
)

// Generator produces reports from stored snapshots.
type Generator struct {
	snapshotStore storage.SnapshotStore
	now           func() time.Time // Injectable clock for deterministic output
}

// NewGenerator creates a new report generator.
func NewGenerator(snapshotStore storage.SnapshotStore) *Generator {
	return &Generator{
		snapshotStore: snapshotStore,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate produces a report over the latest snapshot of the top limit
// wallets by whale score. integrityErrors are data quality messages
// collected during the scoring run (e.g. missing token metadata).
func (g *Generator) Generate(ctx context.Context, limit int, integrityErrors []string) (*Report, error) {
	snapshots, err := g.snapshotStore.GetTopByWhaleScore(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load top snapshots: %w", err)
	}

	report := &Report{
		GeneratedAt: g.now(),
		DataQuality: DataQualitySection{
			IntegrityErrors: integrityErrors,
			AllChecksPassed: len(integrityErrors) == 0,
		},
	}

	members := make(map[int][]string)
	for _, snap := range snapshots {
		report.WalletScores = append(report.WalletScores, WalletScoreRow{
			Address:           snap.Address,
			TotalVolumeSOL:    snap.TotalVolumeSOL,
			InteractionCount:  snap.InteractionCount,
			AverageEntrySize:  snap.AverageEntrySize,
			EarlyEntryCount:   snap.EarlyEntryCount,
			WinrateProxy:      snap.WinrateProxy,
			WhaleScore:        snap.WhaleScore,
			WeightedScore:     snap.WeightedScore,
			InsiderConfidence: snap.InsiderConfidence,
			PatternDetected:   snap.PatternDetected,
			ConsistencyScore:  snap.ConsistencyScore,
			Consistent:        snap.Consistent,
			ClusterID:         snap.ClusterID,
		})

		members[snap.ClusterID] = append(members[snap.ClusterID], snap.Address)

		report.Summary.WalletsScored++
		if snap.PatternDetected {
			report.Summary.PatternsDetected++
		}
		if snap.Consistent {
			report.Summary.ConsistentWallets++
		}
	}

	if len(snapshots) > 0 {
		report.Summary.TopWallet = snapshots[0].Address
		report.Summary.TopWhaleScore = snapshots[0].WhaleScore
	}

	clusterIDs := make([]int, 0, len(members))
	for id := range members {
		clusterIDs = append(clusterIDs, id)
	}
	sort.Ints(clusterIDs)
	for _, id := range clusterIDs {
		sort.Strings(members[id])
		report.Clusters = append(report.Clusters, ClusterRow{
			ClusterID: id,
			Size:      len(members[id]),
			Members:   members[id],
		})
	}

	return report, nil
}
