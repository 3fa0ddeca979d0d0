// Package pipeline orchestrates one scoring run: aggregate wallet stats
// from stored interactions, score every wallet, cluster comparable
// profiles, and persist the resulting snapshots.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Harry-maxy/whale-radar-ai/internal/classify"
	"github.com/Harry-maxy/whale-radar-ai/internal/cluster"
	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
	"github.com/Harry-maxy/whale-radar-ai/internal/observability"
	"github.com/Harry-maxy/whale-radar-ai/internal/pattern"
	"github.com/Harry-maxy/whale-radar-ai/internal/profile"
	"github.com/Harry-maxy/whale-radar-ai/internal/scoring"
	"github.com/Harry-maxy/whale-radar-ai/internal/storage"
)

// Config carries the scoring parameters for a Runner.
type Config struct {
	// Weights configures the weighted scorer. Zero value means DefaultWeights.
	Weights scoring.Weights

	// InsiderMinBuySizeSOL is the average buy size threshold for insider
	// confidence. Must be positive.
	InsiderMinBuySizeSOL float64

	// InsiderMinRepetitions is the early-entry count a wallet must reach
	// before its early-entry ratio contributes to insider confidence.
	InsiderMinRepetitions uint64

	// Detector gates the behavioral pattern flag.
	Detector pattern.Detector

	// Clusterer groups wallets with comparable profiles.
	Clusterer cluster.Clusterer

	// Concurrency limits parallel wallet scoring. Zero means GOMAXPROCS.
	Concurrency int
}

// Runner executes scoring runs against the configured stores.
type Runner struct {
	aggregator *profile.Aggregator
	classifier *classify.Classifier
	snapshots  storage.SnapshotStore
	scorer     *scoring.Scorer
	cfg        Config
	metrics    *observability.Metrics
	clock      func() time.Time
}

// NewRunner creates a Runner. metrics may be nil.
func NewRunner(
	interactions storage.InteractionStore,
	classifier *classify.Classifier,
	snapshots storage.SnapshotStore,
	cfg Config,
	metrics *observability.Metrics,
) *Runner {
	if cfg.Weights == (scoring.Weights{}) {
		cfg.Weights = scoring.DefaultWeights()
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = runtime.GOMAXPROCS(0)
	}

	return &Runner{
		aggregator: profile.NewAggregator(interactions, classifier),
		classifier: classifier,
		snapshots:  snapshots,
		scorer:     scoring.NewScorer(cfg.Weights),
		cfg:        cfg,
		metrics:    metrics,
		clock:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (r *Runner) WithClock(clock func() time.Time) *Runner {
	r.clock = clock
	return r
}

// Result summarizes one scoring run.
type Result struct {
	WalletsScored int
	Snapshots     []*domain.WalletScoreSnapshot
	Clusters      [][]string
	MissingMints  []string
	Duration      time.Duration
}

// Run scores every wallet with interactions in [start, end] (inclusive,
// seconds) and persists one snapshot per wallet. Returns
// profile.ErrNoInteractions when the range is empty.
func (r *Runner) Run(ctx context.Context, start, end uint64) (*Result, error) {
	began := r.clock()

	result, err := r.run(ctx, start, end)

	if r.metrics != nil {
		status := "success"
		if err != nil {
			status = "error"
			if errors.Is(err, profile.ErrNoInteractions) {
				status = "empty"
			}
		}
		r.metrics.PipelineRunsTotal.WithLabelValues(status).Inc()
		r.metrics.PipelineDuration.Observe(r.clock().Sub(began).Seconds())
		if err == nil {
			r.metrics.LastSuccessfulPipeline.Set(float64(r.clock().Unix()))
		}
	}

	return result, err
}

func (r *Runner) run(ctx context.Context, start, end uint64) (*Result, error) {
	began := r.clock()

	batch, err := r.aggregator.ComputeBatch(ctx, start, end)
	if err != nil {
		return nil, err
	}

	addresses := make([]string, 0, len(batch.Stats))
	for address := range batch.Stats {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)

	computedAt := r.clock().Unix()
	snapshots := make([]*domain.WalletScoreSnapshot, len(addresses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)

	for i, address := range addresses {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			stats := batch.Stats[address]
			interactions := batch.ByWallet[address]

			confidence, err := scoring.InsiderConfidence(
				stats.EarlyEntryCount,
				stats.InteractionCount,
				stats.AverageEntrySize,
				r.cfg.InsiderMinBuySizeSOL,
				r.cfg.InsiderMinRepetitions,
			)
			if err != nil {
				return fmt.Errorf("insider confidence for %s: %w", address, err)
			}

			// A degenerate all-zero purchase history has no defined
			// consistency; score it 0 rather than failing the run.
			consistency, err := r.cfg.Detector.ConsistencyScore(interactions)
			if err != nil {
				consistency = 0
			}

			snapshots[i] = &domain.WalletScoreSnapshot{
				Address:          address,
				TotalVolumeSOL:   stats.TotalVolumeSOL,
				InteractionCount: stats.InteractionCount,
				AverageEntrySize: stats.AverageEntrySize,
				EarlyEntryCount:  stats.EarlyEntryCount,
				WinrateProxy:     stats.WinrateProxy,

				WhaleScore:        scoring.WhaleScore(stats),
				WeightedScore:     r.scorer.Score(stats),
				InsiderConfidence: confidence,
				PatternDetected:   r.cfg.Detector.Detect(interactions),
				ConsistencyScore:  consistency,
				Consistent:        consistency >= r.cfg.Detector.ConsistencyThreshold*100.0,

				ComputedAt: computedAt,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	clusters := r.cfg.Clusterer.Cluster(batch.Stats)
	clusterByAddress := make(map[string]int, len(addresses))
	for id, members := range clusters {
		for _, member := range members {
			clusterByAddress[member] = id
		}
	}
	for _, snap := range snapshots {
		snap.ClusterID = clusterByAddress[snap.Address]
	}

	if err := r.snapshots.InsertBulk(ctx, snapshots); err != nil {
		return nil, fmt.Errorf("store snapshots: %w", err)
	}

	missing := r.classifier.MissingMintErrors()

	if r.metrics != nil {
		r.metrics.WalletsScored.Add(float64(len(snapshots)))
		r.metrics.SnapshotsStored.Add(float64(len(snapshots)))
		r.metrics.ClustersFormed.Set(float64(len(clusters)))
		r.metrics.MissingTokenMints.Set(float64(len(missing)))
		for _, snap := range snapshots {
			if snap.PatternDetected {
				r.metrics.PatternsDetected.Inc()
			}
		}
	}

	return &Result{
		WalletsScored: len(snapshots),
		Snapshots:     snapshots,
		Clusters:      clusters,
		MissingMints:  missing,
		Duration:      r.clock().Sub(began),
	}, nil
}
