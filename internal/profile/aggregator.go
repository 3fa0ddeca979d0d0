package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harry-maxy/whale-radar-ai/internal/classify"
	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
	"github.com/Harry-maxy/whale-radar-ai/internal/storage"
)

// ErrNoInteractions is returned when no interactions are available for
// aggregation in the requested time range.
var ErrNoInteractions = errors.New("no interactions available for aggregation")

// Aggregator builds wallet profiles from stored interaction records,
// running them through the entry classifier first.
type Aggregator struct {
	interactionStore storage.InteractionStore
	classifier       *classify.Classifier
}

// NewAggregator creates a store-backed aggregator.
func NewAggregator(interactionStore storage.InteractionStore, classifier *classify.Classifier) *Aggregator {
	return &Aggregator{
		interactionStore: interactionStore,
		classifier:       classifier,
	}
}

// Batch is the output of one aggregation run: the per-wallet stats plus the
// classified interactions each wallet contributed, which the pattern
// detector consumes downstream.
type Batch struct {
	Stats    map[string]domain.WalletStats
	ByWallet map[string][]domain.TokenInteraction
}

// ComputeBatch loads interactions within [start, end] (inclusive, seconds),
// classifies early entries, and aggregates per wallet. The mapping is
// rebuilt from scratch on every call; no incremental state is retained.
// Returns ErrNoInteractions when the range is empty.
func (a *Aggregator) ComputeBatch(ctx context.Context, start, end uint64) (*Batch, error) {
	records, err := a.interactionStore.GetByTimeRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoInteractions
	}

	classified, err := a.classifier.Classify(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("classify interactions: %w", err)
	}

	byWallet := GroupByWallet(classified)
	stats := make(map[string]domain.WalletStats, len(byWallet))
	for address, walletInteractions := range byWallet {
		stats[address] = Aggregate(walletInteractions)
	}

	return &Batch{Stats: stats, ByWallet: byWallet}, nil
}
