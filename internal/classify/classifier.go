package classify

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
	"github.com/Harry-maxy/whale-radar-ai/internal/storage"
)

// Classifier enriches interaction records with the early-entry flag using
// token creation times from a TokenMetaStore.
type Classifier struct {
	windowSeconds uint64
	tokenStore    storage.TokenMetaStore

	// MissingMints tracks mints with no creation-time metadata (for data
	// quality reporting). Key: mint, value: count of interactions seen.
	MissingMints map[string]int
}

// NewClassifier creates an entry classifier with the given window length.
func NewClassifier(windowSeconds uint64, tokenStore storage.TokenMetaStore) *Classifier {
	return &Classifier{
		windowSeconds: windowSeconds,
		tokenStore:    tokenStore,
		MissingMints:  make(map[string]int),
	}
}

// Classify returns a copy of interactions with IsEarlyEntry set from each
// token's creation time. The input slice is never mutated. Interactions on
// mints without metadata keep IsEarlyEntry false and are recorded in
// MissingMints instead of being silently dropped.
func (c *Classifier) Classify(ctx context.Context, interactions []domain.TokenInteraction) ([]domain.TokenInteraction, error) {
	if len(interactions) == 0 {
		return nil, nil
	}

	// Creation times are looked up once per mint, not once per record.
	creationTimes := make(map[string]uint64)
	missing := make(map[string]bool)

	classified := make([]domain.TokenInteraction, len(interactions))
	for i, it := range interactions {
		classified[i] = it

		if missing[it.TokenMint] {
			c.MissingMints[it.TokenMint]++
			continue
		}

		createdAt, ok := creationTimes[it.TokenMint]
		if !ok {
			meta, err := c.tokenStore.GetByMint(ctx, it.TokenMint)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					missing[it.TokenMint] = true
					c.MissingMints[it.TokenMint]++
					continue
				}
				return nil, fmt.Errorf("lookup token meta for %s: %w", it.TokenMint, err)
			}
			createdAt = meta.CreatedAt
			creationTimes[it.TokenMint] = createdAt
		}

		classified[i].IsEarlyEntry = IsEarlyEntry(it.BlockTime, createdAt, c.windowSeconds)
	}

	return classified, nil
}

// MissingMintErrors returns data quality messages for mints without
// metadata, sorted by mint for deterministic output.
func (c *Classifier) MissingMintErrors() []string {
	if len(c.MissingMints) == 0 {
		return nil
	}

	mints := make([]string, 0, len(c.MissingMints))
	for m := range c.MissingMints {
		mints = append(mints, m)
	}
	sort.Strings(mints)

	msgs := make([]string, len(mints))
	for i, m := range mints {
		msgs[i] = fmt.Sprintf("missing creation time for mint %s referenced by %d interaction(s)", m, c.MissingMints[m])
	}
	return msgs
}
