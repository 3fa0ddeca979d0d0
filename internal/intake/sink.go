// Package intake receives already-parsed interaction and token metadata
// messages from external producers (WebSocket feeds, Kafka topics) and
// persists them for the scoring pipeline. It performs no chain access;
// producers are expected to have decoded raw transactions upstream.
package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
	"github.com/Harry-maxy/whale-radar-ai/internal/observability"
	"github.com/Harry-maxy/whale-radar-ai/internal/storage"
	"github.com/Harry-maxy/whale-radar-ai/internal/walletaddr"
)

// Source labels used in metrics.
const (
	SourceFeed  = "feed"
	SourceKafka = "kafka"
)

// Message envelope types.
const (
	TypeInteraction = "interaction"
	TypeTokenMeta   = "token_meta"
)

// Envelope wraps every intake message with a type discriminator.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Sink validates intake messages and persists them.
type Sink struct {
	interactions storage.InteractionStore
	tokens       storage.TokenMetaStore
	metrics      *observability.Metrics
	now          func() time.Time
}

// NewSink creates a Sink writing to the given stores. metrics may be nil.
func NewSink(interactions storage.InteractionStore, tokens storage.TokenMetaStore, metrics *observability.Metrics) *Sink {
	return &Sink{
		interactions: interactions,
		tokens:       tokens,
		metrics:      metrics,
		now:          time.Now,
	}
}

// Handle decodes one raw message and persists it. Malformed or invalid
// messages are rejected with an error; the caller decides whether to
// keep consuming.
func (s *Sink) Handle(ctx context.Context, source string, raw []byte) error {
	s.countReceived(source)

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		s.countRejected(source, "decode")
		return fmt.Errorf("decode envelope: %w", err)
	}

	switch env.Type {
	case TypeInteraction:
		return s.handleInteraction(ctx, source, env.Data)
	case TypeTokenMeta:
		return s.handleTokenMeta(ctx, source, env.Data)
	default:
		s.countRejected(source, "unknown_type")
		return fmt.Errorf("unknown message type %q", env.Type)
	}
}

func (s *Sink) handleInteraction(ctx context.Context, source string, data []byte) error {
	var it domain.TokenInteraction
	if err := json.Unmarshal(data, &it); err != nil {
		s.countRejected(source, "decode")
		return fmt.Errorf("decode interaction: %w", err)
	}

	if err := walletaddr.Validate(it.WalletAddress); err != nil {
		s.countRejected(source, "invalid_address")
		return fmt.Errorf("invalid wallet address: %w", err)
	}
	if err := walletaddr.Validate(it.TokenMint); err != nil {
		s.countRejected(source, "invalid_mint")
		return fmt.Errorf("invalid token mint: %w", err)
	}
	if it.SolAmount < 0 {
		s.countRejected(source, "negative_amount")
		return fmt.Errorf("negative sol amount %f", it.SolAmount)
	}
	if it.BlockTime == 0 {
		s.countRejected(source, "missing_block_time")
		return fmt.Errorf("missing block time")
	}

	if err := s.interactions.Insert(ctx, &it); err != nil {
		s.countRejected(source, "store")
		return fmt.Errorf("store interaction: %w", err)
	}

	if s.metrics != nil {
		s.metrics.InteractionsStored.WithLabelValues(source).Inc()
		s.metrics.LastSuccessfulIntake.Set(float64(s.now().Unix()))
	}
	return nil
}

func (s *Sink) handleTokenMeta(ctx context.Context, source string, data []byte) error {
	var meta domain.TokenMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		s.countRejected(source, "decode")
		return fmt.Errorf("decode token meta: %w", err)
	}

	if err := walletaddr.Validate(meta.Mint); err != nil {
		s.countRejected(source, "invalid_mint")
		return fmt.Errorf("invalid token mint: %w", err)
	}
	if meta.CreatedAt == 0 {
		s.countRejected(source, "missing_created_at")
		return fmt.Errorf("missing creation time")
	}

	err := s.tokens.Insert(ctx, &meta)
	if errors.Is(err, storage.ErrDuplicateKey) {
		// Metadata is immutable; re-delivery of a known mint is not an error.
		return nil
	}
	if err != nil {
		s.countRejected(source, "store")
		return fmt.Errorf("store token meta: %w", err)
	}

	if s.metrics != nil {
		s.metrics.TokenMetaStored.Inc()
	}
	return nil
}

func (s *Sink) countReceived(source string) {
	if s.metrics != nil {
		s.metrics.InteractionsReceived.WithLabelValues(source).Inc()
	}
}

func (s *Sink) countRejected(source, reason string) {
	if s.metrics != nil {
		s.metrics.InteractionsRejected.WithLabelValues(source, reason).Inc()
	}
}
