package intake

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/IBM/sarama"
)

// KafkaConsumer consumes intake messages from a Kafka topic and hands each
// one to a Sink. Offsets are committed per message; rejected messages are
// committed too, since redelivery cannot make them valid.
type KafkaConsumer struct {
	group sarama.ConsumerGroup
	topic string
	sink  *Sink
}

// NewKafkaConsumer creates a consumer group member for the given topic.
// brokersCSV is a comma-separated broker list.
func NewKafkaConsumer(brokersCSV, groupID, topic string, sink *Sink) (*KafkaConsumer, error) {
	brokers := splitCSV(brokersCSV)
	if len(brokers) == 0 {
		return nil, errors.New("no kafka brokers configured")
	}

	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_1_0_0
	cfg.Consumer.Group.Rebalance.Strategy = sarama.BalanceStrategyRange
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}

	return &KafkaConsumer{group: group, topic: topic, sink: sink}, nil
}

// Run consumes until ctx is cancelled. Sarama requires re-entering Consume
// after each rebalance.
func (c *KafkaConsumer) Run(ctx context.Context) error {
	h := &sinkHandler{sink: c.sink}

	for {
		if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
			fmt.Fprintf(os.Stderr, "[kafka] consume error: %v\n", err)
			time.Sleep(300 * time.Millisecond)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close closes the consumer group.
func (c *KafkaConsumer) Close() error { return c.group.Close() }

// sinkHandler adapts a Sink to sarama's ConsumerGroupHandler.
type sinkHandler struct {
	sink *Sink
}

var _ sarama.ConsumerGroupHandler = (*sinkHandler)(nil)

func (h *sinkHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *sinkHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *sinkHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.sink.Handle(sess.Context(), SourceKafka, msg.Value); err != nil {
			fmt.Fprintf(os.Stderr, "[kafka] message rejected: p=%d off=%d err=%v\n",
				msg.Partition, msg.Offset, err)
		}
		sess.MarkMessage(msg, "")
	}
	return nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, x := range parts {
		x = strings.TrimSpace(x)
		if x != "" {
			out = append(out, x)
		}
	}
	return out
}
