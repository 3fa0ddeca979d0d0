package intake

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// FeedConfig configures WebSocket feed behavior.
type FeedConfig struct {
	// ReconnectDelay is initial delay before reconnect attempt.
	ReconnectDelay time.Duration
	// MaxReconnectDelay is maximum delay between reconnect attempts.
	MaxReconnectDelay time.Duration
	// PingInterval is interval for sending ping frames.
	PingInterval time.Duration
	// ReadTimeout is timeout for reading messages.
	ReadTimeout time.Duration
	// WriteTimeout is timeout for writing control frames.
	WriteTimeout time.Duration
}

// DefaultFeedConfig returns default feed configuration.
func DefaultFeedConfig() FeedConfig {
	return FeedConfig{
		ReconnectDelay:    1 * time.Second,
		MaxReconnectDelay: 30 * time.Second,
		PingInterval:      30 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
}

// FeedClient consumes intake messages from a WebSocket endpoint and hands
// each one to a Sink. The connection is re-established with exponential
// backoff when reads fail.
type FeedClient struct {
	endpoint string
	config   FeedConfig
	sink     *Sink

	conn   *websocket.Conn
	connMu sync.Mutex
	closed atomic.Bool

	done chan struct{}
	wg   sync.WaitGroup
}

// NewFeedClient connects to the endpoint and starts consuming.
func NewFeedClient(ctx context.Context, endpoint string, sink *Sink, config *FeedConfig) (*FeedClient, error) {
	cfg := DefaultFeedConfig()
	if config != nil {
		cfg = *config
	}

	c := &FeedClient{
		endpoint: endpoint,
		config:   cfg,
		sink:     sink,
		done:     make(chan struct{}),
	}

	if err := c.connect(ctx); err != nil {
		return nil, err
	}

	c.wg.Add(1)
	go c.readLoop()

	c.wg.Add(1)
	go c.pingLoop()

	return c, nil
}

// connect establishes the WebSocket connection.
func (c *FeedClient) connect(ctx context.Context) error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	conn, _, err := dialer.DialContext(ctx, c.endpoint, nil)
	if err != nil {
		return fmt.Errorf("websocket dial: %w", err)
	}

	c.conn = conn
	return nil
}

// Close closes the connection and stops the read and ping loops.
func (c *FeedClient) Close() error {
	if c.closed.Swap(true) {
		return nil // Already closed
	}

	close(c.done)

	c.connMu.Lock()
	if c.conn != nil {
		c.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		c.conn.Close()
	}
	c.connMu.Unlock()

	c.wg.Wait()
	return nil
}

// readLoop reads messages and hands them to the sink. Read errors trigger
// reconnection with exponential backoff.
func (c *FeedClient) readLoop() {
	defer c.wg.Done()

	reconnectDelay := c.config.ReconnectDelay

	for !c.closed.Load() {
		c.connMu.Lock()
		conn := c.conn
		c.connMu.Unlock()

		if conn == nil {
			if !c.waitOrDone(100 * time.Millisecond) {
				return
			}
			continue
		}

		conn.SetReadDeadline(time.Now().Add(c.config.ReadTimeout))

		_, message, err := conn.ReadMessage()
		if err != nil {
			if c.closed.Load() {
				return
			}

			c.connMu.Lock()
			if c.conn != nil {
				c.conn.Close()
				c.conn = nil
			}
			c.connMu.Unlock()

			if !c.waitOrDone(reconnectDelay) {
				return
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			connectErr := c.connect(ctx)
			cancel()

			if connectErr != nil {
				reconnectDelay = reconnectDelay * 2
				if reconnectDelay > c.config.MaxReconnectDelay {
					reconnectDelay = c.config.MaxReconnectDelay
				}
			}
			continue
		}

		// Reset delay on successful read
		reconnectDelay = c.config.ReconnectDelay

		if err := c.sink.Handle(context.Background(), SourceFeed, message); err != nil {
			// Bad messages are counted by the sink; keep consuming.
			fmt.Fprintf(os.Stderr, "[feed] message rejected: %v\n", err)
		}
	}
}

// waitOrDone sleeps for d, returning false if the client was closed first.
func (c *FeedClient) waitOrDone(d time.Duration) bool {
	select {
	case <-c.done:
		return false
	case <-time.After(d):
		return true
	}
}

// pingLoop sends periodic ping frames to keep the connection alive.
func (c *FeedClient) pingLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.connMu.Lock()
			if c.conn != nil {
				c.conn.SetWriteDeadline(time.Now().Add(c.config.WriteTimeout))
				if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					// Connection might be dead, reader will handle reconnect
				}
			}
			c.connMu.Unlock()
		}
	}
}
