package pulsar

import (
	"fmt"

	pulsargo "github.com/apache/pulsar-client-go/pulsar"

	"github.com/brokerlab/pulsar-jwt-demo/internal/infrastructure/config"
)

// Client wraps a Pulsar client session authenticated with a bearer token.
//
// A Client owns the connection; Producers and Consumers opened from it
// must be closed before the Client itself.
type Client struct {
	client pulsargo.Client
	cfg    config.BrokerConfig
}

// Connect constructs an authenticated client for the configured broker.
//
// The underlying library dials lazily; authorization failures surface on
// the first producer/subscribe operation, which is why callers treat both
// Connect and handle creation as one fatal setup phase.
//
// Parameters:
//   - cfg: Broker connection settings from config.yaml
//   - token: Bearer token granting this process's role
//
// Returns:
//   - *Client: Client ready to open producers or consumers
//   - error: ErrConnectionFailed (wrapped) on any construction fault
func Connect(cfg config.BrokerConfig, token string) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: service URL is empty", ErrConnectionFailed)
	}
	if token == "" {
		return nil, fmt.Errorf("%w: bearer token is empty", ErrConnectionFailed)
	}

	client, err := pulsargo.NewClient(buildClientOptions(cfg, token))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	return &Client{client: client, cfg: cfg}, nil
}

// Close releases the client session. Handles opened from this client must
// already be closed. Safe to call more than once.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	c.client.Close()
	c.client = nil
	return nil
}
