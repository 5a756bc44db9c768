package pulsar

import (
	"time"

	pulsargo "github.com/apache/pulsar-client-go/pulsar"
	pulsarlog "github.com/apache/pulsar-client-go/pulsar/log"

	"github.com/brokerlab/pulsar-jwt-demo/internal/infrastructure/config"
)

// Connection constants.
const (
	// defaultConnectTimeout is the maximum time to wait for the TCP
	// connection when the config leaves it unset.
	defaultConnectTimeout = 10 * time.Second

	// defaultOperationTimeout bounds broker operations (producer
	// creation, subscribe) when the config leaves it unset.
	defaultOperationTimeout = 30 * time.Second
)

// buildClientOptions creates Pulsar client options from demo config.
//
// This configures:
//   - Service URL (pulsar:// or pulsar+ssl://)
//   - Token-based authentication (the bearer token from the role's file)
//   - Connection and operation timeouts
//   - A no-op library logger, keeping the console clean for operator I/O
func buildClientOptions(cfg config.BrokerConfig, token string) pulsargo.ClientOptions {
	connectTimeout := defaultConnectTimeout
	if cfg.ConnectTimeout > 0 {
		connectTimeout = time.Duration(cfg.ConnectTimeout) * time.Second
	}

	operationTimeout := defaultOperationTimeout
	if cfg.OperationTimeout > 0 {
		operationTimeout = time.Duration(cfg.OperationTimeout) * time.Second
	}

	return pulsargo.ClientOptions{
		URL:               cfg.URL,
		Authentication:    pulsargo.NewAuthenticationToken(token),
		ConnectionTimeout: connectTimeout,
		OperationTimeout:  operationTimeout,
		Logger:            pulsarlog.DefaultNopLogger(),
	}
}
