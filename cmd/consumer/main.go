// Pulsar consumer demo with JWT authentication.
//
// Subscribes to the configured topic under a named subscription, polls
// with a bounded receive timeout, prints each message and positively
// acknowledges it. The bearer token for the consume role is read from a
// local file; all broker mechanics are delegated to the Pulsar client.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/brokerlab/pulsar-jwt-demo/internal/bootstrap"
	"github.com/brokerlab/pulsar-jwt-demo/internal/exchange"
	"github.com/brokerlab/pulsar-jwt-demo/internal/infrastructure/config"
	"github.com/brokerlab/pulsar-jwt-demo/internal/infrastructure/logging"
	"github.com/brokerlab/pulsar-jwt-demo/internal/infrastructure/pulsar"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const (
	serviceName       = "consumer"
	defaultConfigPath = "configs/config.yaml"
)

func main() {
	// Cancel on interrupt signals (Ctrl+C, SIGTERM) so the poll loop
	// exits between bounded receives and the deferred teardown runs.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for
// testability.
func run(ctx context.Context) error {
	log := logging.Default(serviceName)
	log.Info("starting consumer",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, serviceName, version)
	log.Info("configuration loaded", "path", configPath)

	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Pulsar Consumer (JWT authentication)")
	fmt.Println(strings.Repeat("=", 50))

	sess, err := bootstrap.Open(cfg, bootstrap.RoleSubscribe, log)
	if err != nil {
		bootstrap.Guidance(os.Stdout, err)
		return fmt.Errorf("opening subscribe session: %w", err)
	}
	defer func() {
		log.Info("closing session")
		if closeErr := sess.Close(); closeErr != nil {
			log.Error("error closing session", "error", closeErr)
		}
	}()
	log.Info("subscribed",
		"broker", cfg.Broker.URL,
		"topic", cfg.Topic,
		"subscription", cfg.Consumer.Subscription,
	)

	subscriber := exchange.NewSubscriber(consumerAdapter{consumer: sess.Consumer}, exchange.SubscriberConfig{
		Output:           os.Stdout,
		ReceiveTimeout:   cfg.GetReceiveTimeout(),
		RetryDelay:       cfg.GetRetryDelay(),
		LivenessInterval: cfg.GetLivenessInterval(),
	})

	received := subscriber.Run(ctx)
	log.Info("subscribe session ended", "messages_received", received)
	return nil
}

// consumerAdapter adapts the Pulsar consumer to the exchange Receiver
// interface, translating the wrapper's timeout sentinel to the loop's.
type consumerAdapter struct {
	consumer *pulsar.Consumer
}

// Receive implements exchange.Receiver.
func (a consumerAdapter) Receive(ctx context.Context, timeout time.Duration) (exchange.Delivery, error) {
	msg, err := a.consumer.Receive(ctx, timeout)
	if err != nil {
		if errors.Is(err, pulsar.ErrReceiveTimeout) {
			return nil, exchange.ErrTimeout
		}
		return nil, err
	}
	return msg, nil
}

// getConfigPath returns the configuration file path.
// Uses the PULSARDEMO_CONFIG environment variable if set.
func getConfigPath() string {
	if path := os.Getenv("PULSARDEMO_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
