// Pulsar producer demo with JWT authentication.
//
// Reads operator-typed lines from stdin and publishes each as a
// timestamped message to the configured topic. The bearer token for the
// publish role is read from a local file; all broker mechanics are
// delegated to the Pulsar client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/brokerlab/pulsar-jwt-demo/internal/bootstrap"
	"github.com/brokerlab/pulsar-jwt-demo/internal/exchange"
	"github.com/brokerlab/pulsar-jwt-demo/internal/infrastructure/config"
	"github.com/brokerlab/pulsar-jwt-demo/internal/infrastructure/logging"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const (
	serviceName       = "producer"
	defaultConfigPath = "configs/config.yaml"
)

func main() {
	// Cancel on interrupt signals (Ctrl+C, SIGTERM) so the loop exits
	// and the deferred teardown runs.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for
// testability. Returning an error lets main handle exit codes
// consistently.
func run(ctx context.Context) error {
	log := logging.Default(serviceName)
	log.Info("starting producer",
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
	fmt.Println("Pulsar Producer (JWT authentication)")
	fmt.Println(strings.Repeat("=", 50))

	sess, err := bootstrap.Open(cfg, bootstrap.RolePublish, log)
	if err != nil {
		bootstrap.Guidance(os.Stdout, err)
		return fmt.Errorf("opening publish session: %w", err)
	}
	defer func() {
		log.Info("closing session")
		if closeErr := sess.Close(); closeErr != nil {
			log.Error("error closing session", "error", closeErr)
		}
	}()
	log.Info("connected",
		"broker", cfg.Broker.URL,
		"topic", cfg.Topic,
		"producer", cfg.Producer.Name,
	)

	publisher := exchange.NewPublisher(sess.Producer, exchange.PublisherConfig{
		Input:  os.Stdin,
		Output: os.Stdout,
	})

	sent := publisher.Run(ctx)
	log.Info("publish session ended", "messages_sent", sent)
	return nil
}

// getConfigPath returns the configuration file path.
// Uses the PULSARDEMO_CONFIG environment variable if set.
func getConfigPath() string {
	if path := os.Getenv("PULSARDEMO_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
