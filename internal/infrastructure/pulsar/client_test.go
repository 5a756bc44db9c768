package pulsar

import (
	"errors"
	"testing"
	"time"

	"github.com/brokerlab/pulsar-jwt-demo/internal/infrastructure/config"
)

func testBrokerConfig() config.BrokerConfig {
	return config.BrokerConfig{
		URL:              "pulsar://127.0.0.1:6650",
		ConnectTimeout:   5,
		OperationTimeout: 10,
	}
}

func TestConnect_EmptyURL(t *testing.T) {
	cfg := testBrokerConfig()
	cfg.URL = ""

	_, err := Connect(cfg, "token")
	if !errors.Is(err, ErrConnectionFailed) {
		t.Errorf("Connect() error = %v, want ErrConnectionFailed", err)
	}
}

func TestConnect_EmptyToken(t *testing.T) {
	_, err := Connect(testBrokerConfig(), "")
	if !errors.Is(err, ErrConnectionFailed) {
		t.Errorf("Connect() error = %v, want ErrConnectionFailed", err)
	}
}

func TestConnect_InvalidScheme(t *testing.T) {
	cfg := testBrokerConfig()
	cfg.URL = "not a url"

	_, err := Connect(cfg, "token")
	if !errors.Is(err, ErrConnectionFailed) {
		t.Errorf("Connect() error = %v, want ErrConnectionFailed", err)
	}
}

func TestClientClose_Idempotent(t *testing.T) {
	// The client dials lazily, so construction succeeds without a broker.
	client, err := Connect(testBrokerConfig(), "token")
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	if err := client.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := client.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestBuildClientOptions(t *testing.T) {
	cfg := testBrokerConfig()

	opts := buildClientOptions(cfg, "token")

	if opts.URL != cfg.URL {
		t.Errorf("URL = %q, want %q", opts.URL, cfg.URL)
	}
	if opts.ConnectionTimeout != 5*time.Second {
		t.Errorf("ConnectionTimeout = %v, want 5s", opts.ConnectionTimeout)
	}
	if opts.OperationTimeout != 10*time.Second {
		t.Errorf("OperationTimeout = %v, want 10s", opts.OperationTimeout)
	}
	if opts.Authentication == nil {
		t.Error("Authentication is nil, want token authentication")
	}
}

func TestBuildClientOptions_Defaults(t *testing.T) {
	cfg := config.BrokerConfig{URL: "pulsar://localhost:6650"}

	opts := buildClientOptions(cfg, "token")

	if opts.ConnectionTimeout != defaultConnectTimeout {
		t.Errorf("ConnectionTimeout = %v, want default %v", opts.ConnectionTimeout, defaultConnectTimeout)
	}
	if opts.OperationTimeout != defaultOperationTimeout {
		t.Errorf("OperationTimeout = %v, want default %v", opts.OperationTimeout, defaultOperationTimeout)
	}
}
