package bootstrap

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brokerlab/pulsar-jwt-demo/internal/credential"
	"github.com/brokerlab/pulsar-jwt-demo/internal/infrastructure/config"
	"github.com/brokerlab/pulsar-jwt-demo/internal/infrastructure/logging"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Broker: config.BrokerConfig{
			URL:              "pulsar://127.0.0.1:6650",
			ConnectTimeout:   1,
			OperationTimeout: 1,
		},
		Topic: "persistent://public/default/test-topic",
		Producer: config.ProducerConfig{
			Name:      "test-producer",
			TokenFile: filepath.Join(t.TempDir(), "missing-token.txt"),
		},
		Consumer: config.ConsumerConfig{
			Subscription:            "test-subscription",
			Name:                    "test-consumer",
			TokenFile:               filepath.Join(t.TempDir(), "missing-token.txt"),
			ReceiveTimeoutMillis:    100,
			RetryDelaySeconds:       1,
			LivenessIntervalSeconds: 30,
		},
	}
	return cfg
}

func TestOpen_MissingToken(t *testing.T) {
	cfg := testConfig(t)
	log := logging.Default("test")

	_, err := Open(cfg, RolePublish, log)
	if err == nil {
		t.Fatal("Open() expected error for missing token file")
	}
	if !errors.Is(err, credential.ErrMissing) {
		t.Errorf("Open() error = %v, want wrapped ErrMissing", err)
	}
}

func TestOpen_UnknownRole(t *testing.T) {
	cfg := testConfig(t)
	log := logging.Default("test")

	_, err := Open(cfg, Role("spectate"), log)
	if !errors.Is(err, ErrUnknownRole) {
		t.Errorf("Open() error = %v, want ErrUnknownRole", err)
	}
}

func TestOpen_EmptyTokenFile(t *testing.T) {
	cfg := testConfig(t)
	empty := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(empty, []byte("\n"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg.Consumer.TokenFile = empty

	_, err := Open(cfg, RoleSubscribe, logging.Default("test"))
	if !errors.Is(err, credential.ErrUnreadable) {
		t.Errorf("Open() error = %v, want wrapped ErrUnreadable", err)
	}
}

func TestSessionClose_HandleBeforeClient(t *testing.T) {
	var order []string
	s := &Session{
		closeHandle: func() error {
			order = append(order, "handle")
			return nil
		},
		closeClient: func() error {
			order = append(order, "client")
			return nil
		},
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if len(order) != 2 || order[0] != "handle" || order[1] != "client" {
		t.Errorf("close order = %v, want [handle client]", order)
	}
}

func TestSessionClose_ExactlyOnce(t *testing.T) {
	calls := 0
	s := &Session{
		closeHandle: func() error {
			calls++
			return nil
		},
		closeClient: func() error {
			calls++
			return nil
		},
	}

	_ = s.Close()
	_ = s.Close()
	_ = s.Close()

	if calls != 2 {
		t.Errorf("release functions called %d times across repeated Close(), want 2", calls)
	}
}

func TestSessionClose_CollectsErrors(t *testing.T) {
	handleErr := errors.New("flush failed")
	s := &Session{
		closeHandle: func() error { return handleErr },
		closeClient: func() error { return nil },
	}

	err := s.Close()
	if !errors.Is(err, handleErr) {
		t.Errorf("Close() error = %v, want wrapped handle error", err)
	}
}

func TestSessionClose_Nil(t *testing.T) {
	var s *Session
	if err := s.Close(); err != nil {
		t.Errorf("Close() on nil session error = %v, want nil", err)
	}
}

func TestGuidance_MissingCredential(t *testing.T) {
	var out bytes.Buffer
	Guidance(&out, fmt.Errorf("loading token: %w", credential.ErrMissing))

	if !strings.Contains(out.String(), "provisioning") {
		t.Errorf("guidance missing provisioning advice:\n%s", out.String())
	}
}

func TestGuidance_UnreadableCredential(t *testing.T) {
	var out bytes.Buffer
	Guidance(&out, fmt.Errorf("loading token: %w", credential.ErrUnreadable))

	if !strings.Contains(out.String(), "permissions") {
		t.Errorf("guidance missing permissions advice:\n%s", out.String())
	}
}

func TestGuidance_ConnectionFailure(t *testing.T) {
	var out bytes.Buffer
	Guidance(&out, errors.New("connecting to broker: connection refused"))

	got := out.String()
	for _, want := range []string{"cluster is running", "tokens have been generated", "permissions", "reachable"} {
		if !strings.Contains(got, want) {
			t.Errorf("guidance missing %q:\n%s", want, got)
		}
	}
}
