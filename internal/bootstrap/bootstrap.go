package bootstrap

import (
	"errors"
	"fmt"

	"github.com/brokerlab/pulsar-jwt-demo/internal/credential"
	"github.com/brokerlab/pulsar-jwt-demo/internal/infrastructure/config"
	"github.com/brokerlab/pulsar-jwt-demo/internal/infrastructure/logging"
	"github.com/brokerlab/pulsar-jwt-demo/internal/infrastructure/pulsar"
)

// Role selects which channel handle a session opens.
type Role string

const (
	// RolePublish opens a producer bound to the configured topic.
	RolePublish Role = "publish"

	// RoleSubscribe opens a consumer under the configured subscription.
	RoleSubscribe Role = "subscribe"
)

// ErrUnknownRole is returned for a role other than publish or subscribe.
var ErrUnknownRole = errors.New("bootstrap: unknown role")

// Session is a live authenticated connection plus its single channel
// handle. Exactly one of Producer or Consumer is set, matching the role.
type Session struct {
	Producer *pulsar.Producer
	Consumer *pulsar.Consumer

	closeHandle func() error
	closeClient func() error
	closed      bool
}

// Open loads the role's token, connects to the broker and opens the
// role-appropriate channel handle.
//
// Every fault here is fatal setup: the partially-opened session is torn
// down and the error returned; callers print Guidance and exit non-zero.
// The operator fixes the environment and restarts; there is no retry.
func Open(cfg *config.Config, role Role, log *logging.Logger) (*Session, error) {
	tokenPath, err := tokenFile(cfg, role)
	if err != nil {
		return nil, err
	}

	token, err := credential.Load(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("loading token from %s: %w", tokenPath, err)
	}
	log.Info("token loaded", "path", tokenPath)

	// Best-effort JWT diagnostics; an opaque token is fine.
	if info, inspectErr := credential.Inspect(token); inspectErr == nil {
		log.Info("token claims", "subject", info.Subject, "expires", info.ExpiresAt)
		if info.Expired {
			log.Warn("token has expired; the broker will reject it", "expired_at", info.ExpiresAt)
		}
	} else {
		log.Debug("token is not a JWT, skipping claim diagnostics")
	}

	client, err := pulsar.Connect(cfg.Broker, token)
	if err != nil {
		return nil, fmt.Errorf("connecting to broker: %w", err)
	}

	sess := &Session{closeClient: client.Close}

	switch role {
	case RolePublish:
		producer, perr := client.CreateProducer(cfg.Topic, cfg.Producer.Name)
		if perr != nil {
			_ = client.Close()
			return nil, fmt.Errorf("creating producer: %w", perr)
		}
		sess.Producer = producer
		sess.closeHandle = producer.Close
		log.Info("producer created", "topic", cfg.Topic, "name", cfg.Producer.Name)

	case RoleSubscribe:
		consumer, serr := client.Subscribe(cfg.Topic, cfg.Consumer.Subscription, cfg.Consumer.Name)
		if serr != nil {
			_ = client.Close()
			return nil, fmt.Errorf("subscribing: %w", serr)
		}
		sess.Consumer = consumer
		sess.closeHandle = consumer.Close
		log.Info("consumer subscribed",
			"topic", cfg.Topic,
			"subscription", cfg.Consumer.Subscription,
			"name", cfg.Consumer.Name,
		)

	default:
		_ = client.Close()
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	return sess, nil
}

// tokenFile returns the configured token path for the role.
func tokenFile(cfg *config.Config, role Role) (string, error) {
	switch role {
	case RolePublish:
		return cfg.Producer.TokenFile, nil
	case RoleSubscribe:
		return cfg.Consumer.TokenFile, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
}

// Close releases the channel handle, then the client session, in that
// order, so the session is never torn down under a live handle. Safe to
// call more than once; later calls are no-ops.
func (s *Session) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.closeHandle != nil {
		errs = append(errs, s.closeHandle())
	}
	if s.closeClient != nil {
		errs = append(errs, s.closeClient())
	}
	return errors.Join(errs...)
}
