package pulsar

import "errors"

// Domain-specific errors for broker operations.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrNotConnected is returned when attempting operations on a
	// closed or never-opened handle.
	ErrNotConnected = errors.New("pulsar: not connected")

	// ErrConnectionFailed is returned when the client cannot be
	// constructed against the configured service URL.
	ErrConnectionFailed = errors.New("pulsar: connection failed")

	// ErrProducerFailed is returned when the broker rejects producer
	// creation (authorization, topic, quota).
	ErrProducerFailed = errors.New("pulsar: creating producer failed")

	// ErrSubscribeFailed is returned when the broker rejects the
	// subscription.
	ErrSubscribeFailed = errors.New("pulsar: subscribe failed")

	// ErrSendFailed is returned when a synchronous publish fails.
	ErrSendFailed = errors.New("pulsar: send failed")

	// ErrReceiveTimeout is returned when a bounded receive elapses
	// with no message. This is an expected condition, not a fault.
	ErrReceiveTimeout = errors.New("pulsar: receive timed out")

	// ErrReceiveFailed is returned for any non-timeout receive fault.
	ErrReceiveFailed = errors.New("pulsar: receive failed")

	// ErrAckFailed is returned when acknowledging a message fails.
	ErrAckFailed = errors.New("pulsar: acknowledge failed")

	// ErrInvalidTopic is returned when an empty topic is provided.
	ErrInvalidTopic = errors.New("pulsar: topic cannot be empty")

	// ErrInvalidSubscription is returned when an empty subscription
	// name is provided.
	ErrInvalidSubscription = errors.New("pulsar: subscription cannot be empty")
)
