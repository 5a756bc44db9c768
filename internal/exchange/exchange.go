package exchange

import (
	"context"
	"errors"
	"time"
)

// timestampLayout is the operator-visible local date-time format used in
// outbound payloads and receive reports.
const timestampLayout = "2006-01-02 15:04:05"

// ErrTimeout signals a bounded receive that elapsed with no message.
// It is an expected condition; the subscribe loop stays in its polling
// state and only emits a liveness marker.
var ErrTimeout = errors.New("exchange: receive timed out")

// Sender transmits one encoded message synchronously and returns the
// broker-assigned message ID.
type Sender interface {
	Send(ctx context.Context, payload []byte) (string, error)
}

// Delivery is one received message pending acknowledgement.
type Delivery interface {
	ID() string
	Key() string
	Payload() []byte
	Ack() error
}

// Receiver produces deliveries with a bounded blocking receive. A receive
// that times out with no message returns ErrTimeout; a cancelled context
// returns the context's error.
type Receiver interface {
	Receive(ctx context.Context, timeout time.Duration) (Delivery, error)
}
