package exchange

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// Subscribe loop defaults.
const (
	defaultReceiveTimeout   = 5 * time.Second
	defaultRetryDelay       = time.Second
	defaultLivenessInterval = 30 * time.Second
)

// SubscriberConfig carries the subscribe loop's collaborators and
// intervals. Zero values get sensible defaults (see NewSubscriber).
type SubscriberConfig struct {
	// Output receives message reports and markers, normally os.Stdout.
	Output io.Writer

	// ReceiveTimeout bounds each blocking poll.
	ReceiveTimeout time.Duration

	// RetryDelay is the fixed pause after a non-timeout error.
	RetryDelay time.Duration

	// LivenessInterval is the minimum quiet period between liveness
	// markers while no messages arrive.
	LivenessInterval time.Duration

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Subscriber polls for messages, prints and acknowledges each. One
// instance serves one session; not safe for concurrent use.
type Subscriber struct {
	receiver Receiver
	out      io.Writer

	receiveTimeout time.Duration
	retryDelay     time.Duration
	liveness       time.Duration
	now            func() time.Time

	received int
}

// NewSubscriber creates a subscribe loop over the given receiver.
func NewSubscriber(receiver Receiver, cfg SubscriberConfig) *Subscriber {
	if cfg.ReceiveTimeout <= 0 {
		cfg.ReceiveTimeout = defaultReceiveTimeout
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	if cfg.LivenessInterval <= 0 {
		cfg.LivenessInterval = defaultLivenessInterval
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Subscriber{
		receiver:       receiver,
		out:            cfg.Output,
		receiveTimeout: cfg.ReceiveTimeout,
		retryDelay:     cfg.RetryDelay,
		liveness:       cfg.LivenessInterval,
		now:            cfg.Now,
	}
}

// Run drives the loop until ctx is cancelled. It returns the number of
// messages received and acknowledged.
//
// A receive timeout is not an error: the loop keeps polling and prints a
// liveness marker when the quiet period since the last output exceeds
// the liveness interval. The interval is tracked with an elapsed-time
// accumulator, so it does not depend on poll cadence aligning with clock
// boundaries. Any other fault is reported, followed by a fixed pause,
// then the loop polls again.
func (s *Subscriber) Run(ctx context.Context) int {
	fmt.Fprintln(s.out, "Listening for messages continuously...")
	fmt.Fprintln(s.out, "Press Ctrl+C to stop the consumer.")
	fmt.Fprintln(s.out, strings.Repeat("-", 50))

	lastOutput := s.now()

	for ctx.Err() == nil {
		msg, err := s.receiver.Receive(ctx, s.receiveTimeout)

		switch {
		case err == nil:
			s.received++
			s.report(msg)
			lastOutput = s.now()

			if ackErr := msg.Ack(); ackErr != nil {
				fmt.Fprintf(s.out, "Error acknowledging message: %v\n", ackErr)
				s.pause(ctx)
			}

		case errors.Is(err, ErrTimeout):
			if s.now().Sub(lastOutput) >= s.liveness {
				fmt.Fprint(s.out, ".")
				lastOutput = s.now()
			}

		case ctx.Err() != nil:
			// Shutdown in progress; the outer condition ends the loop.

		default:
			fmt.Fprintf(s.out, "Error receiving message: %v\n", err)
			s.pause(ctx)
		}
	}

	fmt.Fprintf(s.out, "\nTotal messages consumed: %d\n", s.received)
	return s.received
}

// report prints one received message to the operator.
func (s *Subscriber) report(msg Delivery) {
	fmt.Fprintf(s.out, "\nMessage %d received:\n", s.received)
	fmt.Fprintf(s.out, "  ID: %s\n", msg.ID())
	if key := msg.Key(); key != "" {
		fmt.Fprintf(s.out, "  Key: %s\n", key)
	}
	fmt.Fprintf(s.out, "  Data: %s\n", msg.Payload())
	fmt.Fprintf(s.out, "  Received at: %s\n", s.now().Format(timestampLayout))
	fmt.Fprintln(s.out, strings.Repeat("-", 50))
}

// pause waits for the fixed retry delay, or until ctx is cancelled.
func (s *Subscriber) pause(ctx context.Context) {
	timer := time.NewTimer(s.retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
