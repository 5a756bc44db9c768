package pulsar

import (
	"context"
	"errors"
	"fmt"
	"time"

	pulsargo "github.com/apache/pulsar-client-go/pulsar"
)

// Consumer is a read handle bound to one topic and one named subscription.
// The broker maintains the subscription's delivery cursor; the cursor only
// advances when messages are acknowledged.
type Consumer struct {
	consumer pulsargo.Consumer
}

// Message is a received message pending acknowledgement.
type Message struct {
	msg      pulsargo.Message
	consumer pulsargo.Consumer
}

// ID returns the broker-assigned message identifier.
func (m *Message) ID() string {
	return fmt.Sprintf("%v", m.msg.ID())
}

// Key returns the message key set by the producer, if any.
func (m *Message) Key() string {
	return m.msg.Key()
}

// Payload returns the raw message payload.
func (m *Message) Payload() []byte {
	return m.msg.Payload()
}

// PublishTime returns the broker-recorded publish time.
func (m *Message) PublishTime() time.Time {
	return m.msg.PublishTime()
}

// Ack positively acknowledges the message, advancing the subscription
// cursor past it.
func (m *Message) Ack() error {
	if err := m.consumer.Ack(m.msg); err != nil {
		return fmt.Errorf("%w: %w", ErrAckFailed, err)
	}
	return nil
}

// Subscribe opens a consumer on the topic under the named subscription.
//
// The subscription is exclusive, matching a single-consumer demo; the
// broker persists the cursor across runs.
//
// Returns:
//   - *Consumer: Handle ready for Receive/Ack
//   - error: ErrSubscribeFailed (wrapped) if the broker rejects it, e.g.
//     the token's role lacks consume permission on the topic
func (c *Client) Subscribe(topic, subscription, name string) (*Consumer, error) {
	if topic == "" {
		return nil, ErrInvalidTopic
	}
	if subscription == "" {
		return nil, ErrInvalidSubscription
	}
	if c == nil || c.client == nil {
		return nil, ErrNotConnected
	}

	consumer, err := c.client.Subscribe(pulsargo.ConsumerOptions{
		Topic:            topic,
		SubscriptionName: subscription,
		Name:             name,
		Type:             pulsargo.Exclusive,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubscribeFailed, err)
	}

	return &Consumer{consumer: consumer}, nil
}

// Receive blocks for up to timeout waiting for the next message.
//
// The bound exists so callers can observe interrupt signals between
// polls. Timeout classification relies on the client's context contract,
// not on error text:
//   - timeout elapsed, no message: ErrReceiveTimeout
//   - parent context cancelled (shutdown): the context's error
//   - anything else: ErrReceiveFailed (wrapped)
func (c *Consumer) Receive(ctx context.Context, timeout time.Duration) (*Message, error) {
	if c == nil || c.consumer == nil {
		return nil, ErrNotConnected
	}

	rctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	msg, err := c.consumer.Receive(rctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrReceiveTimeout
		}
		return nil, fmt.Errorf("%w: %w", ErrReceiveFailed, err)
	}

	return &Message{msg: msg, consumer: c.consumer}, nil
}

// Close releases the consumer handle. The subscription itself remains on
// the broker. Safe to call more than once.
func (c *Consumer) Close() error {
	if c == nil || c.consumer == nil {
		return nil
	}
	c.consumer.Close()
	c.consumer = nil
	return nil
}
