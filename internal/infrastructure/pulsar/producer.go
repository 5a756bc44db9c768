package pulsar

import (
	"context"
	"fmt"

	pulsargo "github.com/apache/pulsar-client-go/pulsar"
	"github.com/google/uuid"
)

// Producer is a publish handle bound to one topic.
type Producer struct {
	producer pulsargo.Producer
}

// CreateProducer opens a named producer on the given topic.
//
// Returns:
//   - *Producer: Handle ready for Send
//   - error: ErrProducerFailed (wrapped) if the broker rejects it, e.g.
//     the token's role lacks produce permission on the topic
func (c *Client) CreateProducer(topic, name string) (*Producer, error) {
	if topic == "" {
		return nil, ErrInvalidTopic
	}
	if c == nil || c.client == nil {
		return nil, ErrNotConnected
	}

	producer, err := c.client.CreateProducer(pulsargo.ProducerOptions{
		Topic: topic,
		Name:  name,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProducerFailed, err)
	}

	return &Producer{producer: producer}, nil
}

// Send publishes the payload synchronously and returns the broker-assigned
// message ID.
//
// Each message carries a generated UUID key so consumers can correlate
// displayed messages. Send blocks until the broker confirms or fails
// transmission; there is no fire-and-forget path.
//
// Returns:
//   - string: Broker-assigned message ID
//   - error: ErrSendFailed (wrapped) on any transmission fault
func (p *Producer) Send(ctx context.Context, payload []byte) (string, error) {
	if p == nil || p.producer == nil {
		return "", ErrNotConnected
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("%w: payload is empty", ErrSendFailed)
	}

	id, err := p.producer.Send(ctx, &pulsargo.ProducerMessage{
		Payload: payload,
		Key:     uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	return fmt.Sprintf("%v", id), nil
}

// Close flushes pending messages and releases the producer handle.
// Safe to call more than once.
func (p *Producer) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	flushErr := p.producer.Flush()
	p.producer.Close()
	p.producer = nil
	if flushErr != nil {
		return fmt.Errorf("flushing producer: %w", flushErr)
	}
	return nil
}
