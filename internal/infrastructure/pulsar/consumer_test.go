package pulsar

import (
	"context"
	"errors"
	"testing"
	"time"

	pulsargo "github.com/apache/pulsar-client-go/pulsar"
)

// fakeConsumer implements the subset of pulsargo.Consumer the wrapper
// touches; the embedded interface covers the rest.
type fakeConsumer struct {
	pulsargo.Consumer
	receiveFn func(ctx context.Context) (pulsargo.Message, error)
	acked     []pulsargo.Message
	ackErr    error
	closed    int
}

func (f *fakeConsumer) Receive(ctx context.Context) (pulsargo.Message, error) {
	return f.receiveFn(ctx)
}

func (f *fakeConsumer) Ack(msg pulsargo.Message) error {
	f.acked = append(f.acked, msg)
	return f.ackErr
}

func (f *fakeConsumer) Close() {
	f.closed++
}

type fakeMessage struct {
	pulsargo.Message
	payload []byte
	key     string
}

func (f *fakeMessage) Payload() []byte        { return f.payload }
func (f *fakeMessage) Key() string            { return f.key }
func (f *fakeMessage) ID() pulsargo.MessageID { return pulsargo.EarliestMessageID() }
func (f *fakeMessage) PublishTime() time.Time { return time.Unix(1700000000, 0) }

func TestReceive_Message(t *testing.T) {
	want := &fakeMessage{payload: []byte("hello - 2024-01-01 10:00:00"), key: "k1"}
	fake := &fakeConsumer{
		receiveFn: func(_ context.Context) (pulsargo.Message, error) {
			return want, nil
		},
	}
	c := &Consumer{consumer: fake}

	msg, err := c.Receive(context.Background(), time.Second)
	if err != nil {
		t.Fatalf("Receive() error = %v", err)
	}

	if string(msg.Payload()) != "hello - 2024-01-01 10:00:00" {
		t.Errorf("Payload() = %q, want original payload", msg.Payload())
	}
	if msg.Key() != "k1" {
		t.Errorf("Key() = %q, want %q", msg.Key(), "k1")
	}
	if msg.ID() == "" {
		t.Error("ID() is empty, want broker-assigned identifier")
	}
}

func TestReceive_Timeout(t *testing.T) {
	// The fake behaves like the real client: it blocks until the
	// receive context expires and surfaces the context's error.
	fake := &fakeConsumer{
		receiveFn: func(ctx context.Context) (pulsargo.Message, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	c := &Consumer{consumer: fake}

	_, err := c.Receive(context.Background(), 10*time.Millisecond)
	if !errors.Is(err, ErrReceiveTimeout) {
		t.Errorf("Receive() error = %v, want ErrReceiveTimeout", err)
	}
	if len(fake.acked) != 0 {
		t.Errorf("acked %d messages on timeout, want 0", len(fake.acked))
	}
}

func TestReceive_ParentCancelled(t *testing.T) {
	fake := &fakeConsumer{
		receiveFn: func(ctx context.Context) (pulsargo.Message, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	c := &Consumer{consumer: fake}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Receive(ctx, time.Second)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Receive() error = %v, want context.Canceled", err)
	}
	if errors.Is(err, ErrReceiveTimeout) {
		t.Error("shutdown cancellation must not be classified as a timeout")
	}
	if errors.Is(err, ErrReceiveFailed) {
		t.Error("shutdown cancellation must not be classified as a receive fault")
	}
}

func TestReceive_BrokerError(t *testing.T) {
	brokerErr := errors.New("consumer state change")
	fake := &fakeConsumer{
		receiveFn: func(_ context.Context) (pulsargo.Message, error) {
			return nil, brokerErr
		},
	}
	c := &Consumer{consumer: fake}

	_, err := c.Receive(context.Background(), time.Second)
	if !errors.Is(err, ErrReceiveFailed) {
		t.Errorf("Receive() error = %v, want ErrReceiveFailed", err)
	}
	if !errors.Is(err, brokerErr) {
		t.Errorf("Receive() error = %v, want wrapped broker error", err)
	}
}

func TestReceive_Closed(t *testing.T) {
	c := &Consumer{}
	_, err := c.Receive(context.Background(), time.Second)
	if !errors.Is(err, ErrNotConnected) {
		t.Errorf("Receive() error = %v, want ErrNotConnected", err)
	}
}

func TestAck(t *testing.T) {
	fake := &fakeConsumer{
		receiveFn: func(_ context.Context) (pulsargo.Message, error) {
			return &fakeMessage{payload: []byte("x")}, nil
		},
	}
	c := &Consumer{consumer: fake}

	msg, err := c.Receive(context.Background(), time.Second)
	if err != nil {
		t.Fatalf("Receive() error = %v", err)
	}

	if err := msg.Ack(); err != nil {
		t.Fatalf("Ack() error = %v", err)
	}
	if len(fake.acked) != 1 {
		t.Errorf("consumer received %d acks, want exactly 1", len(fake.acked))
	}
}

func TestAck_Error(t *testing.T) {
	fake := &fakeConsumer{
		ackErr: errors.New("connection closed"),
		receiveFn: func(_ context.Context) (pulsargo.Message, error) {
			return &fakeMessage{payload: []byte("x")}, nil
		},
	}
	c := &Consumer{consumer: fake}

	msg, err := c.Receive(context.Background(), time.Second)
	if err != nil {
		t.Fatalf("Receive() error = %v", err)
	}

	if err := msg.Ack(); !errors.Is(err, ErrAckFailed) {
		t.Errorf("Ack() error = %v, want ErrAckFailed", err)
	}
}

func TestConsumerClose_Idempotent(t *testing.T) {
	fake := &fakeConsumer{}
	c := &Consumer{consumer: fake}

	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if fake.closed != 1 {
		t.Errorf("underlying consumer closed %d times, want 1", fake.closed)
	}
}

func TestSubscribe_Validation(t *testing.T) {
	c := &Client{}

	if _, err := c.Subscribe("", "sub", "name"); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("Subscribe() with empty topic error = %v, want ErrInvalidTopic", err)
	}
	if _, err := c.Subscribe("persistent://public/default/t", "", "name"); !errors.Is(err, ErrInvalidSubscription) {
		t.Errorf("Subscribe() with empty subscription error = %v, want ErrInvalidSubscription", err)
	}
	if _, err := c.Subscribe("persistent://public/default/t", "sub", "name"); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Subscribe() on closed client error = %v, want ErrNotConnected", err)
	}
}
