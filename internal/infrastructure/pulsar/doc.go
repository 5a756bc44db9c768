// Package pulsar wraps the Apache Pulsar Go client for the demo binaries.
//
// This package manages:
//   - Client construction with token (JWT) authentication
//   - Producer creation bound to one topic
//   - Subscription with a named cursor and bounded blocking receive
//   - Positive per-message acknowledgement
//
// # Architecture
//
// The broker owns durability, delivery, retries and authorization; this
// package only adapts the client library's surface to what the
// interaction loops need: connect, send, receive, acknowledge, close.
//
// # Error contract
//
// All faults are classified into the sentinel errors in errors.go. In
// particular a bounded receive that elapses with no message returns
// ErrReceiveTimeout, derived from the client's context contract rather
// than from error text, so callers can use errors.Is.
//
// # Usage
//
//	client, err := pulsar.Connect(cfg.Broker, token)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	consumer, err := client.Subscribe(cfg.Topic, cfg.Consumer.Subscription, cfg.Consumer.Name)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer consumer.Close()
//
//	msg, err := consumer.Receive(ctx, 5*time.Second)
//	if errors.Is(err, pulsar.ErrReceiveTimeout) {
//	    // no message this poll
//	}
package pulsar
