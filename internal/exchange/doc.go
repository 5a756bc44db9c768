// Package exchange implements the operator-facing interaction loops.
//
// The publish loop reads lines from the operator, timestamps them and
// sends each as one message. The subscribe loop polls with a bounded
// receive, prints and acknowledges each message, and emits a periodic
// liveness marker while idle.
//
// Per-message faults are printed and the loop continues; only operator
// action (exit keyword, end of input, interrupt) terminates a loop.
// Setup faults never reach this package.
//
// The loops depend on the small Sender and Receiver interfaces rather
// than the broker client directly, so they are exercised with fakes in
// tests and wired to the Pulsar handles by the binaries.
package exchange
