package exchange

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// defaultExitKeyword terminates the publish loop when entered by the
// operator, compared case-insensitively after trimming.
const defaultExitKeyword = "exit"

// PublisherConfig carries the publish loop's collaborators. Zero values
// get sensible defaults (see NewPublisher).
type PublisherConfig struct {
	// Input is the operator's line source, normally os.Stdin.
	Input io.Reader

	// Output receives prompts and status lines, normally os.Stdout.
	Output io.Writer

	// ExitKeyword overrides the default "exit" keyword.
	ExitKeyword string

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Publisher reads operator lines and transmits each as a timestamped
// message. One instance serves one session; not safe for concurrent use.
type Publisher struct {
	sender Sender
	in     io.Reader
	out    io.Writer
	exit   string
	now    func() time.Time

	sent int
}

// NewPublisher creates a publish loop over the given sender.
func NewPublisher(sender Sender, cfg PublisherConfig) *Publisher {
	if cfg.ExitKeyword == "" {
		cfg.ExitKeyword = defaultExitKeyword
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Publisher{
		sender: sender,
		in:     cfg.Input,
		out:    cfg.Output,
		exit:   cfg.ExitKeyword,
		now:    cfg.Now,
	}
}

// Run drives the loop until the operator exits, input ends, or ctx is
// cancelled. It returns the number of messages sent.
//
// Per-message send failures are reported to the operator and do not
// terminate the loop; the failed line is dropped, not retried.
func (p *Publisher) Run(ctx context.Context) int {
	fmt.Fprintln(p.out, "Ready to send messages!")
	fmt.Fprintf(p.out, "Type your message and press Enter to send. Type '%s' to quit or press Ctrl+C to stop.\n", p.exit)
	fmt.Fprintln(p.out, strings.Repeat("-", 50))

	// Stdin reads cannot be interrupted directly, so a goroutine feeds
	// lines into a channel and the loop selects on it alongside ctx.
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(p.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

loop:
	for {
		fmt.Fprint(p.out, "Enter message: ")

		select {
		case <-ctx.Done():
			fmt.Fprintln(p.out, "\nInterrupt received, exiting...")
			break loop
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(p.out, "\nEnd of input, exiting...")
				break loop
			}

			text := strings.TrimSpace(line)
			if strings.EqualFold(text, p.exit) {
				fmt.Fprintln(p.out, "Exiting producer...")
				break loop
			}
			if text == "" {
				fmt.Fprintln(p.out, "Empty message, please enter some text.")
				continue
			}

			payload := fmt.Sprintf("%s - %s", text, p.now().Format(timestampLayout))
			id, err := p.sender.Send(ctx, []byte(payload))
			if err != nil {
				fmt.Fprintf(p.out, "Error sending message: %v\n", err)
				continue
			}

			p.sent++
			fmt.Fprintf(p.out, "Message sent - ID: %s\n", id)
		}
	}

	fmt.Fprintf(p.out, "\nTotal messages sent: %d\n", p.sent)
	return p.sent
}
