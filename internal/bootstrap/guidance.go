package bootstrap

import (
	"errors"
	"fmt"
	"io"

	"github.com/brokerlab/pulsar-jwt-demo/internal/credential"
)

// Guidance prints categorized troubleshooting advice for a setup failure.
//
// Credential problems and connection problems get different advice; the
// operator is expected to fix the environment and restart the process.
func Guidance(w io.Writer, err error) {
	switch {
	case errors.Is(err, credential.ErrMissing):
		fmt.Fprintln(w, "Token file not found.")
		fmt.Fprintln(w, "Run the token provisioning step first to generate the JWT tokens,")
		fmt.Fprintln(w, "then point producer.token_file / consumer.token_file at them.")

	case errors.Is(err, credential.ErrUnreadable):
		fmt.Fprintln(w, "Token file could not be read.")
		fmt.Fprintln(w, "Check the file's permissions and that it contains a single bearer token.")

	default:
		fmt.Fprintln(w, "Troubleshooting tips:")
		fmt.Fprintln(w, "  1. Ensure the Pulsar cluster is running: docker compose up -d")
		fmt.Fprintln(w, "  2. Ensure the JWT tokens have been generated for both roles")
		fmt.Fprintln(w, "  3. Ensure topic permissions are granted to the token's subject")
		fmt.Fprintln(w, "  4. Check the broker is reachable at the configured service URL")
	}
}
