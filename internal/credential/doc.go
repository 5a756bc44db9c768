// Package credential loads pre-issued bearer tokens from local files.
//
// Tokens are provisioned out of band (by the cluster's token generation
// step); this package only reads them. A missing token file is a distinct,
// actionable condition (ErrMissing) so callers can tell the operator to
// run provisioning, as opposed to any other read fault (ErrUnreadable).
//
// Inspect offers a best-effort, signature-unverified look inside a JWT so
// connection failures can be diagnosed (wrong subject, expired token).
// Verification is the broker's job, never this package's.
package credential
