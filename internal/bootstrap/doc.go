// Package bootstrap opens an authenticated broker session for one role.
//
// Both binaries share the same setup path: load the role's bearer token,
// connect the client, open the role-appropriate channel handle. Any fault
// in that sequence is fatal; Guidance turns it into categorized operator
// advice before the process exits non-zero.
//
// A Session guarantees teardown order: the channel handle is released
// before the client session it belongs to.
package bootstrap
