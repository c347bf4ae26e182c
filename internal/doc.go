// Package internal contains private implementation details for the GCS adapter.
// These packages are not intended for external use and may change without notice.
//
// The internal packages are organized as follows:
//   - gcsapi: interface seam over the Cloud Storage SDK
//   - operations: core listing and download implementations
//   - bridge: sync-over-async dispatch for blocking reads
//   - validation: input validation logic
//   - testutil: in-memory fakes for unit tests
package internal
