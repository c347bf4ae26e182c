// Package operations contains the core store operation implementations.
// These packages handle the low-level Cloud Storage SDK interactions for
// listing and download operations.
//
// Each operation is isolated into its own subpackage for better organization
// and testability.
package operations
