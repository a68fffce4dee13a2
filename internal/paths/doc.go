// Package paths centralizes filesystem path resolution for the zc CLI.
//
// The home and working directories are resolved once per run and passed
// explicitly into the install layer, so the core stays testable without
// process-global mocking.
package paths
