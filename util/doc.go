// Package util provides generic collection helpers for hofkit.
//
// It includes slice operations, map utilities, the capitalization filter,
// map-to-text flattening, and parsing helpers used by the CLI and server.
package util
