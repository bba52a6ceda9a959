// Package app wires the hofkit library into a service: operation names are
// resolved through an arith.Registry extended with configured scripts, and
// every call is logged and traced.
package app
