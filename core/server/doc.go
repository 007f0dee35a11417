// Package server holds the HTTP server configuration.
//
// The start command serves read access to the ledger standings and, when
// enabled, a trigger for the ledger pipeline. This package defines the
// port, the optional API key and the process switch.
package server
