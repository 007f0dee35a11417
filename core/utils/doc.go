// Package utils provides common utility functions for the practice ledger.
// It includes helpers for converting loosely typed tabular cells into typed
// values and other shared logic that doesn't fit into domain-specific packages.
package utils
