// Package queries contains read-only operations over orders.
// Implements the Query side of the CQRS architecture: each query is a small validated
// value, each handler reads through ports.OrderRepository and never writes.
package queries
