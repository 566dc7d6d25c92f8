// Package kernel provides the value objects shared by the order domain.
//
// The package includes:
//   - Money: an exact, non-negative currency amount with two fractional digits
//   - UUID: a random identifier for things the store does not number, such as events
//
// Both are immutable, safe for concurrent use, and invalid as zero values; build them
// through their constructors.
package kernel
