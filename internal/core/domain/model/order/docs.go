// Package order provides the Order aggregate of the ice cream shop and the value
// objects it is built from.
//
// The package includes:
//   - Order: the aggregate root, numbered by the store and carrying its lifecycle status
//   - Customer and Item: validated value objects captured at creation time
//   - Status and PaymentMethod: closed enumerations with wire names and labels
//   - Event: facts raised by the aggregate for publication after commit
//   - Statistics: aggregate counts reported by the statistics query
//
// Key business rules:
//   - Every order has at least one item; each item has a quantity between 1 and 50
//   - Amounts are exact decimals with two fractional digits
//   - New orders start Pending; status changes are unrestricted and stamp updatedAt
package order
