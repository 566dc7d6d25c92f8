// Package services provides domain services: business rules that need collaborators
// (here, a source of randomness) and therefore do not live on the Order aggregate.
//
// The package includes:
//   - DeliveryEstimator: predicts a delivery time for a freshly created order
package services
