package services

import (
	"math/rand/v2"
	"time"
)

const (
	// MinDeliveryTime is the earliest delivery estimate offered after creation.
	MinDeliveryTime = 30 * time.Minute
	// MaxDeliveryTime bounds the estimate from above (exclusive).
	MaxDeliveryTime = 60 * time.Minute
)

// RandomSource yields uniformly distributed values in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Int64N(n int64) int64
}

type globalSource struct{}

func (globalSource) Int64N(n int64) int64 {
	return rand.Int64N(n)
}

// DeliveryEstimator predicts when a new order will reach the customer.
//
// The estimate is creation time plus a uniformly distributed whole number of
// minutes in [MinDeliveryTime, MaxDeliveryTime), so it carries no more precision
// than createdAt. Distance and kitchen load are not taken into account.
//
// Example:
//
//	estimator := services.NewDeliveryEstimator(rand.New(rand.NewPCG(1, 2)))
//	eta := estimator.Estimate(now) // somewhere in [now+30m, now+60m)
type DeliveryEstimator struct {
	random RandomSource
}

// NewDeliveryEstimator builds an estimator drawing offsets from random.
// A nil source falls back to the math/rand/v2 global generator.
func NewDeliveryEstimator(random RandomSource) DeliveryEstimator {
	if random == nil {
		random = globalSource{}
	}
	return DeliveryEstimator{random: random}
}

// Estimate returns the expected delivery instant for an order created at createdAt.
func (e DeliveryEstimator) Estimate(createdAt time.Time) time.Time {
	random := e.random
	if random == nil {
		random = globalSource{}
	}
	window := int64((MaxDeliveryTime - MinDeliveryTime) / time.Minute)
	return createdAt.Add(MinDeliveryTime + time.Duration(random.Int64N(window))*time.Minute)
}
