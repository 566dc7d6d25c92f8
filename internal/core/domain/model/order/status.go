package order

import (
	"fmt"
	"strings"

	"icecream/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// Typical progression:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> OutForDelivery ──> Delivered
//	   │                                                                    │
//	   └──> Cancelled                                           Refunded <──┘
//
// The progression is descriptive only. Status changes are accepted from any status to
// any status; callers that need a stricter workflow must enforce it themselves.
type Status int

const (
	// Unknown is the zero value and never a valid status.
	Unknown Status = iota

	// Pending is the status of every newly created order.
	Pending

	Confirmed
	Preparing
	Ready
	OutForDelivery
	Delivered
	Cancelled
	Refunded
)

type statusInfo struct {
	name        string
	description string
}

func getStatusInfo() map[Status]statusInfo {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]statusInfo{
		Pending:        {"PENDING", "Order received, processing"},
		Confirmed:      {"CONFIRMED", "Order confirmed, preparing"},
		Preparing:      {"PREPARING", "Ice cream being prepared"},
		Ready:          {"READY", "Order ready for pickup/delivery"},
		OutForDelivery: {"OUT_FOR_DELIVERY", "Order out for delivery"},
		Delivered:      {"DELIVERED", "Order delivered successfully"},
		Cancelled:      {"CANCELLED", "Order cancelled"},
		Refunded:       {"REFUNDED", "Order refunded"},
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, Ready, OutForDelivery, Delivered, Cancelled, Refunded}
}

// ParseStatus resolves a status name such as "OUT_FOR_DELIVERY". Matching ignores case
// and surrounding whitespace.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, info := range getStatusInfo() {
		if info.name == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getStatusInfo()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, for example "PENDING", or "UNKNOWN".
func (s Status) String() string {
	if info, ok := getStatusInfo()[s]; ok {
		return info.name
	}
	return "UNKNOWN"
}

// Description returns the customer-facing explanation of the status.
func (s Status) Description() string {
	if info, ok := getStatusInfo()[s]; ok {
		return info.description
	}
	return ""
}

// IsFinal reports whether the order has left the active pipeline.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled || s == Refunded
}
