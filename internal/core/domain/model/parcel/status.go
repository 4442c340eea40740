package parcel

import (
	"fmt"

	"parcelmatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a state machine with defined transitions so parcels follow
// the delivery workflow and never skip or revisit a state, with the single
// exception of cancellation reopening an active parcel.
//
// State transitions:
//
//	Pending ──> Assigned ──> InTransit ──> Delivered
//	   ^            │            │
//	   └────────────┴────────────┘
//	         (cancellation reopens)
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the parcel is waiting to be matched.
	Pending

	// Assigned indicates a delivery was created binding the parcel to a courier.
	Assigned

	// InTransit indicates the courier has picked the parcel up.
	InTransit

	// Delivered indicates the parcel reached its dropoff point.
	// This is a final state with no further transitions allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		InTransit: "in_transit",
		Delivered: "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		InTransit: "in_transit",
		Delivered: "delivered",
	}
}

// StatusFromString parses the persisted wire form of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid parcel status", s))
}

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire form of the status ("pending", "assigned",
// "in_transit", "delivered"), or "unknown" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Assign transitions Pending -> Assigned.
// Only a pending parcel can be matched; any other current state is rejected
// so a concurrent second assignment observes the violation.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to assign", s))
	}
	return Assigned, nil
}

// MarkInTransit transitions Assigned -> InTransit on courier pickup.
func (s Status) MarkInTransit() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to mark in transit", s))
	}
	return InTransit, nil
}

// MarkDelivered transitions InTransit -> Delivered.
func (s Status) MarkDelivered() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to mark delivered", s))
	}
	return Delivered, nil
}

// Reopen transitions Assigned or InTransit back to Pending when the carrying
// delivery is cancelled, making the parcel matchable again.
func (s Status) Reopen() (Status, error) {
	if s != Assigned && s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to reopen", s))
	}
	return Pending, nil
}
