package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Created ──> Assigned ──> Completed
//
// An order is Created when it is built by the registry, becomes Assigned when a
// vehicle is bound to it on placement and Completed when the delivery is done. A placed
// order is never reassigned: its vehicle is bound for the whole delivery.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the status of an order that has not been placed yet.
	Created

	// Assigned indicates a placed order with a vehicle bound to it.
	Assigned

	// Completed indicates the order was delivered and its vehicle released.
	// This is a final state.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Assigned:  "Assigned",
		Completed: "Completed",
	}
}

// Validate checks if the Status value is one of Created, Assigned or Completed.
func (s Status) Validate() error {
	if s < Created || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Values outside the enum render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the order currently holds a vehicle.
func (s Status) IsActive() bool {
	return s == Assigned
}

// ValidateAssign checks that a vehicle may be bound from the current status.
// Only Created orders can be assigned.
func (s Status) ValidateAssign() error {
	if s != Created {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveVehicle checks the consistency between status and vehicle binding:
// Created orders have no vehicle, Assigned and Completed orders have one.
func (s Status) ValidateCanHaveVehicle(vehicle bool) error {
	if vehicle && s != Assigned && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a vehicle", s.String()),
		)
	}

	if !vehicle && (s == Assigned || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no vehicle", s.String()),
		)
	}

	return nil
}

// Assign transitions Created -> Assigned.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// Complete transitions Assigned -> Completed.
func (s Status) Complete() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
