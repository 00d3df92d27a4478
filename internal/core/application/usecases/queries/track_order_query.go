// Package queries contains read operations over the dispatch registry.
// Queries return read models shaped for the menu and the HTTP API.
package queries

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery asks where an order goes and what it costs.
//
// Example:
//
//	query, _ := NewTrackOrderQuery(0)
//	tracking, err := handler.Handle(ctx, query)
//	if errors.Is(err, ErrOrderNotFound) {
//	    fmt.Println("No such order.")
//	}
//	fmt.Printf("Your order #%d is sent to %s. Total price: %s UAH.\n",
//	    tracking.OrderID, tracking.City, tracking.Amount)
type TrackOrderQuery struct {
	orderID int

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery rejects negative ids.
func NewTrackOrderQuery(orderID int) (TrackOrderQuery, error) {
	if orderID < 0 {
		return TrackOrderQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"orderID", fmt.Errorf("%d is negative", orderID),
		)
	}

	return TrackOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

func (q TrackOrderQuery) OrderID() int {
	return q.orderID
}

// TrackOrderQueryResponse is the tracking read model.
type TrackOrderQueryResponse struct {
	OrderID int
	City    string
	Amount  kernel.Price
}
