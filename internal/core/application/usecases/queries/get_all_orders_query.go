package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery lists the order book in placement order.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderItemResponse is one item of an order.
type OrderItemResponse struct {
	Name  string
	Price kernel.Price
}

// GetAllOrdersQueryResponse is the listing read model of an order.
//
// Summary is the one-line description used by the menu, e.g.
// "The order #0 by Bohdan to city Lviv, postoffice 2. The item is Arduino (200 UAH)."
type GetAllOrdersQueryResponse struct {
	ID            int
	UserName      string
	City          string
	Postoffice    int
	Items         []OrderItemResponse
	Amount        kernel.Price
	Status        string
	VehicleNumber int
	Summary       string
}
