package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var (
	ErrGetAllVehiclesQueryIsNotConstructed = errors.New(
		"GetAllVehiclesQuery must be created via NewGetAllVehiclesQuery constructor",
	)
)

// GetAllVehiclesQuery lists the fleet in selection order.
type GetAllVehiclesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllVehiclesQuery() GetAllVehiclesQuery {
	return GetAllVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVehiclesQueryIsNotConstructed)
}

// GetAllVehiclesQueryResponse describes one vehicle. OrderID is set while the vehicle
// carries an order.
type GetAllVehiclesQueryResponse struct {
	Number    int
	Available bool
	OrderID   *int
}
