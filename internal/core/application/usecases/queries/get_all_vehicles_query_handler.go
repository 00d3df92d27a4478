package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetAllVehiclesQueryHandler reads the fleet.
//
// Example:
//
//	vehicles, err := handler.Handle(ctx, NewGetAllVehiclesQuery())
//	for _, v := range vehicles {
//	    fmt.Printf("%d available=%t\n", v.Number, v.Available)
//	}
type GetAllVehiclesQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetAllVehiclesQueryHandler(uowFactory ports.UnitOfWorkFactory) GetAllVehiclesQueryHandler {
	return GetAllVehiclesQueryHandler{uowFactory: uowFactory}
}

// Handle returns the vehicles in fleet order. The result is never nil.
func (h GetAllVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAllVehiclesQuery,
) ([]GetAllVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	system, release, err := readSystem(ctx, h.uowFactory)
	if err != nil {
		return nil, err
	}
	defer release()

	vehicles := make([]GetAllVehiclesQueryResponse, 0)
	for _, v := range system.Vehicles() {
		response := GetAllVehiclesQueryResponse{
			Number:    v.Number(),
			Available: v.IsAvailable(),
		}
		if orderID, ok := v.OrderID(); ok {
			response.OrderID = &orderID
		}
		vehicles = append(vehicles, response)
	}

	return vehicles, nil
}
