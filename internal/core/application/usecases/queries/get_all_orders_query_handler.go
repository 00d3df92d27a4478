package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetAllOrdersQueryHandler reads the order book.
type GetAllOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetAllOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle returns every placed order, completed ones included. The result is never nil.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	system, release, err := readSystem(ctx, h.uowFactory)
	if err != nil {
		return nil, err
	}
	defer release()

	orders := make([]GetAllOrdersQueryResponse, 0)
	for _, o := range system.Orders() {
		items := make([]OrderItemResponse, 0, len(o.Items()))
		for _, item := range o.Items() {
			items = append(items, OrderItemResponse{Name: item.Name(), Price: item.Price()})
		}

		orders = append(orders, GetAllOrdersQueryResponse{
			ID:            o.ID(),
			UserName:      o.UserName(),
			City:          o.Location().City(),
			Postoffice:    o.Location().Postoffice(),
			Items:         items,
			Amount:        o.Amount(),
			Status:        o.Status().String(),
			VehicleNumber: o.Vehicle().Number(),
			Summary:       o.String(),
		})
	}

	return orders, nil
}
