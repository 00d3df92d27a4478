package queries

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var (
	ErrOrderNotFound = errors.New("no such order")
)

// TrackOrderQueryHandler looks orders up in the registry.
type TrackOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewTrackOrderQueryHandler(uowFactory ports.UnitOfWorkFactory) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{uowFactory: uowFactory}
}

// Handle returns the tracking data of a placed order, or ErrOrderNotFound.
// Orders rejected for lack of a vehicle were never placed and are not found.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	system, release, err := readSystem(ctx, h.uowFactory)
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}
	defer release()

	tracking, err := system.TrackOrder(query.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return TrackOrderQueryResponse{}, fmt.Errorf("%w: %w", ErrOrderNotFound, err)
	}
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	return TrackOrderQueryResponse{
		OrderID: tracking.OrderID,
		City:    tracking.City,
		Amount:  tracking.Amount,
	}, nil
}
