package jobs

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryCompletionJob completes the oldest active delivery on a cron schedule, which
// returns its vehicle to the fleet.
type DeliveryCompletionJob struct {
	handler  commands.CompleteOldestDeliveryCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryCompletionJob creates the job. The schedule is a cron spec with a leading
// seconds field, e.g. "*/30 * * * * *".
func NewDeliveryCompletionJob(
	handler commands.CompleteOldestDeliveryCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DeliveryCompletionJob {
	return &DeliveryCompletionJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_completion_job"),
	}
}

// Start schedules the job. Returns an error for an invalid schedule.
func (j *DeliveryCompletionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.Run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery completion job started", "schedule", j.schedule)
	return nil
}

// Run completes one delivery. Idle fleets are not an error.
func (j *DeliveryCompletionJob) Run() {
	ctx := context.Background()
	cmd := commands.NewCompleteOldestDeliveryCommand()

	orderID, err := j.handler.Handle(ctx, cmd)
	if errors.Is(err, commands.ErrNoActiveDelivery) {
		return
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery completion job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Delivery completed", "orderId", orderID)
}

// Stop stops the scheduler and waits for a running completion to finish.
func (j *DeliveryCompletionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery completion job stopped")
}
