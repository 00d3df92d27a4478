package cmd

import (
	"log/slog"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/in/menu"
	"logistics/internal/adapters/out/memory"
	"logistics/internal/adapters/out/metrics"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/logistics"
	"logistics/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory *memory.UnitOfWorkFactory
	registry   *prometheus.Registry
	metrics    *metrics.PromDispatchMetrics
}

// NewCompositionRoot wires one session: a registry over fleet, its in-memory store and
// a private Prometheus registry.
func NewCompositionRoot(config Config, fleet []int, logger *slog.Logger) (*CompositionRoot, error) {
	system, err := logistics.NewSystemWithFleet(fleet...)
	if err != nil {
		return nil, err
	}

	store, err := memory.NewStore(system)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	dispatchMetrics, err := metrics.NewPromDispatchMetrics(registry)
	if err != nil {
		return nil, err
	}
	dispatchMetrics.FleetChanged(len(fleet), 0)

	return &CompositionRoot{
		config:     config,
		logger:     logger.With("session", system.SessionID().String()),
		uowFactory: memory.NewUnitOfWorkFactory(store),
		registry:   registry,
		metrics:    dispatchMetrics,
	}, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.commandUoWFactory(), c.metrics)
}

func (c *CompositionRoot) CreateAddVehicleCommandHandler() commands.AddVehicleCommandHandler {
	return commands.NewAddVehicleCommandHandler(c.commandUoWFactory(), c.metrics)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.commandUoWFactory(), c.metrics)
}

func (c *CompositionRoot) CreateCompleteOldestDeliveryCommandHandler() commands.CompleteOldestDeliveryCommandHandler {
	return commands.NewCompleteOldestDeliveryCommandHandler(c.commandUoWFactory(), c.metrics)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetAllVehiclesQueryHandler() queries.GetAllVehiclesQueryHandler {
	return queries.NewGetAllVehiclesQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.uowFactory)
}

// CreateRouter builds the HTTP API with /metrics backed by this session's registry.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateAddVehicleCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		c.CreateTrackOrderQueryHandler(),
		c.CreateGetAllVehiclesQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.logger,
	)
	return httpin.NewRouter(server, c.registry, c.logger)
}

func (c *CompositionRoot) CreateMenu(console *menu.Console) *menu.Menu {
	return menu.New(
		console,
		c.CreatePlaceOrderCommandHandler(),
		c.CreateAddVehicleCommandHandler(),
		c.CreateTrackOrderQueryHandler(),
		c.CreateGetAllVehiclesQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCompleteOldestDeliveryCommandHandler(),
		c.config.DeliveryCompletionSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
