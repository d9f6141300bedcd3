package cmd

import (
	"log/slog"

	"deliverytrack/internal/adapters/in/http"
	"deliverytrack/internal/adapters/out/openroute"
	"deliverytrack/internal/adapters/out/postgres"
	"deliverytrack/internal/core/application/usecases/commands"
	"deliverytrack/internal/core/application/usecases/queries"
	"deliverytrack/internal/core/domain/services"
	"deliverytrack/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, domain services and use case handlers.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	estimator  services.RouteEstimator
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from the given configuration
// and database connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	routingClient := openroute.NewClient(
		config.OpenRouteBaseURL, config.OpenRouteAPIKey, config.OpenRouteTimeout)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		estimator:  services.NewRouteEstimator(routingClient, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory(), c.estimator, c.logger)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreatePickUpDeliveryCommandHandler() commands.PickUpDeliveryCommandHandler {
	return commands.NewPickUpDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateStartTransitCommandHandler() commands.StartTransitCommandHandler {
	return commands.NewStartTransitCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	return commands.NewCancelDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateBackfillRoutesCommandHandler() commands.BackfillRoutesCommandHandler {
	return commands.NewBackfillRoutesCommandHandler(c.deliveryUoWFactory(), c.estimator, c.logger)
}

func (c *CompositionRoot) CreateGetDeliveryByIDQueryHandler() queries.GetDeliveryByIDQueryHandler {
	return queries.NewGetDeliveryByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryByOrderIDQueryHandler() queries.GetDeliveryByOrderIDQueryHandler {
	return queries.NewGetDeliveryByOrderIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesByDriverQueryHandler() queries.GetDeliveriesByDriverQueryHandler {
	return queries.NewGetDeliveriesByDriverQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesByStatusQueryHandler() queries.GetDeliveriesByStatusQueryHandler {
	return queries.NewGetDeliveriesByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDeliveriesQueryHandler() queries.GetAllDeliveriesQueryHandler {
	return queries.NewGetAllDeliveriesQueryHandler(c.gormDB)
}

// CreateServer assembles the HTTP server with every handler wired in.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreatePickUpDeliveryCommandHandler(),
		c.CreateStartTransitCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		c.CreateCancelDeliveryCommandHandler(),
		c.CreateGetDeliveryByIDQueryHandler(),
		c.CreateGetDeliveryByOrderIDQueryHandler(),
		c.CreateGetDeliveriesByDriverQueryHandler(),
		c.CreateGetDeliveriesByStatusQueryHandler(),
		c.CreateGetAllDeliveriesQueryHandler(),
	)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateBackfillRoutesCommandHandler(),
		c.config.RouteBackfillCron,
		c.logger,
	)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
