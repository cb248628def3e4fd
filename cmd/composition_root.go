package cmd

import (
	"fmt"
	"log/slog"

	httpadapter "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/memory"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
	"laundry/internal/jobs"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	uowFactory ports.UnitOfWorkFactory
	reader     queries.OrderReader
	rate       kernel.Money
	logger     *slog.Logger
}

// NewCompositionRoot opens the configured store and prepares the handler
// factories. The postgres store is migrated before use.
func NewCompositionRoot(configs Config, logger *slog.Logger) (CompositionRoot, error) {
	rate, err := kernel.MoneyFromString(configs.DeliveryRate)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid DELIVERY_RATE: %w", err)
	}

	var uowFactory ports.UnitOfWorkFactory
	switch configs.Storage {
	case StorageMemory:
		uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore())
	case StoragePostgres, "":
		if err := postgres.Migrate(configs.DatabaseURL()); err != nil {
			return CompositionRoot{}, err
		}
		gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("failed to connect database: %w", err)
		}
		uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	default:
		return CompositionRoot{}, fmt.Errorf("unknown STORAGE %q", configs.Storage)
	}

	return CompositionRoot{
		configs:    configs,
		uowFactory: uowFactory,
		reader:     uowFactory.Create().OrderRepository(),
		rate:       rate,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), nil)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory(), commands.TransitionPolicy{
		Timeout: c.configs.TransitionTimeout,
		Retries: c.configs.TransitionRetries,
	})
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateListWorklistQueryHandler() queries.ListWorklistQueryHandler {
	return queries.NewListWorklistQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateComputeMetricsQueryHandler() queries.ComputeMetricsQueryHandler {
	return queries.NewComputeMetricsQueryHandler(c.reader, queries.MetricsDefaults{
		Rate:  c.rate,
		Weeks: c.configs.MetricsWeeks,
	})
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateTransitionOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListWorklistQueryHandler(),
		c.CreateComputeMetricsQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateComputeMetricsQueryHandler(), c.configs.MetricsReportSchedule, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
