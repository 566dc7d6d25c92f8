package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"icecream/api"
	httpin "icecream/internal/adapters/in/http"
	"icecream/internal/adapters/out/eventbus"
	"icecream/internal/adapters/out/kafka"
	"icecream/internal/adapters/out/memory"
	"icecream/internal/adapters/out/postgres"
	"icecream/internal/adapters/out/rabbitmq"
	rediscache "icecream/internal/adapters/out/redis"
	"icecream/internal/core/application/usecases/commands"
	"icecream/internal/core/application/usecases/queries"
	"icecream/internal/core/domain/services"
	"icecream/internal/core/ports"
	"icecream/internal/jobs"
	"icecream/internal/pkg/clock"
	"icecream/internal/pkg/metrics"
)

// CompositionRoot owns the long-lived dependencies and builds the use case handlers
// on top of them.
type CompositionRoot struct {
	configs    Config
	logger     logrus.FieldLogger
	clock      clock.Clock
	metrics    *metrics.Metrics
	uowFactory ports.UnitOfWorkFactory
	orderRepo  ports.OrderRepository
	statsCache ports.StatisticsCache
	closers    []func() error
}

// NewCompositionRoot wires storage and the event publishers selected by configs.
// gormDB is required for StoragePostgres and ignored for StorageMemory.
func NewCompositionRoot(
	ctx context.Context,
	configs Config,
	gormDB *gorm.DB,
	logger logrus.FieldLogger,
) (*CompositionRoot, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c := &CompositionRoot{
		configs: configs,
		logger:  logger,
		clock:   clock.System(),
		metrics: metrics.New(registry),
	}

	publisher, err := c.buildPublisher(ctx)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	switch configs.Storage {
	case StorageMemory:
		c.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore(), publisher, logger)
	case StoragePostgres:
		if gormDB == nil {
			_ = c.Close()
			return nil, errors.New("postgres storage selected but no database connection given")
		}
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger)
	default:
		_ = c.Close()
		return nil, fmt.Errorf("unknown storage %q", configs.Storage)
	}

	// Outside a transaction the repository reads and writes the store directly.
	c.orderRepo = c.uowFactory.Create().OrderRepository()

	return c, nil
}

// buildPublisher fans committed order events out to the log and to every configured
// broker, and counts them.
func (c *CompositionRoot) buildPublisher(ctx context.Context) (ports.EventPublisher, error) {
	publishers := []ports.EventPublisher{eventbus.NewLogPublisher(c.logger)}

	if brokers := c.configs.KafkaBrokers(); len(brokers) > 0 {
		p, err := kafka.NewPublisher(brokers, c.configs.KafkaOrderChangedTopic, c.logger)
		if err != nil {
			return nil, err
		}
		publishers = append(publishers, p)
		c.closers = append(c.closers, p.Close)
	}

	if c.configs.RabbitMQURL != "" {
		p, err := rabbitmq.NewPublisher(c.configs.RabbitMQURL, c.configs.RabbitMQExchange, c.logger)
		if err != nil {
			return nil, err
		}
		publishers = append(publishers, p)
		c.closers = append(c.closers, p.Close)
	}

	if c.configs.RedisAddr != "" {
		client := goredis.NewClient(&goredis.Options{Addr: c.configs.RedisAddr})
		c.closers = append(c.closers, client.Close)
		if err := rediscache.Ping(ctx, client); err != nil {
			return nil, err
		}
		cache := rediscache.NewStatisticsCache(client, c.configs.StatisticsCacheTTL)
		c.statsCache = cache
		publishers = append(publishers, cache)
	}

	return c.metrics.InstrumentPublisher(eventbus.NewFanout(publishers...)), nil
}

// Close releases broker connections in reverse order of creation.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(),
		c.configs.OrderPolicy(),
		services.NewDeliveryEstimator(nil),
		c.clock,
	)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateMarkOrderDeliveredCommandHandler() commands.MarkOrderDeliveredCommandHandler {
	return commands.NewMarkOrderDeliveredCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSeedSampleOrdersCommandHandler() commands.SeedSampleOrdersCommandHandler {
	return commands.NewSeedSampleOrdersCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetStalePendingOrdersQueryHandler() queries.GetStalePendingOrdersQueryHandler {
	return queries.NewGetStalePendingOrdersQueryHandler(c.orderRepo, c.clock)
}

func (c *CompositionRoot) CreateGetOrderStatisticsQueryHandler() queries.GetOrderStatisticsQueryHandler {
	return queries.NewGetOrderStatisticsQueryHandler(c.orderRepo, c.statsCache, c.logger)
}

// CreateHTTPServer builds the REST handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus:    c.CreateUpdateOrderStatusCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),
		MarkOrderDelivered:   c.CreateMarkOrderDeliveredCommandHandler(),
		GetAllOrders:         queries.NewGetAllOrdersQueryHandler(c.orderRepo),
		GetOrderByID:         queries.NewGetOrderByIDQueryHandler(c.orderRepo),
		GetByCustomerEmail:   queries.NewGetOrdersByCustomerEmailQueryHandler(c.orderRepo),
		GetByCustomerPhone:   queries.NewGetOrdersByCustomerPhoneQueryHandler(c.orderRepo),
		GetByStatus:          queries.NewGetOrdersByStatusQueryHandler(c.orderRepo),
		GetRecentOrders:      queries.NewGetRecentOrdersQueryHandler(c.orderRepo, c.clock),
		SearchByCustomerName: queries.NewSearchOrdersByCustomerNameQueryHandler(c.orderRepo),
		SearchByAddress:      queries.NewSearchOrdersByDeliveryAddressQueryHandler(c.orderRepo),
		GetCreatedBetween:    queries.NewGetOrdersCreatedBetweenQueryHandler(c.orderRepo),
		GetStalePending:      c.CreateGetStalePendingOrdersQueryHandler(),
		GetOrderStatistics:   c.CreateGetOrderStatisticsQueryHandler(),
	}, c.logger)
}

// CreateRouter builds the echo instance serving the API, health, metrics and docs.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	doc, err := api.Load()
	if err != nil {
		return nil, err
	}
	return httpin.NewRouter(c.CreateHTTPServer(), doc, c.metrics, c.logger)
}

// CreateJobManager builds the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	staleJob, err := jobs.NewStalePendingOrdersJob(
		c.CreateGetStalePendingOrdersQueryHandler(),
		c.configs.StalePendingAfter,
		c.configs.StalePendingSchedule,
		c.metrics,
		c.logger,
	)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(staleJob), nil
}

// SeedSampleData inserts the sample orders into an empty store.
func (c *CompositionRoot) SeedSampleData(ctx context.Context) (int, error) {
	h := c.CreateSeedSampleOrdersCommandHandler()
	return h.Handle(ctx, commands.NewSeedSampleOrdersCommand())
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
