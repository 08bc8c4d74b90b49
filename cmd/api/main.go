package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"moto_workshop/internal/adapter/http/handlers"
	"moto_workshop/internal/adapter/http/routes"
	"moto_workshop/internal/adapter/persistence/postgres"
	"moto_workshop/internal/adapter/persistence/repository"
	"moto_workshop/internal/domain/scheduling"
	"moto_workshop/internal/infrastructure/cache"
	"moto_workshop/internal/infrastructure/config"
	"moto_workshop/internal/infrastructure/database"
	"moto_workshop/internal/infrastructure/logger"
	"moto_workshop/internal/infrastructure/payments"
	"moto_workshop/internal/usecase"
	"moto_workshop/internal/usecase/interfaces"
)

// @title           Moto Workshop API
// @version         1.0
// @description     Weekly mechanic scheduling, work orders and GST invoicing for a motorcycle workshop.

// @host localhost:8080

// @BasePath  /v1

const shutdownTimeout = 10 * time.Second

type repositories struct {
	workOrders interfaces.IWorkOrderRepository
	mechanics  interfaces.IMechanicRepository
	customers  interfaces.ICustomerRepository
	invoices   interfaces.IInvoiceRepository
	payments   interfaces.IInvoicePaymentRepository
	closer     func() error
}

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	loc, err := cfg.Location()
	if err != nil {
		zl.Fatal("invalid workshop timezone", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to open storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer func() { _ = repos.closer() }()

	// Interfaces stay nil unless Redis is configured.
	var (
		boardCache interfaces.IBoardCache
		events     interfaces.IScheduleEventPublisher
	)
	if cfg.Redis.URL != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			zl.Fatal("failed to connect redis", zap.Error(err))
		}
		defer func(rdb *redis.Client) { _ = rdb.Close() }(rdb)
		boardCache = cache.NewBoardCache(rdb, cfg.Redis.BoardRefreshInterval, loc)
		events = cache.NewScheduleStream(rdb, cfg.Redis.ScheduleStream, cfg.Redis.StreamMaxLen)
		zl.Info("redis board cache enabled", zap.Duration("ttl", cfg.Redis.BoardRefreshInterval))
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments, zl)
	if err != nil {
		zl.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	clock := scheduling.SystemClock{Location: loc}
	scheduleUseCase := usecase.NewScheduleUseCase(repos.workOrders, repos.mechanics, repos.customers, boardCache, events, clock, loc, zl)
	workOrderUseCase := usecase.NewWorkOrderUseCase(repos.workOrders, boardCache, zl)
	mechanicUseCase := usecase.NewMechanicUseCase(repos.mechanics, boardCache, cfg.Workshop.DefaultDailyHoursGoal)
	invoiceUseCase := usecase.NewInvoiceUseCase(repos.invoices, repos.workOrders, loc)
	paymentUseCase := usecase.NewInvoicePaymentUseCase(repos.payments, repos.invoices, gateway, usecase.PaymentOptions{
		Mock:            cfg.Payments.MockEnabled(),
		Sandbox:         cfg.Payments.Sandbox(),
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
	}, zl)

	router := routes.NewRouter(routes.Handlers{
		Schedule:       handlers.NewScheduleHandler(scheduleUseCase, loc, clock),
		WorkOrders:     handlers.NewWorkOrderHandler(workOrderUseCase),
		Mechanics:      handlers.NewMechanicHandler(mechanicUseCase),
		Invoices:       handlers.NewInvoiceHandler(invoiceUseCase, loc),
		InvoicePayment: handlers.NewInvoicePaymentHandler(paymentUseCase, cfg.Payments.MockEnabled(), zl),
	}, zl, cfg.Server.Swagger)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("http server listening", zap.String("addr", srv.Addr), zap.String("timezone", loc.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to startup the application", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}

func openRepositories(ctx context.Context, cfg *config.Config, zl *zap.Logger) (repositories, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := database.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			return repositories{}, err
		}
		if cfg.Postgres.Migrate {
			if err := database.RunMigrations(db, zl); err != nil {
				_ = db.Close()
				return repositories{}, err
			}
		}
		return postgresRepositories(db), nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return repositories{}, err
		}
		t := cfg.DynamoDB
		return repositories{
			workOrders: repository.NewWorkOrderDynamoRepository(ddb, t.WorkOrdersTable),
			mechanics:  repository.NewMechanicDynamoRepository(ddb, t.MechanicsTable),
			customers:  repository.NewCustomerDynamoRepository(ddb, t.CustomersTable),
			invoices:   repository.NewInvoiceDynamoRepository(ddb, t.InvoicesTable),
			payments:   repository.NewInvoicePaymentDynamoRepository(ddb, t.PaymentsTable, t.PaymentsInvoiceIx),
			closer:     func() error { return nil },
		}, nil
	}
}

func postgresRepositories(db *sql.DB) repositories {
	return repositories{
		workOrders: postgres.NewWorkOrderRepository(db),
		mechanics:  postgres.NewMechanicRepository(db),
		customers:  postgres.NewCustomerRepository(db),
		invoices:   postgres.NewInvoiceRepository(db),
		payments:   postgres.NewInvoicePaymentRepository(db),
		closer:     db.Close,
	}
}
