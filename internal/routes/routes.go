package routes

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/ride-mitra/ride_mitra/internal/car"
	"github.com/ride-mitra/ride_mitra/internal/config"
	"github.com/ride-mitra/ride_mitra/internal/customer"
	"github.com/ride-mitra/ride_mitra/internal/feedback"
	"github.com/ride-mitra/ride_mitra/internal/metrics"
	"github.com/ride-mitra/ride_mitra/internal/middleware"
	"github.com/ride-mitra/ride_mitra/internal/notification"
	"github.com/ride-mitra/ride_mitra/internal/rides"
	"github.com/ride-mitra/ride_mitra/internal/vendor"
	"github.com/ride-mitra/ride_mitra/internal/wallet"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// walletDirectory adapts the vendor service to the lookup the wallet
// ledger needs for gating wallet creation.
type walletDirectory struct {
	vendors *vendor.Service
}

func (d walletDirectory) Lookup(ctx context.Context, phone string) (wallet.VendorInfo, error) {
	v, err := d.vendors.Get(ctx, phone)
	if err != nil {
		return wallet.VendorInfo{}, err
	}
	return wallet.VendorInfo{Name: v.Name, Phone: v.Phone, Active: v.Active}, nil
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	// Health and metrics
	RegisterHealthRoutes(app, d)
	app.Get("/metrics", metrics.Handler())

	// Stores: PostgreSQL when a pool is wired, in-memory otherwise.
	var (
		vendorRepo   vendor.Repository
		customerRepo customer.Repository
		carRepo      car.Repository
		feedbackRepo feedback.Repository
		rideRepo     rides.Repository
		accountStore wallet.AccountStore
		paymentStore wallet.PaymentStore
	)
	if d.DB != nil {
		vendorRepo = vendor.NewPostgresRepository(d.DB)
		customerRepo = customer.NewPostgresRepository(d.DB)
		carRepo = car.NewPostgresRepository(d.DB)
		feedbackRepo = feedback.NewPostgresRepository(d.DB)
		rideRepo = rides.NewPostgresRepository(d.DB)
		accountStore = wallet.NewPostgresAccountStore(d.DB)
		paymentStore = wallet.NewPostgresPaymentStore(d.DB)
	} else {
		vendorRepo = vendor.NewMemoryRepository()
		customerRepo = customer.NewMemoryRepository()
		carRepo = car.NewMemoryRepository()
		feedbackRepo = feedback.NewMemoryRepository()
		rideRepo = rides.NewMemoryRepository()
		accountStore = wallet.NewMemoryAccountStore()
		paymentStore = wallet.NewMemoryPaymentStore()
	}

	// Services
	vendorSvc := vendor.NewService(vendorRepo)
	customerSvc := customer.NewService(customerRepo)
	carSvc := car.NewService(carRepo, vendorSvc)
	feedbackSvc := feedback.NewService(feedbackRepo)
	notifier := notification.NewLoggerNotifier(d.Logger)
	walletSvc := wallet.NewService(accountStore, paymentStore, walletDirectory{vendors: vendorSvc},
		wallet.WithNotifier(notifier),
		wallet.WithLogger(d.Logger),
		wallet.WithRetryLimit(d.Cfg.WalletUpdateRetries),
	)
	rideSvc := rides.NewService(rideRepo, walletSvc, d.Logger)

	// Handlers
	vendorHandler := vendor.NewHandler(vendorSvc)
	customerHandler := customer.NewHandler(customerSvc)
	carHandler := car.NewHandler(carSvc)
	feedbackHandler := feedback.NewHandler(feedbackSvc)
	walletHandler := wallet.NewHandler(walletSvc)
	rideHandler := rides.NewHandler(rideSvc)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterVendorRoutes(api, vendorHandler)
	RegisterCustomerRoutes(api, customerHandler)
	RegisterCarRoutes(api, carHandler)
	RegisterFeedbackRoutes(api, feedbackHandler)
	RegisterWalletRoutes(api, walletHandler)
	RegisterRideRoutes(api, rideHandler)

	return nil
}
