package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/shopspring/decimal"

	"github.com/LazarusAA/miniapp-monorepo/internal/adapter/handler"
	"github.com/LazarusAA/miniapp-monorepo/internal/adapter/middleware"
	"github.com/LazarusAA/miniapp-monorepo/internal/adapter/storage"
	"github.com/LazarusAA/miniapp-monorepo/internal/core/config"
	"github.com/LazarusAA/miniapp-monorepo/internal/core/payment"
	"github.com/LazarusAA/miniapp-monorepo/internal/core/session"
)

func main() {
	// 1. Load Config
	cfg := config.LoadConfig()

	// 2. Setup Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Amounts go over the wire as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true

	// 3. Connect to Database
	dbPool, err := storage.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		slog.Error("❌ Database connection failed", "error", err)
		os.Exit(1)
	}
	// Closed manually on shutdown, after the server stops accepting work.

	// 4. Setup Repos, Services & Handlers
	userRepo := storage.NewUserRepository(dbPool)
	paymentRepo := storage.NewPaymentRepository(dbPool)
	priceRepo := storage.NewPriceRepository(dbPool)

	sessions := session.NewProvider(cfg.SessionSecret)
	issuer := payment.NewIssuer(userRepo, paymentRepo)

	paymentHandler := &handler.PaymentHandler{Issuer: issuer}
	priceHandler := &handler.PriceHandler{Prices: priceRepo}
	healthHandler := &handler.HealthHandler{DB: dbPool}

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})

	app.Use(cors.New())

	// 6. Routes
	app.Get("/healthz", healthHandler.Healthz)
	app.Get("/pay-amount", priceHandler.GetPayAmount)
	app.Post("/initiate-payment", middleware.Protected(sessions), paymentHandler.InitiatePayment)

	// Graceful shutdown: finish in-flight initiations before closing the pool
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("🚀 Server starting", "env", cfg.Env, "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
		}
	}()

	<-stop
	slog.Info("🛑 Shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	dbPool.Close()
	slog.Info("✅ Database connection closed")

	slog.Info("👋 Server exited successfully")
}
