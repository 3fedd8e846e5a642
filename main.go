package main

//go:generate swag init

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/shopkeeper/payables/config"
	"github.com/shopkeeper/payables/db"
	_ "github.com/shopkeeper/payables/docs"
	"github.com/shopkeeper/payables/handlers"
)

// @title           Wholesale Payables API
// @version         1.0.0
// @description     API for tracking wholesale purchase bills, payments against them, issued checks, and payment due reminders.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.basic  BasicAuth

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	// Configure structured logging
	level := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Run migrations
	if err := db.Migrate(database); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Set shared DB for handlers
	handlers.DB = database
	handlers.DefaultReminderDays = cfg.ReminderDays

	// Router setup
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// API routes with basic auth
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(handlers.BasicAuth(cfg.AuthUser, cfg.AuthPass))

		// Vendors
		r.Get("/vendors", handlers.ListVendors)
		r.Post("/vendors", handlers.CreateVendor)
		r.Get("/vendors/{id}", handlers.GetVendor)
		r.Put("/vendors/{id}", handlers.UpdateVendor)

		// Purchases
		r.Get("/purchases", handlers.ListPurchases)
		r.Post("/purchases", handlers.CreatePurchase)
		r.Get("/purchases/{id}", handlers.GetPurchase)
		r.Get("/purchases/{id}/payments", handlers.ListPurchasePayments)
		r.Post("/purchases/{id}/payments", handlers.CreatePayment)

		// Payments
		r.Get("/payments/{id}", handlers.GetPayment)
		r.Put("/payments/{id}", handlers.UpdatePayment)
		r.Delete("/payments/{id}", handlers.DeletePayment)

		// Checks
		r.Get("/checks", handlers.ListChecks)
		r.Post("/checks", handlers.CreateCheck)
		r.Get("/checks/{id}", handlers.GetCheck)
		r.Put("/checks/{id}/status", handlers.UpdateCheckStatus)
		r.Delete("/checks/{id}", handlers.DeleteCheck)

		// Dashboard
		r.Get("/dashboard", handlers.GetDashboard)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("server starting", "address", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
