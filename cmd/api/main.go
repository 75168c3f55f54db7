package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"vin-online-shopping/internal/config"
	"vin-online-shopping/internal/domain"
	"vin-online-shopping/internal/httpserver"
	"vin-online-shopping/internal/repository/memory"
	"vin-online-shopping/internal/seed"
	"vin-online-shopping/internal/service/resource"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	fixtures := seed.Default(time.Now())
	if cfg.SeedFile != "" {
		f, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			logger.Fatalf("load seed: %v", err)
		}
		fixtures = f
		logger.Printf("seeded from %s", cfg.SeedFile)
	}

	customerService := resource.New[domain.Customer](memory.NewCollection("customer", fixtures.Customers, logger), domain.CustomerSchema, logger)
	productService := resource.New[domain.Product](memory.NewCollection("product", fixtures.Products, logger), domain.ProductSchema, logger)
	categoryService := resource.New[domain.Category](memory.NewCollection("category", fixtures.Categories, logger), domain.CategorySchema, logger)
	orderService := resource.New[domain.Order](memory.NewCollection("order", fixtures.Orders, logger), domain.OrderSchema, logger)
	orderedItemService := resource.New[domain.OrderedItem](memory.NewCollection("orderedItem", fixtures.OrderedItems, logger), domain.OrderedItemSchema, logger)
	paymentService := resource.New[domain.Payment](memory.NewCollection("payment", fixtures.Payments, logger), domain.PaymentSchema, logger)

	if cfg.ImportDir != "" {
		ctx := context.Background()
		steps := []func() error{
			func() error {
				return importCSV[domain.Customer](ctx, cfg.ImportDir, "customers", customerService, logger)
			},
			func() error { return importCSV[domain.Product](ctx, cfg.ImportDir, "products", productService, logger) },
			func() error {
				return importCSV[domain.Category](ctx, cfg.ImportDir, "categories", categoryService, logger)
			},
			func() error { return importCSV[domain.Order](ctx, cfg.ImportDir, "orders", orderService, logger) },
			func() error {
				return importCSV[domain.OrderedItem](ctx, cfg.ImportDir, "orderedItems", orderedItemService, logger)
			},
			func() error { return importCSV[domain.Payment](ctx, cfg.ImportDir, "payments", paymentService, logger) },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				logger.Fatalf("import: %v", err)
			}
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Customers:          customerService,
		Products:           productService,
		Categories:         categoryService,
		Orders:             orderService,
		OrderedItems:       orderedItemService,
		Payments:           paymentService,
		Metrics:            registry,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
