package httpserver

import (
	"errors"
	"io"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"vin-online-shopping/internal/domain"
)

// Deps carries the stores behind each resource route family.
type Deps struct {
	Customers    ResourceService[domain.Customer]
	Products     ResourceService[domain.Product]
	Categories   ResourceService[domain.Category]
	Orders       ResourceService[domain.Order]
	OrderedItems ResourceService[domain.OrderedItem]
	Payments     ResourceService[domain.Payment]

	// Metrics receives the HTTP collectors and backs /metrics. A private
	// registry is used when nil.
	Metrics *prometheus.Registry
	// CORSAllowedOrigins lists allowed origins; empty or "*" allows all.
	CORSAllowedOrigins []string
}

var (
	customersRoute    = resourceMeta{path: "customers", label: "Customer", field: "customer"}
	productsRoute     = resourceMeta{path: "products", label: "Product", field: "product"}
	categoriesRoute   = resourceMeta{path: "categories", label: "Category", field: "category"}
	ordersRoute       = resourceMeta{path: "orders", label: "Order", field: "order"}
	orderedItemsRoute = resourceMeta{path: "orderedItems", label: "Ordered Item", field: "orderedItem"}
	paymentsRoute     = resourceMeta{path: "payments", label: "Payment", field: "payment"}
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if deps.Customers == nil || deps.Products == nil || deps.Categories == nil ||
		deps.Orders == nil || deps.OrderedItems == nil || deps.Payments == nil {
		return nil, errors.New("httpserver: every resource service is required")
	}
	reg := deps.Metrics
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		requestIDMiddleware(),
		gin.LoggerWithConfig(gin.LoggerConfig{Output: logger.Writer(), Formatter: accessLogFormatter}),
		gin.Recovery(),
		corsMiddleware(deps.CORSAllowedOrigins),
		m.middleware(),
	)

	router.GET("/", greetingHandler)
	router.GET("/healthz", healthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	counters := []resourceCounter{
		registerResource(router, customersRoute, deps.Customers, logger),
		registerResource(router, productsRoute, deps.Products, logger),
		registerResource(router, categoriesRoute, deps.Categories, logger),
		registerResource(router, ordersRoute, deps.Orders, logger),
		registerResource(router, orderedItemsRoute, deps.OrderedItems, logger),
		registerResource(router, paymentsRoute, deps.Payments, logger),
	}
	router.GET("/readyz", readyHandler(counters))

	return router, nil
}
