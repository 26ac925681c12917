package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	cartapp "github.com/dwikikusuma/shoping-checkout/internal/cart/app"

	catalogapp "github.com/dwikikusuma/shoping-checkout/internal/catalog/app"
	catalogmem "github.com/dwikikusuma/shoping-checkout/internal/catalog/infra/memory"

	checkoutapp "github.com/dwikikusuma/shoping-checkout/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/shoping-checkout/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/shoping-checkout/internal/checkout/infra/console"
	"github.com/dwikikusuma/shoping-checkout/internal/checkout/metrics"

	customerapp "github.com/dwikikusuma/shoping-checkout/internal/customer/app"
	customermem "github.com/dwikikusuma/shoping-checkout/internal/customer/infra/memory"

	orderapp "github.com/dwikikusuma/shoping-checkout/internal/order/app"
	ordermem "github.com/dwikikusuma/shoping-checkout/internal/order/infra/memory"

	shippingapp "github.com/dwikikusuma/shoping-checkout/internal/shipping/app"

	"github.com/dwikikusuma/shoping-checkout/internal/scenario"
	"github.com/dwikikusuma/shoping-checkout/pkg/apperror"
	"github.com/dwikikusuma/shoping-checkout/pkg/config"
	"github.com/dwikikusuma/shoping-checkout/pkg/logger"
	"github.com/dwikikusuma/shoping-checkout/pkg/shutdown"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	exitOK           = 0
	exitFailed       = 1
	exitInvalidArg   = 2
	exitInvalidState = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	fs.SetOutput(stderr)
	scenarioPath := fs.String("scenario", "", "path to a scenario YAML file (default: built-in demo)")
	if err := fs.Parse(args); err != nil {
		return exitInvalidArg
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitFailed
	}
	log := logger.New(logger.Options{
		Service:   "checkout",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: cfg.AddSource,
		Output:    stderr,
	})

	ctx, cancel := shutdown.WithSignals(context.Background(), log)
	defer cancel()

	path := *scenarioPath
	if path == "" {
		path = cfg.ScenarioPath
	}
	sc := scenario.Default()
	if path != "" {
		if sc, err = scenario.Load(path); err != nil {
			log.Error("scenario load failed", slog.Any("err", err))
			return exitCode(err)
		}
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	printer := console.NewPrinter(stdout)

	// Catalog, customers, carts
	catalogSvc := catalogapp.NewService(catalogmem.NewProductRepo())
	customerSvc := customerapp.NewService(customermem.NewCustomerRepo())
	cartSvc := cartapp.NewService(customerSvc, catalogSvc)

	// Orders
	orderSvc := orderapp.NewService(ordermem.NewOrderRepo())

	// Checkout (adapters)
	reporter := checkoutadapter.NewMultiReporter(printer, checkoutadapter.NewOrderRecorder(orderSvc))
	checkoutSvc := checkoutapp.NewService(
		shippingapp.NewService(printer),
		reporter,
		checkoutapp.WithLogger(log),
		checkoutapp.WithRecorder(m),
	)

	customer, err := scenario.Build(ctx, sc, scenario.Deps{
		Catalog:   catalogSvc,
		Customers: customerSvc,
		Carts:     cartSvc,
	})
	if err != nil {
		log.Error("scenario build failed", slog.Any("err", err))
		return exitCode(err)
	}

	receipt, err := checkoutSvc.ProcessCheckout(ctx, customer)
	if err != nil && !errors.Is(err, checkoutapp.ErrReportFailed) {
		fmt.Fprintf(stderr, "checkout failed: %v\n", err)
		dumpMetrics(log, cfg.MetricsTextfile, reg)
		return exitCode(err)
	}

	if orders, lerr := orderSvc.ListOrders(ctx, receipt.CustomerID); lerr == nil {
		log.Info("orders recorded", slog.Int("count", len(orders)))
	}
	dumpMetrics(log, cfg.MetricsTextfile, reg)

	return exitCode(err)
}

func dumpMetrics(log *slog.Logger, path string, reg *prometheus.Registry) {
	if path == "" {
		return
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		log.Warn("metrics textfile write failed", slog.String("path", path), slog.Any("err", err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, apperror.ErrInvalidArgument):
		return exitInvalidArg
	case errors.Is(err, apperror.ErrInvalidState):
		return exitInvalidState
	default:
		return exitFailed
	}
}
