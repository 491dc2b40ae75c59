package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/valyala/fasthttp"

	"payment-engine/internal/handler"
	"payment-engine/internal/metrics"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "payment-engine"})

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "err", err)
	}
	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(level)
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	registry := prometheus.NewRegistry()
	h := handler.New(logger, metrics.New(registry))
	metricsHandler := metrics.Handler(registry)

	router := func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case "/payment-instructions":
			h.HandlePaymentInstructions(ctx)
		case "/healthz":
			h.HandleHealth(ctx)
		case "/metrics":
			metricsHandler(ctx)
		default:
			ctx.Error("Not found", fasthttp.StatusNotFound)
		}
	}

	logger.Info("payment engine starting", "port", port)
	if err := fasthttp.ListenAndServe(":"+port, router); err != nil {
		logger.Fatal("server failed", "err", err)
	}
}
