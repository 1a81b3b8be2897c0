package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"skyfare/cfg"
	"skyfare/internal/flight"
	"skyfare/pkg/cache"
	"skyfare/pkg/logger"
	"skyfare/pkg/metrics"
	"skyfare/pkg/provider"
	"skyfare/pkg/ratelimit"
	"skyfare/pkg/retry"

	_ "skyfare/cmd/skyfare/docs" // swagger docs

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	searchesPerMinute = 10
	pollMaxAttempts   = 10
	pollInterval      = time.Second
)

// @title           Skyfare Flight API
// @version         1.0
// @description     API service for searching and filtering flight offers.
// @BasePath        /
// @schemes         http
func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// Cache
	// ============
	redisAddr := config.RedisConfig.Host + ":" + config.RedisConfig.Port
	store := cache.NewRedisCache(redisAddr)
	searchCache := flight.NewSearchCache(store, config.CacheTTLMinutes)

	// ============
	// External Services
	// ============
	httpClient := &http.Client{
		Timeout: 15 * time.Second,
	}
	amadeusClient := provider.NewAmadeusClient(
		httpClient,
		config.AmadeusConfig.BaseURL,
		config.AmadeusConfig.ClientID,
		config.AmadeusConfig.ClientSecret,
		zlogger,
	)
	duffelClient := provider.NewDuffelClient(
		httpClient,
		config.DuffelConfig.BaseURL,
		config.DuffelConfig.AccessToken,
		retry.NewPolicy(pollMaxAttempts, pollInterval),
		zlogger,
	)
	appMetrics := metrics.NewMetrics("skyfare")
	gateway := provider.NewGateway(amadeusClient, duffelClient, appMetrics, zlogger)

	// ============
	// Internal Service
	// ============
	limiter := ratelimit.New(searchesPerMinute, time.Minute)
	flightSvc := flight.NewService(gateway, searchCache, limiter, appMetrics, zlogger)
	flightHandler := flight.NewFlightHandler(flightSvc, duffelClient)

	// ============
	// HTTP
	// ============
	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	flightHandler.RegisterRoutes(r)
	initSwagger(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf(":%s", config.AppPort)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(200, html)
	})
}
