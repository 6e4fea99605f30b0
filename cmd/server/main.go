package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"github.com/pepeyeme/ProyectoFinal/internal/app/router"
	benchmarkusecase "github.com/pepeyeme/ProyectoFinal/internal/feature/benchmark/usecase"
	marketdatausecase "github.com/pepeyeme/ProyectoFinal/internal/feature/marketdata/usecase"
	portfolioadapters "github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/adapters"
	portfoliousecase "github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/usecase"
	"github.com/pepeyeme/ProyectoFinal/internal/platform/cache"
	"github.com/pepeyeme/ProyectoFinal/internal/platform/externalapi/twelvedata"
	platformhttp "github.com/pepeyeme/ProyectoFinal/internal/platform/http"
	"github.com/pepeyeme/ProyectoFinal/internal/platform/quote"
	infraredis "github.com/pepeyeme/ProyectoFinal/internal/platform/redis"
	"github.com/pepeyeme/ProyectoFinal/internal/shared/ratelimiter"

	benchmarkhandler "github.com/pepeyeme/ProyectoFinal/internal/feature/benchmark/transport/handler"
	marketdatahandler "github.com/pepeyeme/ProyectoFinal/internal/feature/marketdata/transport/handler"
	portfoliohandler "github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/transport/handler"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using process environment")
	}

	// Redis is optional: without it the history cache passes through.
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		slog.Warn("Redis unavailable, running without history cache")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Market data client; the free tier allows 8 requests per minute.
	cfg := twelvedata.LoadConfig()
	httpClient := platformhttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(8, time.Minute)
	market := twelvedata.NewTwelveDataMarket(cfg, httpClient, limiter)

	// Quote memoization (300s) and Redis-cached history series.
	prices := quote.NewPriceCache(market, quote.DefaultFreshness, nil)
	history := cache.NewCachingHistoryRepository(rdb, 5*time.Minute, market, "history")

	// Repository
	store := portfolioadapters.NewPortfolioMemory()

	// Usecase
	portfolioUC := portfoliousecase.NewPortfolioUsecase(store)
	valuationUC := portfoliousecase.NewValuationUsecase(prices)
	scenarioUC := portfoliousecase.NewScenarioUsecase(prices)
	diversificationUC := portfoliousecase.NewDiversificationUsecase(prices)
	benchmarkUC := benchmarkusecase.NewBenchmarkUsecase(prices, history)
	historyUC := marketdatausecase.NewHistoryUsecase(history)

	// Handler
	portfolioH := portfoliohandler.NewPortfolioHandler(portfolioUC, valuationUC)
	simulationH := portfoliohandler.NewSimulationHandler(portfolioUC, scenarioUC)
	diversificationH := portfoliohandler.NewDiversificationHandler(portfolioUC, diversificationUC)
	benchmarkH := benchmarkhandler.NewBenchmarkHandler(portfolioUC, benchmarkUC)
	historyH := marketdatahandler.NewHistoryHandler(historyUC)

	r := router.NewRouter(portfolioH, simulationH, diversificationH, benchmarkH, historyH)

	if cfg.TwelveDataAPIKey == "" {
		slog.Warn("TWELVE_DATA_API_KEY is not set, price lookups will fail")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
