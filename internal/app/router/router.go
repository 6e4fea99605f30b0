// Package router wires the HTTP endpoints to their feature handlers.
package router

import (
	"github.com/gin-gonic/gin"

	benchmarkhandler "github.com/pepeyeme/ProyectoFinal/internal/feature/benchmark/transport/handler"
	marketdatahandler "github.com/pepeyeme/ProyectoFinal/internal/feature/marketdata/transport/handler"
	portfoliohandler "github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/transport/handler"
	platformhandler "github.com/pepeyeme/ProyectoFinal/internal/platform/http/handler"
)

// NewRouter builds the gin engine with every report endpoint mounted.
func NewRouter(
	portfolio *portfoliohandler.PortfolioHandler,
	simulation *portfoliohandler.SimulationHandler,
	diversification *portfoliohandler.DiversificationHandler,
	benchmark *benchmarkhandler.BenchmarkHandler,
	history *marketdatahandler.HistoryHandler,
) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", platformhandler.Health)

	// Session portfolio: entry plus the four report views
	p := r.Group("/portfolio")
	{
		p.POST("/holdings", portfolio.AddHolding)
		p.GET("", portfolio.GetPortfolio)
		p.POST("/simulate", simulation.Simulate)
		p.GET("/diversification", diversification.Analyze)
		p.GET("/benchmark", benchmark.Compare)
	}

	// Historical close series with rolling average
	r.GET("/history/:symbol", history.GetHistory)

	return r
}
