// Package handler provides the HTTP handlers for the benchmark feature.
package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pepeyeme/ProyectoFinal/internal/feature/benchmark/transport/http/dto"
	"github.com/pepeyeme/ProyectoFinal/internal/feature/benchmark/usecase"
	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/domain/entity"
	portfoliohandler "github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/transport/handler"
)

// PortfolioProvider exposes the session's holdings.
type PortfolioProvider interface {
	Holdings(sessionID string) entity.Portfolio
}

// BenchmarkUsecase compares the portfolio's flat return against
// normalized benchmark series.
type BenchmarkUsecase interface {
	Compare(ctx context.Context, portfolio entity.Portfolio, symbols []string, period string) (usecase.ComparisonReport, error)
}

// BenchmarkHandler handles the benchmark comparison report.
type BenchmarkHandler struct {
	portfolio PortfolioProvider
	benchmark BenchmarkUsecase
}

// NewBenchmarkHandler creates a BenchmarkHandler with the given
// usecases.
func NewBenchmarkHandler(portfolio PortfolioProvider, benchmark BenchmarkUsecase) *BenchmarkHandler {
	return &BenchmarkHandler{portfolio: portfolio, benchmark: benchmark}
}

// Compare handles GET /portfolio/benchmark. Optional query parameters:
// symbols (comma-separated) and period; defaults are the S&P 500,
// Nasdaq and Bitcoin over 6 months.
//
// Endpoint example:
// GET /portfolio/benchmark?symbols=^GSPC,BTC-USD&period=6mo
func (h *BenchmarkHandler) Compare(c *gin.Context) {
	var symbols []string
	if raw := c.Query("symbols"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				symbols = append(symbols, s)
			}
		}
	}
	period := c.Query("period")

	holdings := h.portfolio.Holdings(c.GetHeader(portfoliohandler.SessionHeader))
	report, err := h.benchmark.Compare(c.Request.Context(), holdings, symbols, period)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}

	out := dto.ComparisonResponse{
		Benchmarks:     make([]dto.BenchmarkSeriesResponse, 0, len(report.Benchmarks)),
		FlatReturnPct:  report.FlatReturnPct,
		ReferenceIndex: report.ReferenceIndex,
		SkippedSymbols: emptyIfNil(report.SkippedSymbols),
		Warnings:       emptyIfNil(report.Warnings),
	}
	for _, b := range report.Benchmarks {
		series := dto.BenchmarkSeriesResponse{
			Symbol: b.Symbol,
			Points: make([]dto.IndexPointResponse, 0, len(b.Points)),
		}
		for _, p := range b.Points {
			series.Points = append(series.Points, dto.IndexPointResponse{Date: p.Date, Index: p.Index})
		}
		out.Benchmarks = append(out.Benchmarks, series)
	}
	c.JSON(http.StatusOK, out)
}

// emptyIfNil keeps warning lists as JSON arrays, never null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
