package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/domain/entity"
	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/transport/http/dto"
	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/usecase"
)

// DiversificationUsecase computes per-ticker weights and concentration
// warnings.
type DiversificationUsecase interface {
	Analyze(ctx context.Context, portfolio entity.Portfolio, thresholdPct float64) usecase.DiversificationReport
}

// DiversificationHandler handles the concentration report.
type DiversificationHandler struct {
	portfolio PortfolioUsecase
	analyzer  DiversificationUsecase
}

// NewDiversificationHandler creates a DiversificationHandler with the
// given usecases.
func NewDiversificationHandler(portfolio PortfolioUsecase, analyzer DiversificationUsecase) *DiversificationHandler {
	return &DiversificationHandler{portfolio: portfolio, analyzer: analyzer}
}

// Analyze handles GET /portfolio/diversification. An optional
// threshold query parameter overrides the 50% default; a malformed
// value falls back to the default, threshold handling lives in the
// usecase.
func (h *DiversificationHandler) Analyze(c *gin.Context) {
	threshold, _ := strconv.ParseFloat(c.DefaultQuery("threshold", "0"), 64)

	holdings := h.portfolio.Holdings(c.GetHeader(SessionHeader))
	report := h.analyzer.Analyze(c.Request.Context(), holdings, threshold)

	out := dto.DiversificationResponse{
		Weights:      make([]dto.WeightRow, 0, len(report.Weights)),
		ThresholdPct: report.ThresholdPct,
		Overweight:   emptyIfNil(report.Overweight),
		Warnings:     emptyIfNil(report.Warnings),
	}
	for _, w := range report.Weights {
		out.Weights = append(out.Weights, dto.WeightRow{
			Ticker:    w.Ticker,
			Value:     w.Value,
			WeightPct: w.WeightPct,
		})
	}
	c.JSON(http.StatusOK, out)
}
