// Package handler provides the HTTP handlers for the marketdata
// feature.
package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pepeyeme/ProyectoFinal/internal/feature/marketdata/transport/http/dto"
	"github.com/pepeyeme/ProyectoFinal/internal/feature/marketdata/usecase"
)

// HistoryUsecase serves a symbol's close series with its rolling
// average.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type HistoryUsecase interface {
	GetHistory(ctx context.Context, symbol, period string) ([]usecase.SMAPoint, error)
}

// HistoryHandler handles historical price requests.
type HistoryHandler struct {
	uc HistoryUsecase
}

// NewHistoryHandler creates a HistoryHandler with the given usecase.
func NewHistoryHandler(uc HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// GetHistory handles GET /history/:symbol.
//
// Endpoint example:
// GET /history/AAPL?period=6mo
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	period := usecase.NormalizePeriod(c.DefaultQuery("period", usecase.DefaultPeriod))

	points, err := h.uc.GetHistory(c.Request.Context(), symbol, period)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}

	out := dto.HistoryResponse{
		Symbol: symbol,
		Period: period,
		Points: make([]dto.HistoryPointResponse, 0, len(points)),
	}
	for _, p := range points {
		out.Points = append(out.Points, dto.HistoryPointResponse{
			Date:  p.Date,
			Close: p.Close,
			SMA20: p.Average,
		})
	}
	c.JSON(http.StatusOK, out)
}
