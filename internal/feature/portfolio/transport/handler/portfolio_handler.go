// Package handler provides the HTTP handlers for the portfolio feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/domain/entity"
	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/transport/http/dto"
	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/usecase"
)

// SessionHeader carries the portfolio session ID between requests.
const SessionHeader = "X-Session-ID"

// PortfolioUsecase manages the session-scoped holding list.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type PortfolioUsecase interface {
	AddHolding(sessionID, ticker string, quantity int64, purchasePrice float64) (string, entity.Holding, error)
	Holdings(sessionID string) entity.Portfolio
}

// ValuationUsecase values the portfolio at current prices.
type ValuationUsecase interface {
	ValueHoldings(ctx context.Context, portfolio entity.Portfolio) ([]usecase.HoldingValuation, []string)
}

// PortfolioHandler handles holding entry and the valuation report.
type PortfolioHandler struct {
	portfolio PortfolioUsecase
	valuation ValuationUsecase
}

// NewPortfolioHandler creates a PortfolioHandler with the given
// usecases.
func NewPortfolioHandler(portfolio PortfolioUsecase, valuation ValuationUsecase) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio, valuation: valuation}
}

// AddHolding handles POST /portfolio/holdings. When the request carries
// no session header a new session is opened and its ID returned; the
// client presents it on every later call.
func (h *PortfolioHandler) AddHolding(c *gin.Context) {
	var req dto.AddHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sessionID, holding, err := h.portfolio.AddHolding(c.GetHeader(SessionHeader), req.Ticker, req.Quantity, req.PurchasePrice)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, usecase.ErrSessionNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.AddHoldingResponse{
		SessionID: sessionID,
		Holding: dto.HoldingResponse{
			Ticker:        holding.Ticker,
			Quantity:      holding.Quantity,
			PurchasePrice: holding.PurchasePrice,
		},
	})
}

// GetPortfolio handles GET /portfolio: the valuation table at current
// prices. Tickers with no resolvable price are listed in warnings
// instead of appearing as rows.
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	holdings := h.portfolio.Holdings(c.GetHeader(SessionHeader))
	rows, warnings := h.valuation.ValueHoldings(c.Request.Context(), holdings)

	out := dto.ValuationResponse{
		Holdings: make([]dto.ValuationRow, 0, len(rows)),
		Warnings: emptyIfNil(warnings),
	}
	for _, r := range rows {
		out.Holdings = append(out.Holdings, dto.ValuationRow{
			Ticker:        r.Ticker,
			Quantity:      r.Quantity,
			PurchasePrice: r.PurchasePrice,
			CurrentPrice:  r.CurrentPrice,
			CurrentValue:  r.CurrentValue,
		})
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
