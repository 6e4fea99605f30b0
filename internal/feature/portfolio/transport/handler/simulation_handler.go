package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/domain/entity"
	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/transport/http/dto"
	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/usecase"
)

// DefaultScenarios mirror the original report's slider defaults:
// pessimistic -20%, neutral 0%, optimistic +30%.
var DefaultScenarios = []usecase.Scenario{
	{Name: "pessimistic", PctChange: -20},
	{Name: "neutral", PctChange: 0},
	{Name: "optimistic", PctChange: 30},
}

// ScenarioUsecase projects the portfolio under named percentage shocks.
type ScenarioUsecase interface {
	Simulate(ctx context.Context, portfolio entity.Portfolio, scenarios []usecase.Scenario) usecase.SimulationReport
}

// SimulationHandler handles the what-if scenario report.
type SimulationHandler struct {
	portfolio PortfolioUsecase
	scenarios ScenarioUsecase
}

// NewSimulationHandler creates a SimulationHandler with the given
// usecases.
func NewSimulationHandler(portfolio PortfolioUsecase, scenarios ScenarioUsecase) *SimulationHandler {
	return &SimulationHandler{portfolio: portfolio, scenarios: scenarios}
}

// Simulate handles POST /portfolio/simulate. The caller supplies the
// scenarios in the order results should come back; with no body (or an
// empty scenario list) the default pessimistic/neutral/optimistic
// triple applies.
func (h *SimulationHandler) Simulate(c *gin.Context) {
	scenarios := DefaultScenarios
	if c.Request.ContentLength > 0 {
		var req dto.SimulateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		if len(req.Scenarios) > 0 {
			scenarios = make([]usecase.Scenario, 0, len(req.Scenarios))
			for _, s := range req.Scenarios {
				scenarios = append(scenarios, usecase.Scenario{Name: s.Name, PctChange: s.PctChange})
			}
		}
	}

	holdings := h.portfolio.Holdings(c.GetHeader(SessionHeader))
	report := h.scenarios.Simulate(c.Request.Context(), holdings, scenarios)

	out := dto.SimulateResponse{
		Results:  make([]dto.ScenarioResultRow, 0, len(report.Results)),
		Summary:  make([]dto.ScenarioSummaryRow, 0, len(report.Summaries)),
		Warnings: emptyIfNil(report.Warnings),
	}
	for _, r := range report.Results {
		out.Results = append(out.Results, dto.ScenarioResultRow{
			Ticker:         r.Ticker,
			Scenario:       r.ScenarioName,
			CurrentValue:   r.CurrentValue,
			ProjectedValue: r.ProjectedValue,
			Delta:          r.Delta,
			ReturnPct:      r.ReturnPct,
		})
	}
	for _, s := range report.Summaries {
		out.Summary = append(out.Summary, dto.ScenarioSummaryRow{
			Scenario:         s.ScenarioName,
			TotalFutureValue: s.TotalFutureValue,
			TotalDelta:       s.TotalDelta,
			TotalReturnPct:   s.TotalReturnPct,
		})
	}
	c.JSON(http.StatusOK, out)
}
