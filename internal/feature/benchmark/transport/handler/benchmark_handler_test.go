package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pepeyeme/ProyectoFinal/internal/feature/benchmark/transport/handler"
	"github.com/pepeyeme/ProyectoFinal/internal/feature/benchmark/usecase"
	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/domain/entity"
)

// mockPortfolioProvider is a PortfolioProvider mock with function
// fields.
type mockPortfolioProvider struct {
	HoldingsFunc func(sessionID string) entity.Portfolio
}

func (m *mockPortfolioProvider) Holdings(sessionID string) entity.Portfolio {
	if m.HoldingsFunc != nil {
		return m.HoldingsFunc(sessionID)
	}
	return entity.Portfolio{}
}

// mockBenchmarkUsecase is a BenchmarkUsecase mock with function fields.
type mockBenchmarkUsecase struct {
	CompareFunc func(ctx context.Context, portfolio entity.Portfolio, symbols []string, period string) (usecase.ComparisonReport, error)
}

func (m *mockBenchmarkUsecase) Compare(ctx context.Context, portfolio entity.Portfolio, symbols []string, period string) (usecase.ComparisonReport, error) {
	return m.CompareFunc(ctx, portfolio, symbols, period)
}

// TestBenchmarkHandler_Compare tests the comparison endpoint.
func TestBenchmarkHandler_Compare(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		wantSymbols    []string
		wantPeriod     string
		mockCompare    func(ctx context.Context, portfolio entity.Portfolio, symbols []string, period string) (usecase.ComparisonReport, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "success: explicit symbols and period",
			url:         "/portfolio/benchmark?symbols=%5EGSPC,BTC-USD&period=3mo",
			wantSymbols: []string{"^GSPC", "BTC-USD"},
			wantPeriod:  "3mo",
			mockCompare: func(_ context.Context, _ entity.Portfolio, symbols []string, period string) (usecase.ComparisonReport, error) {
				return usecase.ComparisonReport{
					Benchmarks: []usecase.BenchmarkSeries{
						{
							Symbol: "^GSPC",
							Points: []usecase.IndexPoint{
								{Date: "2025-06-01", Index: 100},
								{Date: "2025-06-02", Index: 110},
							},
						},
					},
					FlatReturnPct:  20,
					ReferenceIndex: 120,
					SkippedSymbols: []string{"BTC-USD"},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"benchmarks": [
					{"symbol":"^GSPC","points":[{"date":"2025-06-01","index":100},{"date":"2025-06-02","index":110}]}
				],
				"flat_return_pct": 20,
				"reference_index": 120,
				"skipped_symbols": ["BTC-USD"],
				"warnings": []
			}`,
		},
		{
			name:        "success: no query parameters leave the defaults to the usecase",
			url:         "/portfolio/benchmark",
			wantSymbols: nil,
			wantPeriod:  "",
			mockCompare: func(_ context.Context, _ entity.Portfolio, symbols []string, period string) (usecase.ComparisonReport, error) {
				return usecase.ComparisonReport{
					Benchmarks:     []usecase.BenchmarkSeries{},
					FlatReturnPct:  0,
					ReferenceIndex: 100,
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"benchmarks":[],"flat_return_pct":0,"reference_index":100,"skipped_symbols":[],"warnings":[]}`,
		},
		{
			name:        "error: provider failure maps to 502",
			url:         "/portfolio/benchmark",
			wantSymbols: nil,
			wantPeriod:  "",
			mockCompare: func(_ context.Context, _ entity.Portfolio, _ []string, _ string) (usecase.ComparisonReport, error) {
				return usecase.ComparisonReport{}, errors.New("provider down")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"provider down"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPortfolio := &mockPortfolioProvider{}
			mockBenchmark := &mockBenchmarkUsecase{
				CompareFunc: func(ctx context.Context, portfolio entity.Portfolio, symbols []string, period string) (usecase.ComparisonReport, error) {
					assert.Equal(t, tt.wantSymbols, symbols)
					assert.Equal(t, tt.wantPeriod, period)
					return tt.mockCompare(ctx, portfolio, symbols, period)
				},
			}
			h := handler.NewBenchmarkHandler(mockPortfolio, mockBenchmark)

			router := gin.New()
			router.GET("/portfolio/benchmark", h.Compare)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
