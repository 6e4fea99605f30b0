package usecase_test

import (
	"context"
	"math"
	"reflect"
	"testing"

	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/domain/entity"
	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/usecase"
)

// TestDiversificationUsecase_Analyze verifies weight computation,
// threshold warnings, duplicate-ticker merging and the no-price edge
// cases.
func TestDiversificationUsecase_Analyze(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name         string
		portfolio    entity.Portfolio
		prices       map[string]float64
		thresholdPct float64
		want         usecase.DiversificationReport
	}{
		{
			name: "60/40 split flags only the heavy ticker",
			portfolio: entity.Portfolio{
				{Ticker: "AAPL", Quantity: 6, PurchasePrice: 90},
				{Ticker: "MSFT", Quantity: 4, PurchasePrice: 90},
			},
			prices: map[string]float64{"AAPL": 100, "MSFT": 100},
			want: usecase.DiversificationReport{
				Weights: []usecase.Weight{
					{Ticker: "AAPL", Value: 600, WeightPct: 60},
					{Ticker: "MSFT", Value: 400, WeightPct: 40},
				},
				ThresholdPct: 50,
				Overweight:   []string{"AAPL"},
			},
		},
		{
			name: "weight exactly at threshold is not flagged",
			portfolio: entity.Portfolio{
				{Ticker: "AAPL", Quantity: 5, PurchasePrice: 90},
				{Ticker: "MSFT", Quantity: 5, PurchasePrice: 90},
			},
			prices: map[string]float64{"AAPL": 100, "MSFT": 100},
			want: usecase.DiversificationReport{
				Weights: []usecase.Weight{
					{Ticker: "AAPL", Value: 500, WeightPct: 50},
					{Ticker: "MSFT", Value: 500, WeightPct: 50},
				},
				ThresholdPct: 50,
			},
		},
		{
			name: "duplicate positions merge into one weight entry",
			portfolio: entity.Portfolio{
				{Ticker: "AAPL", Quantity: 3, PurchasePrice: 90},
				{Ticker: "MSFT", Quantity: 4, PurchasePrice: 90},
				{Ticker: "AAPL", Quantity: 3, PurchasePrice: 110},
			},
			prices: map[string]float64{"AAPL": 100, "MSFT": 100},
			want: usecase.DiversificationReport{
				Weights: []usecase.Weight{
					{Ticker: "AAPL", Value: 600, WeightPct: 60},
					{Ticker: "MSFT", Value: 400, WeightPct: 40},
				},
				ThresholdPct: 50,
				Overweight:   []string{"AAPL"},
			},
		},
		{
			name: "custom threshold",
			portfolio: entity.Portfolio{
				{Ticker: "AAPL", Quantity: 3, PurchasePrice: 90},
				{Ticker: "MSFT", Quantity: 7, PurchasePrice: 90},
			},
			prices:       map[string]float64{"AAPL": 100, "MSFT": 100},
			thresholdPct: 25,
			want: usecase.DiversificationReport{
				Weights: []usecase.Weight{
					{Ticker: "AAPL", Value: 300, WeightPct: 30},
					{Ticker: "MSFT", Value: 700, WeightPct: 70},
				},
				ThresholdPct: 25,
				Overweight:   []string{"AAPL", "MSFT"},
			},
		},
		{
			name: "no resolvable prices yields empty weights and no flags",
			portfolio: entity.Portfolio{
				{Ticker: "BAD", Quantity: 10, PurchasePrice: 10},
			},
			prices: map[string]float64{},
			want: usecase.DiversificationReport{
				Weights:      []usecase.Weight{},
				ThresholdPct: 50,
				Warnings:     []string{"BAD"},
			},
		},
		{
			name:      "empty portfolio",
			portfolio: entity.Portfolio{},
			prices:    map[string]float64{},
			want: usecase.DiversificationReport{
				Weights:      []usecase.Weight{},
				ThresholdPct: 50,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecase.NewDiversificationUsecase(&stubPriceSource{prices: tt.prices})

			got := uc.Analyze(ctx, tt.portfolio, tt.thresholdPct)

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("report mismatch:\ngot  %+v\nwant %+v", got, tt.want)
			}
		})
	}
}

// TestDiversificationUsecase_WeightsSumTo100 checks the weight
// invariant for a portfolio with awkward prices.
func TestDiversificationUsecase_WeightsSumTo100(t *testing.T) {
	t.Parallel()

	portfolio := entity.Portfolio{
		{Ticker: "AAPL", Quantity: 3, PurchasePrice: 90},
		{Ticker: "MSFT", Quantity: 7, PurchasePrice: 40},
		{Ticker: "GOOG", Quantity: 11, PurchasePrice: 120},
	}
	uc := usecase.NewDiversificationUsecase(&stubPriceSource{prices: map[string]float64{
		"AAPL": 151.31, "MSFT": 47.07, "GOOG": 133.33,
	}})

	report := uc.Analyze(context.Background(), portfolio, 0)

	var sum float64
	for _, w := range report.Weights {
		sum += w.WeightPct
	}
	// Each weight is rounded to 2 decimal places, so the sum sits
	// within rounding distance of 100.
	if math.Abs(sum-100) > 0.005*float64(len(report.Weights)) {
		t.Errorf("weights sum to %v, want 100", sum)
	}
}
