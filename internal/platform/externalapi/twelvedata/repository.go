package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pepeyeme/ProyectoFinal/internal/feature/marketdata/domain/entity"
	"github.com/pepeyeme/ProyectoFinal/internal/feature/marketdata/usecase"
	"github.com/pepeyeme/ProyectoFinal/internal/platform/externalapi/twelvedata/dto"
	"github.com/pepeyeme/ProyectoFinal/internal/platform/quote"
	"github.com/pepeyeme/ProyectoFinal/internal/shared/ratelimiter"
)

// historyInterval is the candle interval used for every history fetch.
const historyInterval = "1day"

// periodSizes maps a history period to the number of daily candles to
// request (trading days, roughly 21 per month).
var periodSizes = map[string]int{
	"1mo": 22,
	"3mo": 66,
	"6mo": 126,
	"1y":  252,
}

// TwelveDataMarket fetches latest prices and historical close series
// from the Twelve Data external API.
type TwelveDataMarket struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.Limiter
}

// Compile-time checks that TwelveDataMarket serves both consumers.
var (
	_ quote.PriceRepository     = (*TwelveDataMarket)(nil)
	_ usecase.HistoryRepository = (*TwelveDataMarket)(nil)
)

// NewTwelveDataMarket creates a TwelveDataMarket with the given
// configuration, HTTP client and rate limiter.
func NewTwelveDataMarket(cfg Config, client *http.Client, limiter ratelimiter.Limiter) *TwelveDataMarket {
	return &TwelveDataMarket{cfg: cfg, client: client, limiter: limiter}
}

// LatestClose fetches the most recent closing price for symbol from the
// price endpoint.
func (t *TwelveDataMarket) LatestClose(ctx context.Context, symbol string) (float64, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("apikey", t.cfg.TwelveDataAPIKey)

	var body dto.PriceResponse
	if err := t.getJSON(ctx, fmt.Sprintf("%s/price?%s", t.cfg.BaseURL, q.Encode()), &body); err != nil {
		return 0, err
	}
	if body.Status == "error" {
		return 0, fmt.Errorf("twelvedata: %s", body.Message)
	}
	if body.Price == "" {
		return 0, fmt.Errorf("twelvedata: empty price for %q", symbol)
	}

	price, err := strconv.ParseFloat(body.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", body.Price, err)
	}
	return price, nil
}

// History fetches the daily close series for symbol over the given
// period, oldest first.
func (t *TwelveDataMarket) History(ctx context.Context, symbol, period string) ([]entity.PricePoint, error) {
	outputsize, ok := periodSizes[period]
	if !ok {
		outputsize = periodSizes[usecase.DefaultPeriod]
	}

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("interval", historyInterval)
	q.Set("outputsize", strconv.Itoa(outputsize))
	q.Set("apikey", t.cfg.TwelveDataAPIKey)

	var body dto.TimeSeriesResponse
	if err := t.getJSON(ctx, fmt.Sprintf("%s/time_series?%s", t.cfg.BaseURL, q.Encode()), &body); err != nil {
		return nil, err
	}
	if body.Status == "error" {
		return nil, fmt.Errorf("twelvedata: %s", body.Message)
	}

	points := make([]entity.PricePoint, 0, len(body.Values))
	// The API returns values newest first; walk backwards so the series
	// comes out in chronological order.
	for i := len(body.Values) - 1; i >= 0; i-- {
		v := body.Values[i]

		tm, err := time.Parse("2006-01-02 15:04:05", v.Datetime)
		if err != nil {
			tm, err = time.Parse("2006-01-02", v.Datetime)
			if err != nil {
				return nil, fmt.Errorf("parse time %q: %w", v.Datetime, err)
			}
		}
		c, err := strconv.ParseFloat(v.Close, 64)
		if err != nil {
			return nil, fmt.Errorf("parse close %q: %w", v.Close, err)
		}

		points = append(points, entity.PricePoint{Date: tm, Close: c})
	}
	return points, nil
}

// HistoryMulti fetches the series for several symbols sequentially,
// pacing requests through the rate limiter. A symbol whose fetch fails
// maps to an empty series instead of failing the batch.
func (t *TwelveDataMarket) HistoryMulti(ctx context.Context, symbols []string, period string) (map[string][]entity.PricePoint, error) {
	out := make(map[string][]entity.PricePoint, len(symbols))
	for _, sym := range symbols {
		if t.limiter != nil {
			t.limiter.WaitIfNeeded()
		}
		points, err := t.History(ctx, sym, period)
		if err != nil {
			slog.Warn("history fetch failed", "symbol", sym, "error", err)
			out[sym] = []entity.PricePoint{}
			continue
		}
		out[sym] = points
	}
	return out, nil
}

// getJSON performs a GET request and decodes the JSON response into
// out.
func (t *TwelveDataMarket) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("twelvedata http %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
