// Package dto defines request and response objects for the portfolio
// feature's HTTP endpoints.
package dto

// AddHoldingRequest is the payload for adding one position to the
// session portfolio. PurchasePrice may legitimately be zero (free
// shares), so only a lower bound is enforced here.
type AddHoldingRequest struct {
	Ticker        string  `json:"ticker" binding:"required"`
	Quantity      int64   `json:"quantity" binding:"required,gt=0"`
	PurchasePrice float64 `json:"purchase_price" binding:"gte=0"`
}
