// Package entity defines the domain models for the portfolio feature.
package entity

import (
	"errors"
	"strings"
)

// Validation errors returned by NewHolding.
var (
	ErrEmptyTicker           = errors.New("ticker must not be empty")
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrNegativePurchasePrice = errors.New("purchase price must not be negative")
)

// Holding represents one user-entered position. A holding is immutable
// once added: there is no edit or delete operation.
type Holding struct {
	Ticker        string  // Stock ticker symbol, uppercase-normalized (e.g., "AAPL")
	Quantity      int64   // Number of shares, always > 0
	PurchasePrice float64 // Price paid per share, >= 0
}

// NewHolding validates and normalizes user input into a Holding.
// The ticker is trimmed and upper-cased.
func NewHolding(ticker string, quantity int64, purchasePrice float64) (Holding, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return Holding{}, ErrEmptyTicker
	}
	if quantity <= 0 {
		return Holding{}, ErrInvalidQuantity
	}
	if purchasePrice < 0 {
		return Holding{}, ErrNegativePurchasePrice
	}
	return Holding{Ticker: ticker, Quantity: quantity, PurchasePrice: purchasePrice}, nil
}

// Portfolio is the ordered, append-only sequence of a session's
// holdings. Insertion order is preserved for display. Duplicate tickers
// are allowed and treated as independent positions.
type Portfolio []Holding
