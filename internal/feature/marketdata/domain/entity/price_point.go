// Package entity defines the domain models for the marketdata feature.
package entity

import "time"

// PricePoint is one (date, closing price) observation of an external
// time series, as returned by the market-data provider.
type PricePoint struct {
	Date  time.Time // Trading day of the observation
	Close float64   // Closing price for that day
}
