package usecase

import (
	"errors"

	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/domain/entity"
)

// ErrSessionNotFound is returned when a holding is appended to a
// session ID that was never issued (or belongs to a dead process).
var ErrSessionNotFound = errors.New("session not found")

// PortfolioRepository abstracts the session-scoped holding store.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PortfolioRepository interface {
	// Create opens a new empty session and returns its ID.
	Create() string
	// Append adds a holding to an existing session.
	Append(sessionID string, h entity.Holding) error
	// Get returns the session's holdings in insertion order.
	Get(sessionID string) (entity.Portfolio, bool)
}

// PortfolioUsecase manages the session portfolio: validated append-only
// growth, discarded with the session.
type PortfolioUsecase struct {
	repo PortfolioRepository
}

// NewPortfolioUsecase creates a PortfolioUsecase with the given store.
func NewPortfolioUsecase(repo PortfolioRepository) *PortfolioUsecase {
	return &PortfolioUsecase{repo: repo}
}

// AddHolding validates the input, opens a session when sessionID is
// empty, and appends the holding. It returns the (possibly new) session
// ID together with the normalized holding.
func (u *PortfolioUsecase) AddHolding(sessionID, ticker string, quantity int64, purchasePrice float64) (string, entity.Holding, error) {
	h, err := entity.NewHolding(ticker, quantity, purchasePrice)
	if err != nil {
		return sessionID, entity.Holding{}, err
	}
	if sessionID == "" {
		sessionID = u.repo.Create()
	}
	if err := u.repo.Append(sessionID, h); err != nil {
		return sessionID, entity.Holding{}, err
	}
	return sessionID, h, nil
}

// Holdings returns the session's portfolio in insertion order. An
// unknown or empty session ID yields an empty portfolio.
func (u *PortfolioUsecase) Holdings(sessionID string) entity.Portfolio {
	p, ok := u.repo.Get(sessionID)
	if !ok {
		return entity.Portfolio{}
	}
	return p
}
