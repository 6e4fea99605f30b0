// Package adapters provides storage implementations for the portfolio
// feature.
package adapters

import (
	"sync"

	"github.com/google/uuid"

	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/domain/entity"
	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/usecase"
)

// PortfolioMemory is an in-memory, session-scoped portfolio store.
// State lives only for the lifetime of the process; nothing is
// persisted across restarts.
type PortfolioMemory struct {
	mu       sync.RWMutex
	sessions map[string]entity.Portfolio
}

// Compile-time check that PortfolioMemory implements PortfolioRepository.
var _ usecase.PortfolioRepository = (*PortfolioMemory)(nil)

// NewPortfolioMemory creates an empty in-memory portfolio store.
func NewPortfolioMemory() *PortfolioMemory {
	return &PortfolioMemory{sessions: map[string]entity.Portfolio{}}
}

// Create opens a new empty session and returns its random ID.
func (s *PortfolioMemory) Create() string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = entity.Portfolio{}
	return id
}

// Append adds a holding to an existing session, preserving insertion
// order.
func (s *PortfolioMemory) Append(sessionID string, h entity.Holding) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.sessions[sessionID]
	if !ok {
		return usecase.ErrSessionNotFound
	}
	s.sessions[sessionID] = append(p, h)
	return nil
}

// Get returns a copy of the session's holdings so callers cannot mutate
// stored state.
func (s *PortfolioMemory) Get(sessionID string) (entity.Portfolio, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	out := make(entity.Portfolio, len(p))
	copy(out, p)
	return out, true
}
