package usecase_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/domain/entity"
	"github.com/pepeyeme/ProyectoFinal/internal/feature/portfolio/usecase"
)

// mockPortfolioRepository is a PortfolioRepository mock with function
// fields.
type mockPortfolioRepository struct {
	CreateFunc  func() string
	AppendFunc  func(sessionID string, h entity.Holding) error
	GetFunc     func(sessionID string) (entity.Portfolio, bool)
	CreateCalls int
}

func (m *mockPortfolioRepository) Create() string {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc()
	}
	return "session-1"
}

func (m *mockPortfolioRepository) Append(sessionID string, h entity.Holding) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(sessionID, h)
	}
	return nil
}

func (m *mockPortfolioRepository) Get(sessionID string) (entity.Portfolio, bool) {
	if m.GetFunc != nil {
		return m.GetFunc(sessionID)
	}
	return nil, false
}

// TestPortfolioUsecase_AddHolding verifies validation, session creation
// and append delegation.
func TestPortfolioUsecase_AddHolding(t *testing.T) {
	t.Parallel()

	t.Run("opens a session when none is given", func(t *testing.T) {
		t.Parallel()

		repo := &mockPortfolioRepository{
			AppendFunc: func(sessionID string, h entity.Holding) error {
				if sessionID != "session-1" {
					t.Errorf("Append called with session %q, want session-1", sessionID)
				}
				if h.Ticker != "AAPL" {
					t.Errorf("Append called with ticker %q, want AAPL", h.Ticker)
				}
				return nil
			},
		}
		uc := usecase.NewPortfolioUsecase(repo)

		sessionID, holding, err := uc.AddHolding("", "aapl", 10, 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sessionID != "session-1" {
			t.Errorf("sessionID = %q, want session-1", sessionID)
		}
		if repo.CreateCalls != 1 {
			t.Errorf("Create called %d times, want 1", repo.CreateCalls)
		}
		if holding.Ticker != "AAPL" {
			t.Errorf("holding not normalized: %+v", holding)
		}
	})

	t.Run("reuses an existing session", func(t *testing.T) {
		t.Parallel()

		repo := &mockPortfolioRepository{}
		uc := usecase.NewPortfolioUsecase(repo)

		sessionID, _, err := uc.AddHolding("existing", "MSFT", 5, 50)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sessionID != "existing" {
			t.Errorf("sessionID = %q, want existing", sessionID)
		}
		if repo.CreateCalls != 0 {
			t.Errorf("Create called %d times, want 0", repo.CreateCalls)
		}
	})

	t.Run("rejects invalid input without touching the store", func(t *testing.T) {
		t.Parallel()

		repo := &mockPortfolioRepository{
			AppendFunc: func(string, entity.Holding) error {
				t.Error("Append must not be called for invalid input")
				return nil
			},
		}
		uc := usecase.NewPortfolioUsecase(repo)

		if _, _, err := uc.AddHolding("s", "", 10, 100); !errors.Is(err, entity.ErrEmptyTicker) {
			t.Errorf("expected ErrEmptyTicker, got %v", err)
		}
		if _, _, err := uc.AddHolding("s", "AAPL", 0, 100); !errors.Is(err, entity.ErrInvalidQuantity) {
			t.Errorf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("propagates unknown-session errors", func(t *testing.T) {
		t.Parallel()

		repo := &mockPortfolioRepository{
			AppendFunc: func(string, entity.Holding) error { return usecase.ErrSessionNotFound },
		}
		uc := usecase.NewPortfolioUsecase(repo)

		if _, _, err := uc.AddHolding("dead", "AAPL", 1, 1); !errors.Is(err, usecase.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

// TestPortfolioUsecase_Holdings verifies the unknown-session fallback.
func TestPortfolioUsecase_Holdings(t *testing.T) {
	t.Parallel()

	stored := entity.Portfolio{{Ticker: "AAPL", Quantity: 1, PurchasePrice: 1}}
	repo := &mockPortfolioRepository{
		GetFunc: func(sessionID string) (entity.Portfolio, bool) {
			if sessionID == "known" {
				return stored, true
			}
			return nil, false
		},
	}
	uc := usecase.NewPortfolioUsecase(repo)

	if got := uc.Holdings("known"); !reflect.DeepEqual(got, stored) {
		t.Errorf("Holdings(known) = %+v, want %+v", got, stored)
	}
	if got := uc.Holdings("unknown"); len(got) != 0 {
		t.Errorf("Holdings(unknown) = %+v, want empty", got)
	}
}
