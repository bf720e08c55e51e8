package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/caixa_ledger/internal/core/domain"
)

// MovementReader defines read operations for movement data
type MovementReader interface {
	// FindMovementByID retrieves a movement, active or not. Returns apperrors.ErrNotFound when absent.
	FindMovementByID(ctx context.Context, unitID, registerID, movementID string) (*domain.Movement, error)

	// ListMovementsByRegister retrieves the active movements of a register, optionally
	// restricted to the inclusive [from, to] timestamp window.
	ListMovementsByRegister(ctx context.Context, unitID, registerID string, from, to *time.Time) ([]domain.Movement, error)
}

// MovementWriter defines write operations for movement data
type MovementWriter interface {
	// SaveMovements is the batch transaction writer: inside one atomic transaction it
	// locks the register, allocates ids max+1, max+2, ... in slice order and inserts every
	// movement. Either all movements become visible or none do. It returns the movements
	// with their assigned ids.
	SaveMovements(ctx context.Context, unitID, registerID string, movements []domain.Movement) ([]domain.Movement, error)

	// DeactivateMovement soft-deletes a movement. It returns false when the movement does not exist.
	DeactivateMovement(ctx context.Context, unitID, registerID, movementID string, deletedAt time.Time, deletedBy string) (bool, error)
}

// MovementRepositoryFacade combines all movement-related repository interfaces
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
}
