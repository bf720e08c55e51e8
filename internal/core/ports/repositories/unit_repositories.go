package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/caixa_ledger/internal/core/domain"
)

// UnitReader defines read operations for unit data
type UnitReader interface {
	// FindUnitByID retrieves a unit by id, active or not. Returns apperrors.ErrNotFound when absent.
	FindUnitByID(ctx context.Context, unitID string) (*domain.Unit, error)

	// ListUnits retrieves every active unit ordered by id.
	ListUnits(ctx context.Context) ([]domain.Unit, error)
}

// UnitWriter defines write operations for unit data
type UnitWriter interface {
	// CreateUnit allocates the next unit id and persists the unit under a serialized section.
	CreateUnit(ctx context.Context, unit domain.Unit) (*domain.Unit, error)

	// DeactivateUnit soft-deletes a unit. It returns false when the unit does not exist.
	DeactivateUnit(ctx context.Context, unitID string, deletedAt time.Time, deletedBy string) (bool, error)
}

// UnitRepositoryFacade combines all unit-related repository interfaces
type UnitRepositoryFacade interface {
	UnitReader
	UnitWriter
}
