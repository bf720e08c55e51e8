package services

import (
	"context"

	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	"github.com/SscSPs/caixa_ledger/internal/dto"
)

// UnitReaderSvc defines read operations for unit data
type UnitReaderSvc interface {
	// GetUnit returns an active unit or apperrors.ErrNotFound.
	GetUnit(ctx context.Context, unitID string) (*domain.Unit, error)

	// ListUnits returns every active unit ordered by id.
	ListUnits(ctx context.Context) ([]domain.Unit, error)
}

// UnitWriterSvc defines write operations for unit data
type UnitWriterSvc interface {
	// CreateUnit allocates the next sequential unit id and persists the unit.
	CreateUnit(ctx context.Context, req dto.CreateUnitRequest, actorID string) (*domain.Unit, error)

	// DeleteUnit soft-deletes a unit. It returns false when the unit does not exist.
	DeleteUnit(ctx context.Context, unitID string, actorID string) (bool, error)
}

// UnitSvcFacade combines all unit-related service interfaces
type UnitSvcFacade interface {
	UnitReaderSvc
	UnitWriterSvc
}
