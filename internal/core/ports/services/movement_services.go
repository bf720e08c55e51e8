package services

import (
	"context"
	"time"

	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	"github.com/SscSPs/caixa_ledger/internal/dto"
)

// Every registerRef below is either a stored register id or its display number.

// MovementReaderSvc defines read operations for movement data
type MovementReaderSvc interface {
	// ListMovements returns the active movements of a register, most recent first,
	// optionally limited to one UTC calendar day. Unresolved references yield an empty list.
	ListMovements(ctx context.Context, unitID, registerRef string, date *time.Time) ([]domain.Movement, error)

	// GetMovement returns an active movement or apperrors.ErrNotFound.
	GetMovement(ctx context.Context, unitID, registerRef, movementID string) (*domain.Movement, error)
}

// MovementWriterSvc defines write operations for movement data
type MovementWriterSvc interface {
	// CreateMovement validates and records one movement.
	CreateMovement(ctx context.Context, unitID, registerRef string, req dto.CreateMovementRequest, actorID string) (*dto.CreateMovementResponse, error)

	// CreateMovementsBatch validates every movement first, then records all of them atomically.
	CreateMovementsBatch(ctx context.Context, unitID, registerRef string, reqs []dto.CreateMovementRequest, actorID string) (*dto.CreateMovementsBatchResponse, error)

	// DeleteMovement soft-deletes a movement. It returns false when it does not exist.
	DeleteMovement(ctx context.Context, unitID, registerRef, movementID string, actorID string) (bool, error)
}

// MovementSvcFacade combines all movement-related service interfaces
type MovementSvcFacade interface {
	MovementReaderSvc
	MovementWriterSvc
}
