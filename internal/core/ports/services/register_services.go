package services

import (
	"context"

	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	"github.com/SscSPs/caixa_ledger/internal/dto"
)

// RegisterReaderSvc defines read operations for register data
type RegisterReaderSvc interface {
	// ListRegisters returns the active registers of a unit by ascending number.
	// An unknown unit yields an empty list.
	ListRegisters(ctx context.Context, unitID string) ([]domain.Register, error)

	// GetRegister returns the register, or nil when it is absent or soft-deleted.
	GetRegister(ctx context.Context, unitID, registerID string) (*domain.Register, error)
}

// RegisterWriterSvc defines write operations for register data
type RegisterWriterSvc interface {
	// CreateRegister allocates the next register id/number under an existing unit.
	CreateRegister(ctx context.Context, unitID string, actorID string) (*dto.CreateRegisterResponse, error)

	// UpdateRegisterPaymentMethods replaces the accepted payment methods.
	UpdateRegisterPaymentMethods(ctx context.Context, unitID, registerID string, methods domain.AcceptedPaymentMethods, actorID string) (*domain.Register, error)

	// OpenRegister marks a register as open.
	OpenRegister(ctx context.Context, unitID, registerID string, actorID string) (*domain.Register, error)

	// CloseRegister marks a register as closed.
	CloseRegister(ctx context.Context, unitID, registerID string, actorID string) (*domain.Register, error)

	// DeleteRegister soft-deletes a register. It returns false when it does not exist.
	DeleteRegister(ctx context.Context, unitID, registerID string, actorID string) (bool, error)
}

// RegisterSvcFacade combines all register-related service interfaces
type RegisterSvcFacade interface {
	RegisterReaderSvc
	RegisterWriterSvc
}
