package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/caixa_ledger/internal/core/domain"
)

// RegisterReader defines read operations for register (caixa) data.
// Finders return soft-deleted registers too; callers decide visibility with IsActive.
type RegisterReader interface {
	// FindRegisterByID retrieves a register by its stored id. Returns apperrors.ErrNotFound when absent.
	FindRegisterByID(ctx context.Context, unitID, registerID string) (*domain.Register, error)

	// FindRegisterByNumber retrieves a register by its display number. Returns apperrors.ErrNotFound when absent.
	FindRegisterByNumber(ctx context.Context, unitID string, number int) (*domain.Register, error)

	// ListRegistersByUnit retrieves the active registers of a unit ordered by number.
	ListRegistersByUnit(ctx context.Context, unitID string) ([]domain.Register, error)
}

// RegisterWriter defines write operations for register data
type RegisterWriter interface {
	// CreateRegister checks the unit exists and is active, allocates the next id/number
	// and persists the register, all inside one serialized section per unit.
	CreateRegister(ctx context.Context, register domain.Register) (*domain.Register, error)

	// UpdateRegisterPaymentMethods replaces the accepted payment methods only.
	UpdateRegisterPaymentMethods(ctx context.Context, unitID, registerID string, methods domain.AcceptedPaymentMethods, updatedAt time.Time, updatedBy string) error

	// UpdateRegisterStatus sets status and the matching opened/closed timestamp.
	UpdateRegisterStatus(ctx context.Context, unitID, registerID string, status domain.RegisterStatus, at time.Time, updatedBy string) error

	// DeactivateRegister soft-deletes a register. It returns false when the register does not exist.
	DeactivateRegister(ctx context.Context, unitID, registerID string, deletedAt time.Time, deletedBy string) (bool, error)
}

// RegisterRepositoryFacade combines all register-related repository interfaces
type RegisterRepositoryFacade interface {
	RegisterReader
	RegisterWriter
}
