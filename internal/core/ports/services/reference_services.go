package services

import (
	"context"

	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	"github.com/SscSPs/caixa_ledger/internal/dto"
)

// ExpenseCategorySvc manages expense categories.
type ExpenseCategorySvc interface {
	UpsertExpenseCategories(ctx context.Context, req dto.UpsertReferenceRequest, actorID string) ([]domain.ExpenseCategory, error)
	ListExpenseCategories(ctx context.Context) ([]domain.ExpenseCategory, error)
	GetExpenseCategory(ctx context.Context, id string) (*domain.ExpenseCategory, error)
	// DeleteExpenseCategory fails with apperrors.ErrConflict while any movement references it.
	DeleteExpenseCategory(ctx context.Context, id string) error
}

// PaymentMethodSvc manages payment methods.
type PaymentMethodSvc interface {
	UpsertPaymentMethods(ctx context.Context, req dto.UpsertReferenceRequest, actorID string) ([]domain.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	GetPaymentMethod(ctx context.Context, id string) (*domain.PaymentMethod, error)
	// DeletePaymentMethod fails with apperrors.ErrConflict while any movement references it.
	DeletePaymentMethod(ctx context.Context, id string) error
}

// ReferenceSvcFacade combines the reference-data service interfaces
type ReferenceSvcFacade interface {
	ExpenseCategorySvc
	PaymentMethodSvc
}
