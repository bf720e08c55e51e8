package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/caixa_ledger/internal/apperrors"
	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/caixa_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/caixa_ledger/internal/core/ports/services"
	"github.com/SscSPs/caixa_ledger/internal/dto"
	"github.com/SscSPs/caixa_ledger/internal/utils/slug"
)

// referenceService manages expense categories and payment methods.
type referenceService struct {
	BaseService
	repo portsrepo.ReferenceRepositoryFacade
}

// NewReferenceService creates a new reference-data service.
func NewReferenceService(repo portsrepo.ReferenceRepositoryFacade, opts ...Option) portssvc.ReferenceSvcFacade {
	svc := &referenceService{repo: repo}
	svc.apply(opts)
	return svc
}

var _ portssvc.ReferenceSvcFacade = (*referenceService)(nil)

// keyedItem is a validated reference item with its slug id.
type keyedItem struct {
	id string
	dto.ReferenceItem
}

// keyItems validates the request and derives ids. Items that slug to the same id
// collapse into the last one.
func keyItems(req dto.UpsertReferenceRequest) ([]keyedItem, error) {
	if err := validateStruct(req, ""); err != nil {
		return nil, err
	}
	index := make(map[string]int, len(req.Items))
	items := make([]keyedItem, 0, len(req.Items))
	for i, item := range req.Items {
		item.Name = strings.TrimSpace(item.Name)
		id := slug.Make(item.Name)
		if id == "" {
			return nil, apperrors.NewValidationError(fmt.Sprintf("itens[%d].nome", i), "nome sem caracteres válidos")
		}
		if pos, dup := index[id]; dup {
			items[pos] = keyedItem{id: id, ReferenceItem: item}
			continue
		}
		index[id] = len(items)
		items = append(items, keyedItem{id: id, ReferenceItem: item})
	}
	return items, nil
}

func (s *referenceService) UpsertExpenseCategories(ctx context.Context, req dto.UpsertReferenceRequest, actorID string) ([]domain.ExpenseCategory, error) {
	items, err := keyItems(req)
	if err != nil {
		return nil, err
	}

	audit := domain.NewAuditFields(s.Now(), actorID)
	categories := make([]domain.ExpenseCategory, len(items))
	for i, it := range items {
		categories[i] = domain.ExpenseCategory{ID: it.id, Name: it.Name, Type: it.Type, Category: it.Category, IsActive: true, AuditFields: audit}
	}
	if err := s.repo.UpsertExpenseCategories(ctx, categories); err != nil {
		s.LogError(ctx, err, "Failed to upsert expense categories", slog.Int("count", len(categories)))
		return nil, fmt.Errorf("failed to upsert expense categories: %w", err)
	}

	s.LogInfo(ctx, "Expense categories upserted", slog.Int("count", len(categories)))
	return categories, nil
}

func (s *referenceService) ListExpenseCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	categories, err := s.repo.ListExpenseCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense categories: %w", err)
	}
	return categories, nil
}

func (s *referenceService) GetExpenseCategory(ctx context.Context, id string) (*domain.ExpenseCategory, error) {
	category, err := s.repo.FindExpenseCategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense category %s: %w", id, err)
	}
	return category, nil
}

func (s *referenceService) DeleteExpenseCategory(ctx context.Context, id string) error {
	refs, err := s.repo.DeleteExpenseCategoryIfUnused(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete expense category", slog.String("category_id", id))
		}
		return fmt.Errorf("failed to delete expense category %s: %w", id, err)
	}
	if refs > 0 {
		return apperrors.NewConflictError(fmt.Sprintf("categoria em uso por %d movimento(s)", refs))
	}
	s.LogInfo(ctx, "Expense category deleted", slog.String("category_id", id))
	return nil
}

func (s *referenceService) UpsertPaymentMethods(ctx context.Context, req dto.UpsertReferenceRequest, actorID string) ([]domain.PaymentMethod, error) {
	items, err := keyItems(req)
	if err != nil {
		return nil, err
	}

	audit := domain.NewAuditFields(s.Now(), actorID)
	methods := make([]domain.PaymentMethod, len(items))
	for i, it := range items {
		methods[i] = domain.PaymentMethod{ID: it.id, Name: it.Name, Type: it.Type, Category: it.Category, IsActive: true, AuditFields: audit}
	}
	if err := s.repo.UpsertPaymentMethods(ctx, methods); err != nil {
		s.LogError(ctx, err, "Failed to upsert payment methods", slog.Int("count", len(methods)))
		return nil, fmt.Errorf("failed to upsert payment methods: %w", err)
	}

	s.LogInfo(ctx, "Payment methods upserted", slog.Int("count", len(methods)))
	return methods, nil
}

func (s *referenceService) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	methods, err := s.repo.ListPaymentMethods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return methods, nil
}

func (s *referenceService) GetPaymentMethod(ctx context.Context, id string) (*domain.PaymentMethod, error) {
	method, err := s.repo.FindPaymentMethodByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment method %s: %w", id, err)
	}
	return method, nil
}

func (s *referenceService) DeletePaymentMethod(ctx context.Context, id string) error {
	refs, err := s.repo.DeletePaymentMethodIfUnused(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete payment method", slog.String("payment_method_id", id))
		}
		return fmt.Errorf("failed to delete payment method %s: %w", id, err)
	}
	if refs > 0 {
		return apperrors.NewConflictError(fmt.Sprintf("forma de pagamento em uso por %d movimento(s)", refs))
	}
	s.LogInfo(ctx, "Payment method deleted", slog.String("payment_method_id", id))
	return nil
}
