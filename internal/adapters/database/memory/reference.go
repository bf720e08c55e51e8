package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/caixa_ledger/internal/apperrors"
	"github.com/SscSPs/caixa_ledger/internal/core/domain"
)

// Upserts keep the original creation audit fields of entries that already exist.

func (s *Store) UpsertExpenseCategories(_ context.Context, categories []domain.ExpenseCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range categories {
		if prev, ok := s.categories[c.ID]; ok {
			c.CreatedAt, c.CreatedBy = prev.CreatedAt, prev.CreatedBy
		}
		s.categories[c.ID] = c
	}
	return nil
}

func (s *Store) FindExpenseCategoryByID(_ context.Context, id string) (*domain.ExpenseCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("Categoria não encontrada")
	}
	return &c, nil
}

func (s *Store) ListExpenseCategories(_ context.Context) ([]domain.ExpenseCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ExpenseCategory, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) DeleteExpenseCategoryIfUnused(_ context.Context, id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return 0, apperrors.NewNotFoundError("Categoria não encontrada")
	}
	if refs := s.countMovementsLocked(func(m domain.Movement) bool { return m.CategoryID == id }); refs > 0 {
		return refs, nil
	}
	delete(s.categories, id)
	return 0, nil
}

func (s *Store) UpsertPaymentMethods(_ context.Context, methods []domain.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range methods {
		if prev, ok := s.methods[m.ID]; ok {
			m.CreatedAt, m.CreatedBy = prev.CreatedAt, prev.CreatedBy
		}
		s.methods[m.ID] = m
	}
	return nil
}

func (s *Store) FindPaymentMethodByID(_ context.Context, id string) (*domain.PaymentMethod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.methods[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("Forma de pagamento não encontrada")
	}
	return &m, nil
}

func (s *Store) ListPaymentMethods(_ context.Context) ([]domain.PaymentMethod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.PaymentMethod, 0, len(s.methods))
	for _, m := range s.methods {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) DeletePaymentMethodIfUnused(_ context.Context, id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.methods[id]; !ok {
		return 0, apperrors.NewNotFoundError("Forma de pagamento não encontrada")
	}
	if refs := s.countMovementsLocked(func(m domain.Movement) bool { return string(m.PaymentForm) == id }); refs > 0 {
		return refs, nil
	}
	delete(s.methods, id)
	return 0, nil
}

// CountMovementsByCategory scans every movement, soft-deleted ones included.
func (s *Store) CountMovementsByCategory(_ context.Context, categoryID string) (int, error) {
	return s.countMovements(func(m domain.Movement) bool { return m.CategoryID == categoryID }), nil
}

// CountMovementsByPaymentForm scans every movement, soft-deleted ones included.
func (s *Store) CountMovementsByPaymentForm(_ context.Context, form string) (int, error) {
	return s.countMovements(func(m domain.Movement) bool { return string(m.PaymentForm) == form }), nil
}

func (s *Store) countMovements(match func(domain.Movement) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countMovementsLocked(match)
}

// countMovementsLocked expects s.mu to be held.
func (s *Store) countMovementsLocked(match func(domain.Movement) bool) int {
	n := 0
	for _, byID := range s.movements {
		for _, m := range byID {
			if match(m) {
				n++
			}
		}
	}
	return n
}
