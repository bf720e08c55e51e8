// Package memory is an in-process implementation of every repository port. It backs
// development mode (no PGSQL_URL) and the service tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/caixa_ledger/internal/apperrors"
	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/caixa_ledger/internal/core/ports/repositories"
)

// Store keeps the Unit -> Register -> Movement hierarchy plus the flat reference
// collections. A single mutex serializes every write, which makes id allocation
// and batch writes atomic.
type Store struct {
	mu         sync.RWMutex
	units      map[string]domain.Unit
	registers  map[string]map[string]domain.Register // unit id -> register id
	movements  map[registerKey]map[string]domain.Movement
	categories map[string]domain.ExpenseCategory
	methods    map[string]domain.PaymentMethod
}

type registerKey struct {
	unitID     string
	registerID string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		units:      make(map[string]domain.Unit),
		registers:  make(map[string]map[string]domain.Register),
		movements:  make(map[registerKey]map[string]domain.Movement),
		categories: make(map[string]domain.ExpenseCategory),
		methods:    make(map[string]domain.PaymentMethod),
	}
}

// NewRepositoryProvider exposes one store through every repository port.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UnitRepo:      store,
		RegisterRepo:  store,
		MovementRepo:  store,
		ReferenceRepo: store,
		ReportingRepo: store,
	}
}

var (
	_ portsrepo.UnitRepositoryFacade      = (*Store)(nil)
	_ portsrepo.RegisterRepositoryFacade  = (*Store)(nil)
	_ portsrepo.MovementRepositoryFacade  = (*Store)(nil)
	_ portsrepo.ReferenceRepositoryFacade = (*Store)(nil)
	_ portsrepo.ReportingRepository       = (*Store)(nil)
)

// --- units ---

func (s *Store) FindUnitByID(_ context.Context, unitID string) (*domain.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	unit, ok := s.units[unitID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &unit, nil
}

func (s *Store) ListUnits(_ context.Context) ([]domain.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	units := make([]domain.Unit, 0, len(s.units))
	for _, u := range s.units {
		if u.IsActive {
			units = append(units, u)
		}
	}
	sort.Slice(units, func(i, j int) bool { return domain.CompareSequence(units[i].UnitID, units[j].UnitID) < 0 })
	return units, nil
}

func (s *Store) CreateUnit(_ context.Context, unit domain.Unit) (*domain.Unit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing := make([]domain.Unit, 0, len(s.units))
	for _, u := range s.units {
		existing = append(existing, u)
	}
	unit.UnitID, _ = domain.NextSequence(existing, func(u domain.Unit) string { return u.UnitID }, domain.UnitIDWidth)
	s.units[unit.UnitID] = unit
	return &unit, nil
}

func (s *Store) DeactivateUnit(_ context.Context, unitID string, deletedAt time.Time, deletedBy string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	unit, ok := s.units[unitID]
	if !ok {
		return false, nil
	}
	unit.IsActive = false
	unit.DeletedAt = &deletedAt
	unit.LastUpdatedAt = deletedAt
	unit.LastUpdatedBy = deletedBy
	s.units[unitID] = unit
	return true, nil
}

// --- registers ---

func (s *Store) FindRegisterByID(_ context.Context, unitID, registerID string) (*domain.Register, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	register, ok := s.registers[unitID][registerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &register, nil
}

func (s *Store) FindRegisterByNumber(_ context.Context, unitID string, number int) (*domain.Register, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.registers[unitID] {
		if r.Number == number {
			return &r, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) ListRegistersByUnit(_ context.Context, unitID string) ([]domain.Register, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	registers := make([]domain.Register, 0, len(s.registers[unitID]))
	for _, r := range s.registers[unitID] {
		if r.IsActive {
			registers = append(registers, r)
		}
	}
	sort.Slice(registers, func(i, j int) bool { return registers[i].Number < registers[j].Number })
	return registers, nil
}

func (s *Store) CreateRegister(_ context.Context, register domain.Register) (*domain.Register, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	unit, ok := s.units[register.UnitID]
	if !ok || !unit.IsActive {
		return nil, apperrors.NewNotFoundError("Unidade não encontrada")
	}

	siblings := make([]domain.Register, 0, len(s.registers[register.UnitID]))
	for _, r := range s.registers[register.UnitID] {
		siblings = append(siblings, r)
	}
	register.RegisterID, register.Number = domain.NextSequence(siblings, func(r domain.Register) string { return r.RegisterID }, domain.RegisterIDWidth)

	if s.registers[register.UnitID] == nil {
		s.registers[register.UnitID] = make(map[string]domain.Register)
	}
	s.registers[register.UnitID][register.RegisterID] = register
	return &register, nil
}

// updateRegister applies fn to a stored register under the write lock.
func (s *Store) updateRegister(unitID, registerID string, fn func(*domain.Register)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	register, ok := s.registers[unitID][registerID]
	if !ok {
		return false
	}
	fn(&register)
	s.registers[unitID][registerID] = register
	return true
}

func (s *Store) UpdateRegisterPaymentMethods(_ context.Context, unitID, registerID string, methods domain.AcceptedPaymentMethods, updatedAt time.Time, updatedBy string) error {
	ok := s.updateRegister(unitID, registerID, func(r *domain.Register) {
		r.PaymentMethods = methods
		r.LastUpdatedAt = updatedAt
		r.LastUpdatedBy = updatedBy
	})
	if !ok {
		return apperrors.NewNotFoundError("Caixa não encontrado")
	}
	return nil
}

func (s *Store) UpdateRegisterStatus(_ context.Context, unitID, registerID string, status domain.RegisterStatus, at time.Time, updatedBy string) error {
	ok := s.updateRegister(unitID, registerID, func(r *domain.Register) {
		r.Status = status
		if status == domain.RegisterOpen {
			r.LastOpenedAt = &at
		} else {
			r.LastClosedAt = &at
		}
		r.LastUpdatedAt = at
		r.LastUpdatedBy = updatedBy
	})
	if !ok {
		return apperrors.NewNotFoundError("Caixa não encontrado")
	}
	return nil
}

func (s *Store) DeactivateRegister(_ context.Context, unitID, registerID string, deletedAt time.Time, deletedBy string) (bool, error) {
	return s.updateRegister(unitID, registerID, func(r *domain.Register) {
		r.IsActive = false
		r.DeletedAt = &deletedAt
		r.LastUpdatedAt = deletedAt
		r.LastUpdatedBy = deletedBy
	}), nil
}

// --- movements ---

func (s *Store) FindMovementByID(_ context.Context, unitID, registerID, movementID string) (*domain.Movement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.movements[registerKey{unitID, registerID}][movementID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &m, nil
}

func (s *Store) ListMovementsByRegister(_ context.Context, unitID, registerID string, from, to *time.Time) ([]domain.Movement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Movement, 0)
	for _, m := range s.movements[registerKey{unitID, registerID}] {
		if !m.IsActive {
			continue
		}
		if from != nil && m.Timestamp.Before(*from) {
			continue
		}
		if to != nil && m.Timestamp.After(*to) {
			continue
		}
		out = append(out, m)
	}
	sortMovementsDesc(out)
	return out, nil
}

// SaveMovements validates the parent and every movement, then allocates ids and
// inserts the whole set under one lock. Nothing is written when any check fails.
func (s *Store) SaveMovements(_ context.Context, unitID, registerID string, movements []domain.Movement) ([]domain.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	register, ok := s.registers[unitID][registerID]
	if !ok || !register.IsActive {
		return nil, apperrors.NewNotFoundError("Caixa não encontrado")
	}
	for _, m := range movements {
		if field, msg := m.Validate(); field != "" {
			return nil, apperrors.NewValidationError(field, msg)
		}
	}

	key := registerKey{unitID, registerID}
	existing := make([]domain.Movement, 0, len(s.movements[key]))
	for _, m := range s.movements[key] {
		existing = append(existing, m)
	}
	ids := domain.NextSequenceRange(existing, func(m domain.Movement) string { return m.MovementID }, domain.MovementIDWidth, len(movements))

	if s.movements[key] == nil {
		s.movements[key] = make(map[string]domain.Movement, len(movements))
	}
	saved := make([]domain.Movement, len(movements))
	for i, m := range movements {
		m.MovementID = ids[i]
		m.UnitID = unitID
		m.RegisterID = registerID
		s.movements[key][m.MovementID] = m
		saved[i] = m
	}
	return saved, nil
}

func (s *Store) DeactivateMovement(_ context.Context, unitID, registerID, movementID string, deletedAt time.Time, deletedBy string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := registerKey{unitID, registerID}
	m, ok := s.movements[key][movementID]
	if !ok {
		return false, nil
	}
	m.IsActive = false
	m.DeletedAt = &deletedAt
	m.DeletedBy = deletedBy
	m.LastUpdatedAt = deletedAt
	m.LastUpdatedBy = deletedBy
	s.movements[key][movementID] = m
	return true, nil
}

// --- reporting ---

func (s *Store) ListMovementsInPeriod(_ context.Context, unitID string, from, to time.Time) ([]domain.Movement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Movement, 0)
	for registerID, r := range s.registers[unitID] {
		if !r.IsActive {
			continue
		}
		for _, m := range s.movements[registerKey{unitID, registerID}] {
			if m.IsActive && !m.Timestamp.Before(from) && !m.Timestamp.After(to) {
				out = append(out, m)
			}
		}
	}
	sortMovementsDesc(out)
	return out, nil
}

func sortMovementsDesc(movements []domain.Movement) {
	sort.Slice(movements, func(i, j int) bool {
		if !movements[i].Timestamp.Equal(movements[j].Timestamp) {
			return movements[i].Timestamp.After(movements[j].Timestamp)
		}
		if movements[i].RegisterID != movements[j].RegisterID {
			return domain.CompareSequence(movements[i].RegisterID, movements[j].RegisterID) > 0
		}
		return domain.CompareSequence(movements[i].MovementID, movements[j].MovementID) > 0
	})
}
