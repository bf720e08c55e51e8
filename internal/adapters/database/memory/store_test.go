package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/caixa_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/caixa_ledger/internal/apperrors"
	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
	now   time.Time
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.now = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
}

func (s *StoreTestSuite) createUnit() string {
	unit, err := s.store.CreateUnit(s.ctx, domain.Unit{Name: "Centro", IsActive: true})
	s.Require().NoError(err)
	return unit.UnitID
}

func (s *StoreTestSuite) createRegister(unitID string) *domain.Register {
	reg, err := s.store.CreateRegister(s.ctx, domain.Register{UnitID: unitID, IsActive: true})
	s.Require().NoError(err)
	return reg
}

func (s *StoreTestSuite) movement(amount int64) domain.Movement {
	return domain.Movement{
		Type:          domain.Entrada,
		PaymentForm:   domain.Pix,
		Amount:        decimal.NewFromInt(amount),
		PaymentStatus: domain.Realizado,
		Timestamp:     s.now,
		IsActive:      true,
	}
}

func (s *StoreTestSuite) TestUnitAndRegisterIDsAreSequential() {
	first := s.createUnit()
	second := s.createUnit()
	s.Equal("001", first)
	s.Equal("002", second)

	r1 := s.createRegister(first)
	r2 := s.createRegister(first)
	s.Equal("001", r1.RegisterID)
	s.Equal(1, r1.Number)
	s.Equal("002", r2.RegisterID)
	s.Equal(2, r2.Number)
}

func (s *StoreTestSuite) TestRegisterIDsAreNotReusedAfterSoftDelete() {
	unitID := s.createUnit()
	r1 := s.createRegister(unitID)
	s.createRegister(unitID)

	deleted, err := s.store.DeactivateRegister(s.ctx, unitID, "002", s.now, "tester")
	s.Require().NoError(err)
	s.True(deleted)

	r3 := s.createRegister(unitID)
	s.Equal("003", r3.RegisterID)

	active, err := s.store.ListRegistersByUnit(s.ctx, unitID)
	s.Require().NoError(err)
	s.Require().Len(active, 2)
	s.Equal(r1.RegisterID, active[0].RegisterID)
	s.Equal("003", active[1].RegisterID)
}

func (s *StoreTestSuite) TestCreateRegisterRequiresActiveUnit() {
	_, err := s.store.CreateRegister(s.ctx, domain.Register{UnitID: "999"})
	s.ErrorIs(err, apperrors.ErrNotFound)

	unitID := s.createUnit()
	_, err = s.store.DeactivateUnit(s.ctx, unitID, s.now, "tester")
	s.Require().NoError(err)
	_, err = s.store.CreateRegister(s.ctx, domain.Register{UnitID: unitID})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestSaveMovementsIsAllOrNothing() {
	unitID := s.createUnit()
	reg := s.createRegister(unitID)

	bad := s.movement(0)
	_, err := s.store.SaveMovements(s.ctx, unitID, reg.RegisterID, []domain.Movement{s.movement(10), bad})
	s.ErrorIs(err, apperrors.ErrValidation)

	list, err := s.store.ListMovementsByRegister(s.ctx, unitID, reg.RegisterID, nil, nil)
	s.Require().NoError(err)
	s.Empty(list)

	saved, err := s.store.SaveMovements(s.ctx, unitID, reg.RegisterID, []domain.Movement{s.movement(10), s.movement(20), s.movement(30)})
	s.Require().NoError(err)
	s.Equal([]string{"000001", "000002", "000003"}, []string{saved[0].MovementID, saved[1].MovementID, saved[2].MovementID})
}

func (s *StoreTestSuite) TestDeactivateMovementKeepsDocument() {
	unitID := s.createUnit()
	reg := s.createRegister(unitID)
	saved, err := s.store.SaveMovements(s.ctx, unitID, reg.RegisterID, []domain.Movement{s.movement(10)})
	s.Require().NoError(err)

	ok, err := s.store.DeactivateMovement(s.ctx, unitID, reg.RegisterID, saved[0].MovementID, s.now, "tester")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.store.DeactivateMovement(s.ctx, unitID, reg.RegisterID, "999999", s.now, "tester")
	s.Require().NoError(err)
	s.False(ok)

	m, err := s.store.FindMovementByID(s.ctx, unitID, reg.RegisterID, saved[0].MovementID)
	s.Require().NoError(err)
	s.False(m.IsActive)
	s.Equal("tester", m.DeletedBy)

	count, err := s.store.CountMovementsByPaymentForm(s.ctx, string(domain.Pix))
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *StoreTestSuite) TestListMovementsInPeriodSkipsInactiveRegisters() {
	unitID := s.createUnit()
	r1 := s.createRegister(unitID)
	r2 := s.createRegister(unitID)
	_, err := s.store.SaveMovements(s.ctx, unitID, r1.RegisterID, []domain.Movement{s.movement(10)})
	s.Require().NoError(err)
	_, err = s.store.SaveMovements(s.ctx, unitID, r2.RegisterID, []domain.Movement{s.movement(20)})
	s.Require().NoError(err)
	_, err = s.store.DeactivateRegister(s.ctx, unitID, r2.RegisterID, s.now, "tester")
	s.Require().NoError(err)

	list, err := s.store.ListMovementsInPeriod(s.ctx, unitID, domain.StartOfDay(s.now), domain.EndOfDay(s.now))
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(r1.RegisterID, list[0].RegisterID)
}

func (s *StoreTestSuite) TestDeleteReferenceIfUnused() {
	s.Require().NoError(s.store.UpsertExpenseCategories(s.ctx, []domain.ExpenseCategory{
		{ID: "limpeza", Name: "Limpeza", IsActive: true},
		{ID: "energia", Name: "Energia", IsActive: true},
	}))
	unitID := s.createUnit()
	reg := s.createRegister(unitID)
	expense := s.movement(30)
	expense.Type = domain.Saida
	expense.CategoryID = "limpeza"
	_, err := s.store.SaveMovements(s.ctx, unitID, reg.RegisterID, []domain.Movement{expense})
	s.Require().NoError(err)

	refs, err := s.store.DeleteExpenseCategoryIfUnused(s.ctx, "limpeza")
	s.Require().NoError(err)
	s.Equal(1, refs)
	_, err = s.store.FindExpenseCategoryByID(s.ctx, "limpeza")
	s.NoError(err, "a referenced category stays in place")

	refs, err = s.store.DeleteExpenseCategoryIfUnused(s.ctx, "energia")
	s.Require().NoError(err)
	s.Zero(refs)
	_, err = s.store.FindExpenseCategoryByID(s.ctx, "energia")
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.store.DeletePaymentMethodIfUnused(s.ctx, "vale")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestConcurrentSaveMovementsProducesGaplessIDs(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	unit, err := store.CreateUnit(ctx, domain.Unit{Name: "Centro", IsActive: true})
	require.NoError(t, err)
	reg, err := store.CreateRegister(ctx, domain.Register{UnitID: unit.UnitID, IsActive: true})
	require.NoError(t, err)

	const writers = 50
	var wg sync.WaitGroup
	ids := make(chan string, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			saved, err := store.SaveMovements(ctx, unit.UnitID, reg.RegisterID, []domain.Movement{{
				Type:          domain.Saida,
				PaymentForm:   domain.Dinheiro,
				Amount:        decimal.NewFromInt(1),
				PaymentStatus: domain.Realizado,
				IsActive:      true,
			}})
			if assert.NoError(t, err) {
				ids <- saved[0].MovementID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, writers)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	require.Len(t, seen, writers)
	for i := 1; i <= writers; i++ {
		assert.True(t, seen[domain.FormatSequence(i, domain.MovementIDWidth)])
	}
}
