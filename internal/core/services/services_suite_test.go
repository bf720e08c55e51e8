package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/caixa_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/caixa_ledger/internal/core/ports/services"
	"github.com/SscSPs/caixa_ledger/internal/core/services"
	"github.com/SscSPs/caixa_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// fixedNow is the clock every suite runs on: Monday 2024-01-15 12:00 UTC.
var fixedNow = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

// ledgerSuite wires every service to a fresh in-memory store.
type ledgerSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
	svc   *portssvc.ServiceContainer
}

func (s *ledgerSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.svc = services.NewServiceContainer(memory.NewRepositoryProvider(s.store),
		services.WithClock(func() time.Time { return fixedNow }))
}

func (s *ledgerSuite) createUnit(name string) string {
	unit, err := s.svc.Unit.CreateUnit(s.ctx, dto.CreateUnitRequest{Name: name}, "gerente")
	s.Require().NoError(err)
	return unit.UnitID
}

func (s *ledgerSuite) createRegister(unitID string) string {
	resp, err := s.svc.Register.CreateRegister(s.ctx, unitID, "gerente")
	s.Require().NoError(err)
	return resp.ID
}

func (s *ledgerSuite) record(unitID, registerRef string, req dto.CreateMovementRequest) string {
	resp, err := s.svc.Movement.CreateMovement(s.ctx, unitID, registerRef, req, "operador")
	s.Require().NoError(err)
	return resp.ID
}

func decimalPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func entrada(form domain.PaymentForm, amount string, status domain.PaymentStatus, at time.Time) dto.CreateMovementRequest {
	return dto.CreateMovementRequest{
		Type:          domain.Entrada,
		PaymentForm:   form,
		Amount:        decimalPtr(amount),
		PaymentStatus: status,
		Timestamp:     timePtr(at),
	}
}

func saida(amount string, categoryID string, at time.Time) dto.CreateMovementRequest {
	return dto.CreateMovementRequest{
		Type:        domain.Saida,
		PaymentForm: domain.Dinheiro,
		Amount:      decimalPtr(amount),
		CategoryID:  categoryID,
		Timestamp:   timePtr(at),
	}
}
