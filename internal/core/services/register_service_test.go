package services_test

import (
	"testing"

	"github.com/SscSPs/caixa_ledger/internal/apperrors"
	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	"github.com/SscSPs/caixa_ledger/internal/dto"
	"github.com/stretchr/testify/suite"
)

type RegisterServiceTestSuite struct {
	ledgerSuite
}

func TestRegisterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegisterServiceTestSuite))
}

func (s *RegisterServiceTestSuite) TestUnitIDsAreSequential() {
	s.Equal("001", s.createUnit("Centro"))
	s.Equal("002", s.createUnit("Shopping"))

	_, err := s.svc.Unit.CreateUnit(s.ctx, dto.CreateUnitRequest{Name: "   "}, "")
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal("nome", apperrors.FieldOf(err))
}

func (s *RegisterServiceTestSuite) TestCreateRegisterDefaults() {
	unitID := s.createUnit("Centro")

	resp, err := s.svc.Register.CreateRegister(s.ctx, unitID, "gerente")
	s.Require().NoError(err)
	s.Equal("001", resp.ID)
	s.Equal(1, resp.Number)

	register, err := s.svc.Register.GetRegister(s.ctx, unitID, resp.ID)
	s.Require().NoError(err)
	s.Require().NotNil(register)
	s.Equal(domain.RegisterClosed, register.Status)
	s.Equal(domain.AllPaymentMethods(), register.PaymentMethods)
	s.Equal("gerente", register.CreatedBy)
}

func (s *RegisterServiceTestSuite) TestCreateRegisterRequiresActiveUnit() {
	_, err := s.svc.Register.CreateRegister(s.ctx, "404", "")
	s.ErrorIs(err, apperrors.ErrNotFound)

	unitID := s.createUnit("Centro")
	_, err = s.svc.Unit.DeleteUnit(s.ctx, unitID, "")
	s.Require().NoError(err)
	_, err = s.svc.Register.CreateRegister(s.ctx, unitID, "")
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.svc.Unit.GetUnit(s.ctx, unitID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RegisterServiceTestSuite) TestNumbersAreNotReusedAfterDelete() {
	unitID := s.createUnit("Centro")
	s.createRegister(unitID)
	second := s.createRegister(unitID)

	deleted, err := s.svc.Register.DeleteRegister(s.ctx, unitID, second, "")
	s.Require().NoError(err)
	s.True(deleted)

	resp, err := s.svc.Register.CreateRegister(s.ctx, unitID, "")
	s.Require().NoError(err)
	s.Equal("003", resp.ID)
	s.Equal(3, resp.Number)

	registers, err := s.svc.Register.ListRegisters(s.ctx, unitID)
	s.Require().NoError(err)
	s.Require().Len(registers, 2)
	s.Equal(1, registers[0].Number)
	s.Equal(3, registers[1].Number)

	gone, err := s.svc.Register.GetRegister(s.ctx, unitID, second)
	s.NoError(err)
	s.Nil(gone)
}

func (s *RegisterServiceTestSuite) TestUpdateOnlyTouchesPaymentMethods() {
	unitID := s.createUnit("Centro")
	registerID := s.createRegister(unitID)

	methods := domain.AcceptedPaymentMethods{Cash: true, Pix: true}
	updated, err := s.svc.Register.UpdateRegisterPaymentMethods(s.ctx, unitID, registerID, methods, "supervisor")
	s.Require().NoError(err)
	s.Equal(methods, updated.PaymentMethods)

	stored, err := s.svc.Register.GetRegister(s.ctx, unitID, registerID)
	s.Require().NoError(err)
	s.Equal(methods, stored.PaymentMethods)
	s.Equal(1, stored.Number)
	s.Equal(domain.RegisterClosed, stored.Status)
	s.Equal("supervisor", stored.LastUpdatedBy)
	s.Equal("gerente", stored.CreatedBy)

	_, err = s.svc.Register.UpdateRegisterPaymentMethods(s.ctx, unitID, "999", methods, "")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RegisterServiceTestSuite) TestOpenAndClose() {
	unitID := s.createUnit("Centro")
	registerID := s.createRegister(unitID)

	opened, err := s.svc.Register.OpenRegister(s.ctx, unitID, registerID, "operador")
	s.Require().NoError(err)
	s.Equal(domain.RegisterOpen, opened.Status)
	s.Require().NotNil(opened.LastOpenedAt)
	s.Equal(fixedNow, *opened.LastOpenedAt)

	closed, err := s.svc.Register.CloseRegister(s.ctx, unitID, registerID, "operador")
	s.Require().NoError(err)
	s.Equal(domain.RegisterClosed, closed.Status)
	s.Require().NotNil(closed.LastClosedAt)

	// Status does not gate movements.
	s.record(unitID, registerID, entrada(domain.Pix, "1", "", fixedNow))
}
