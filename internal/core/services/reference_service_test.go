package services_test

import (
	"testing"

	"github.com/SscSPs/caixa_ledger/internal/apperrors"
	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	"github.com/SscSPs/caixa_ledger/internal/dto"
	"github.com/stretchr/testify/suite"
)

type ReferenceServiceTestSuite struct {
	ledgerSuite
}

func TestReferenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReferenceServiceTestSuite))
}

func (s *ReferenceServiceTestSuite) TestUpsertDerivesSlugIDs() {
	categories, err := s.svc.Reference.UpsertExpenseCategories(s.ctx, dto.UpsertReferenceRequest{Items: []dto.ReferenceItem{
		{Name: "Aluguel do Imóvel", Type: "fixa"},
		{Name: "Manutenção"},
		{Name: "manutenção", Category: "operacional"},
	}}, "gerente")
	s.Require().NoError(err)
	s.Require().Len(categories, 2)
	s.Equal("aluguel-do-imovel", categories[0].ID)
	s.Equal("manutencao", categories[1].ID)
	s.Equal("operacional", categories[1].Category)

	got, err := s.svc.Reference.GetExpenseCategory(s.ctx, "manutencao")
	s.Require().NoError(err)
	s.Equal("manutenção", got.Name)
}

func (s *ReferenceServiceTestSuite) TestUpsertKeepsCreationAudit() {
	_, err := s.svc.Reference.UpsertPaymentMethods(s.ctx, dto.UpsertReferenceRequest{Items: []dto.ReferenceItem{{Name: "Pix"}}}, "gerente")
	s.Require().NoError(err)
	_, err = s.svc.Reference.UpsertPaymentMethods(s.ctx, dto.UpsertReferenceRequest{Items: []dto.ReferenceItem{{Name: "PIX", Type: "instantaneo"}}}, "supervisor")
	s.Require().NoError(err)

	method, err := s.svc.Reference.GetPaymentMethod(s.ctx, "pix")
	s.Require().NoError(err)
	s.Equal("instantaneo", method.Type)
	s.Equal("gerente", method.CreatedBy)
	s.Equal("supervisor", method.LastUpdatedBy)
}

func (s *ReferenceServiceTestSuite) TestUpsertValidation() {
	_, err := s.svc.Reference.UpsertExpenseCategories(s.ctx, dto.UpsertReferenceRequest{}, "")
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal("itens", apperrors.FieldOf(err))

	_, err = s.svc.Reference.UpsertExpenseCategories(s.ctx, dto.UpsertReferenceRequest{Items: []dto.ReferenceItem{{Name: "ok"}, {Name: ""}}}, "")
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal("itens[1].nome", apperrors.FieldOf(err))
}

func (s *ReferenceServiceTestSuite) TestDeleteReferencedCategoryConflicts() {
	_, err := s.svc.Reference.UpsertExpenseCategories(s.ctx, dto.UpsertReferenceRequest{Items: []dto.ReferenceItem{{Name: "Limpeza"}, {Name: "Energia"}}}, "")
	s.Require().NoError(err)

	unitID := s.createUnit("Centro")
	registerID := s.createRegister(unitID)
	id := s.record(unitID, registerID, saida("30", "limpeza", fixedNow))

	// Soft-deleted movements still hold the reference.
	_, err = s.svc.Movement.DeleteMovement(s.ctx, unitID, registerID, id, "")
	s.Require().NoError(err)

	err = s.svc.Reference.DeleteExpenseCategory(s.ctx, "limpeza")
	s.ErrorIs(err, apperrors.ErrConflict)

	s.NoError(s.svc.Reference.DeleteExpenseCategory(s.ctx, "energia"))
	s.ErrorIs(s.svc.Reference.DeleteExpenseCategory(s.ctx, "energia"), apperrors.ErrNotFound)
}

func (s *ReferenceServiceTestSuite) TestDeleteUsedPaymentMethodConflicts() {
	_, err := s.svc.Reference.UpsertPaymentMethods(s.ctx, dto.UpsertReferenceRequest{Items: []dto.ReferenceItem{{Name: "Débito"}, {Name: "Vale Refeição"}}}, "")
	s.Require().NoError(err)

	unitID := s.createUnit("Centro")
	registerID := s.createRegister(unitID)
	s.record(unitID, registerID, entrada(domain.Debito, "12", "", fixedNow))

	s.ErrorIs(s.svc.Reference.DeletePaymentMethod(s.ctx, "debito"), apperrors.ErrConflict)
	s.NoError(s.svc.Reference.DeletePaymentMethod(s.ctx, "vale-refeicao"))

	methods, err := s.svc.Reference.ListPaymentMethods(s.ctx)
	s.Require().NoError(err)
	s.Len(methods, 1)
}
