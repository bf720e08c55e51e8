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
)

const msgUnitNotFound = "Unidade não encontrada"

// unitService manages business locations.
type unitService struct {
	BaseService
	unitRepo portsrepo.UnitRepositoryFacade
}

// NewUnitService creates a new UnitService.
func NewUnitService(unitRepo portsrepo.UnitRepositoryFacade, opts ...Option) portssvc.UnitSvcFacade {
	svc := &unitService{unitRepo: unitRepo}
	svc.apply(opts)
	return svc
}

var _ portssvc.UnitSvcFacade = (*unitService)(nil)

func (s *unitService) CreateUnit(ctx context.Context, req dto.CreateUnitRequest, actorID string) (*domain.Unit, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(req, ""); err != nil {
		return nil, err
	}

	unit := domain.Unit{
		Name:        req.Name,
		Address:     strings.TrimSpace(req.Address),
		Phone:       strings.TrimSpace(req.Phone),
		IsActive:    true,
		AuditFields: domain.NewAuditFields(s.Now(), actorID),
	}
	created, err := s.unitRepo.CreateUnit(ctx, unit)
	if err != nil {
		s.LogError(ctx, err, "Failed to create unit", slog.String("name", unit.Name))
		return nil, fmt.Errorf("failed to create unit: %w", err)
	}

	s.LogInfo(ctx, "Unit created", slog.String("unit_id", created.UnitID))
	return created, nil
}

func (s *unitService) GetUnit(ctx context.Context, unitID string) (*domain.Unit, error) {
	unit, err := s.unitRepo.FindUnitByID(ctx, unitID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgUnitNotFound)
		}
		return nil, fmt.Errorf("failed to get unit %s: %w", unitID, err)
	}
	if !unit.IsActive {
		return nil, apperrors.NewNotFoundError(msgUnitNotFound)
	}
	return unit, nil
}

func (s *unitService) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	units, err := s.unitRepo.ListUnits(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list units")
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	return units, nil
}

func (s *unitService) DeleteUnit(ctx context.Context, unitID string, actorID string) (bool, error) {
	if strings.TrimSpace(unitID) == "" {
		return false, apperrors.NewValidationError("unidadeId", "campo obrigatório")
	}
	deleted, err := s.unitRepo.DeactivateUnit(ctx, unitID, s.Now(), domain.ActorOrSystem(actorID))
	if err != nil {
		s.LogError(ctx, err, "Failed to delete unit", slog.String("unit_id", unitID))
		return false, fmt.Errorf("failed to delete unit %s: %w", unitID, err)
	}
	if deleted {
		s.LogInfo(ctx, "Unit deactivated", slog.String("unit_id", unitID))
	}
	return deleted, nil
}
