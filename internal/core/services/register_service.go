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

const msgRegisterNotFound = "Caixa não encontrado"

// registerService manages the cash registers (caixas) of a unit.
type registerService struct {
	BaseService
	registerRepo portsrepo.RegisterRepositoryFacade
}

// NewRegisterService creates a new RegisterService.
func NewRegisterService(registerRepo portsrepo.RegisterRepositoryFacade, opts ...Option) portssvc.RegisterSvcFacade {
	svc := &registerService{registerRepo: registerRepo}
	svc.apply(opts)
	return svc
}

var _ portssvc.RegisterSvcFacade = (*registerService)(nil)

// CreateRegister creates a closed register accepting every payment method.
// The repository checks the unit and allocates id and number in one serialized step.
func (s *registerService) CreateRegister(ctx context.Context, unitID string, actorID string) (*dto.CreateRegisterResponse, error) {
	if strings.TrimSpace(unitID) == "" {
		return nil, apperrors.NewValidationError("unidadeId", "campo obrigatório")
	}

	register := domain.Register{
		UnitID:         unitID,
		Status:         domain.RegisterClosed,
		PaymentMethods: domain.AllPaymentMethods(),
		IsActive:       true,
		AuditFields:    domain.NewAuditFields(s.Now(), actorID),
	}
	created, err := s.registerRepo.CreateRegister(ctx, register)
	if err != nil {
		s.LogError(ctx, err, "Failed to create register", slog.String("unit_id", unitID))
		return nil, fmt.Errorf("failed to create register: %w", err)
	}

	s.LogInfo(ctx, "Register created",
		slog.String("unit_id", unitID),
		slog.String("register_id", created.RegisterID),
		slog.Int("number", created.Number))
	return &dto.CreateRegisterResponse{ID: created.RegisterID, Number: created.Number}, nil
}

func (s *registerService) ListRegisters(ctx context.Context, unitID string) ([]domain.Register, error) {
	registers, err := s.registerRepo.ListRegistersByUnit(ctx, unitID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list registers", slog.String("unit_id", unitID))
		return nil, fmt.Errorf("failed to list registers: %w", err)
	}
	if registers == nil {
		registers = []domain.Register{}
	}
	return registers, nil
}

func (s *registerService) GetRegister(ctx context.Context, unitID, registerID string) (*domain.Register, error) {
	register, err := s.registerRepo.FindRegisterByID(ctx, unitID, registerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get register %s: %w", registerID, err)
	}
	if !register.IsActive {
		return nil, nil
	}
	return register, nil
}

// findActive is GetRegister with absence reported as NotFound.
func (s *registerService) findActive(ctx context.Context, unitID, registerID string) (*domain.Register, error) {
	register, err := s.GetRegister(ctx, unitID, registerID)
	if err != nil {
		return nil, err
	}
	if register == nil {
		return nil, apperrors.NewNotFoundError(msgRegisterNotFound)
	}
	return register, nil
}

func (s *registerService) UpdateRegisterPaymentMethods(ctx context.Context, unitID, registerID string, methods domain.AcceptedPaymentMethods, actorID string) (*domain.Register, error) {
	register, err := s.findActive(ctx, unitID, registerID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	actor := domain.ActorOrSystem(actorID)
	if err := s.registerRepo.UpdateRegisterPaymentMethods(ctx, unitID, registerID, methods, now, actor); err != nil {
		s.LogError(ctx, err, "Failed to update register payment methods",
			slog.String("unit_id", unitID), slog.String("register_id", registerID))
		return nil, fmt.Errorf("failed to update register %s: %w", registerID, err)
	}

	register.PaymentMethods = methods
	register.LastUpdatedAt = now
	register.LastUpdatedBy = actor
	return register, nil
}

func (s *registerService) OpenRegister(ctx context.Context, unitID, registerID string, actorID string) (*domain.Register, error) {
	return s.setStatus(ctx, unitID, registerID, domain.RegisterOpen, actorID)
}

func (s *registerService) CloseRegister(ctx context.Context, unitID, registerID string, actorID string) (*domain.Register, error) {
	return s.setStatus(ctx, unitID, registerID, domain.RegisterClosed, actorID)
}

func (s *registerService) setStatus(ctx context.Context, unitID, registerID string, status domain.RegisterStatus, actorID string) (*domain.Register, error) {
	register, err := s.findActive(ctx, unitID, registerID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	actor := domain.ActorOrSystem(actorID)
	if err := s.registerRepo.UpdateRegisterStatus(ctx, unitID, registerID, status, now, actor); err != nil {
		s.LogError(ctx, err, "Failed to update register status",
			slog.String("unit_id", unitID), slog.String("register_id", registerID), slog.String("status", string(status)))
		return nil, fmt.Errorf("failed to update register %s: %w", registerID, err)
	}

	register.Status = status
	if status == domain.RegisterOpen {
		register.LastOpenedAt = &now
	} else {
		register.LastClosedAt = &now
	}
	register.LastUpdatedAt = now
	register.LastUpdatedBy = actor
	return register, nil
}

func (s *registerService) DeleteRegister(ctx context.Context, unitID, registerID string, actorID string) (bool, error) {
	deleted, err := s.registerRepo.DeactivateRegister(ctx, unitID, registerID, s.Now(), domain.ActorOrSystem(actorID))
	if err != nil {
		s.LogError(ctx, err, "Failed to delete register",
			slog.String("unit_id", unitID), slog.String("register_id", registerID))
		return false, fmt.Errorf("failed to delete register %s: %w", registerID, err)
	}
	if deleted {
		s.LogInfo(ctx, "Register deactivated", slog.String("unit_id", unitID), slog.String("register_id", registerID))
	}
	return deleted, nil
}
