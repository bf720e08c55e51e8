package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/caixa_ledger/internal/apperrors"
	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/caixa_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/caixa_ledger/internal/core/ports/services"
	"github.com/SscSPs/caixa_ledger/internal/dto"
)

// MaxBatchSize bounds the number of movements accepted in one batch.
const MaxBatchSize = 500

const msgMovementNotFound = "Movimento não encontrado"

// movementService records and retrieves the financial movements of a register.
type movementService struct {
	BaseService
	unitRepo     portsrepo.UnitReader
	registerRepo portsrepo.RegisterReader
	movementRepo portsrepo.MovementRepositoryFacade
}

// NewMovementService creates a new MovementService.
func NewMovementService(unitRepo portsrepo.UnitReader, registerRepo portsrepo.RegisterReader, movementRepo portsrepo.MovementRepositoryFacade, opts ...Option) portssvc.MovementSvcFacade {
	svc := &movementService{
		unitRepo:     unitRepo,
		registerRepo: registerRepo,
		movementRepo: movementRepo,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.MovementSvcFacade = (*movementService)(nil)

// resolveUnit returns the active unit or a NotFound error.
func (s *movementService) resolveUnit(ctx context.Context, unitID string) (*domain.Unit, error) {
	unit, err := s.unitRepo.FindUnitByID(ctx, unitID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgUnitNotFound)
		}
		return nil, err
	}
	if !unit.IsActive {
		return nil, apperrors.NewNotFoundError(msgUnitNotFound)
	}
	return unit, nil
}

// resolveRegister looks ref up as a stored register id first and, when that finds
// nothing and ref is numeric, as a register number. Soft-deleted registers count as absent.
func (s *movementService) resolveRegister(ctx context.Context, unitID, ref string) (*domain.Register, error) {
	register, err := s.registerRepo.FindRegisterByID(ctx, unitID, ref)
	switch {
	case err == nil && register.IsActive:
		return register, nil
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		return nil, err
	}

	if number, convErr := strconv.Atoi(strings.TrimSpace(ref)); convErr == nil && number > 0 {
		register, err = s.registerRepo.FindRegisterByNumber(ctx, unitID, number)
		switch {
		case err == nil && register.IsActive:
			s.LogDebug(ctx, "Register resolved by number", slog.String("unit_id", unitID), slog.String("ref", ref))
			return register, nil
		case err != nil && !errors.Is(err, apperrors.ErrNotFound):
			return nil, err
		}
	}
	return nil, apperrors.NewNotFoundError(msgRegisterNotFound)
}

// resolve resolves the unit and then the register reference.
func (s *movementService) resolve(ctx context.Context, unitID, registerRef string) (*domain.Register, error) {
	if _, err := s.resolveUnit(ctx, unitID); err != nil {
		return nil, err
	}
	return s.resolveRegister(ctx, unitID, registerRef)
}

// buildMovement validates one request and turns it into a normalized movement.
// prefix locates the request inside a batch for error messages.
func (s *movementService) buildMovement(req dto.CreateMovementRequest, register *domain.Register, now time.Time, actorID, prefix string) (domain.Movement, error) {
	if err := validateStruct(req, prefix); err != nil {
		return domain.Movement{}, err
	}
	m := req.ToMovement(register.UnitID, register.RegisterID, now, actorID)
	if field, msg := m.Validate(); field != "" {
		return domain.Movement{}, apperrors.NewValidationError(prefix+field, msg)
	}
	return m, nil
}

func (s *movementService) CreateMovement(ctx context.Context, unitID, registerRef string, req dto.CreateMovementRequest, actorID string) (*dto.CreateMovementResponse, error) {
	register, err := s.resolve(ctx, unitID, registerRef)
	if err != nil {
		return nil, err
	}

	m, err := s.buildMovement(req, register, s.Now(), actorID, "")
	if err != nil {
		return nil, err
	}

	saved, err := s.movementRepo.SaveMovements(ctx, unitID, register.RegisterID, []domain.Movement{m})
	if err != nil {
		s.LogError(ctx, err, "Failed to save movement",
			slog.String("unit_id", unitID), slog.String("register_id", register.RegisterID))
		return nil, fmt.Errorf("failed to create movement: %w", err)
	}

	s.LogInfo(ctx, "Movement created",
		slog.String("unit_id", unitID),
		slog.String("register_id", register.RegisterID),
		slog.String("movement_id", saved[0].MovementID),
		slog.String("type", string(m.Type)))
	return &dto.CreateMovementResponse{ID: saved[0].MovementID}, nil
}

// CreateMovementsBatch resolves the unit and register once, validates every element
// and only then hands the whole set to the repository's atomic batch writer.
func (s *movementService) CreateMovementsBatch(ctx context.Context, unitID, registerRef string, reqs []dto.CreateMovementRequest, actorID string) (*dto.CreateMovementsBatchResponse, error) {
	if len(reqs) == 0 {
		return nil, apperrors.NewValidationError("movimentos", "o lote deve conter ao menos um movimento")
	}
	if len(reqs) > MaxBatchSize {
		return nil, apperrors.NewValidationError("movimentos", fmt.Sprintf("o lote excede o limite de %d movimentos", MaxBatchSize))
	}

	register, err := s.resolve(ctx, unitID, registerRef)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	movements := make([]domain.Movement, 0, len(reqs))
	for i, req := range reqs {
		m, err := s.buildMovement(req, register, now, actorID, fmt.Sprintf("movimentos[%d].", i))
		if err != nil {
			s.LogDebug(ctx, "Batch rejected before write", slog.Int("index", i), slog.String("error", err.Error()))
			return nil, err
		}
		movements = append(movements, m)
	}

	saved, err := s.movementRepo.SaveMovements(ctx, unitID, register.RegisterID, movements)
	if err != nil {
		s.LogError(ctx, err, "Failed to save movement batch",
			slog.String("unit_id", unitID),
			slog.String("register_id", register.RegisterID),
			slog.Int("count", len(movements)))
		return nil, fmt.Errorf("failed to create movement batch: %w", err)
	}

	s.LogInfo(ctx, "Movement batch created",
		slog.String("unit_id", unitID),
		slog.String("register_id", register.RegisterID),
		slog.Int("count", len(saved)))
	return &dto.CreateMovementsBatchResponse{Quantity: len(saved)}, nil
}

// ListMovements returns active movements, most recent first with the movement id as
// tie-break. An unresolved unit or register yields an empty list.
func (s *movementService) ListMovements(ctx context.Context, unitID, registerRef string, date *time.Time) ([]domain.Movement, error) {
	register, err := s.resolve(ctx, unitID, registerRef)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Movement{}, nil
		}
		return nil, fmt.Errorf("failed to resolve register: %w", err)
	}

	var from, to *time.Time
	if date != nil {
		day := domain.DayRange(*date)
		from, to = &day.Start, &day.End
	}

	movements, err := s.movementRepo.ListMovementsByRegister(ctx, unitID, register.RegisterID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list movements",
			slog.String("unit_id", unitID), slog.String("register_id", register.RegisterID))
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}

	active := make([]domain.Movement, 0, len(movements))
	for _, m := range movements {
		if m.IsActive {
			active = append(active, m)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		if !active[i].Timestamp.Equal(active[j].Timestamp) {
			return active[i].Timestamp.After(active[j].Timestamp)
		}
		return domain.CompareSequence(active[i].MovementID, active[j].MovementID) > 0
	})
	return active, nil
}

func (s *movementService) GetMovement(ctx context.Context, unitID, registerRef, movementID string) (*domain.Movement, error) {
	register, err := s.resolve(ctx, unitID, registerRef)
	if err != nil {
		return nil, err
	}
	m, err := s.movementRepo.FindMovementByID(ctx, unitID, register.RegisterID, movementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgMovementNotFound)
		}
		return nil, fmt.Errorf("failed to get movement %s: %w", movementID, err)
	}
	if !m.IsActive {
		return nil, apperrors.NewNotFoundError(msgMovementNotFound)
	}
	return m, nil
}

// DeleteMovement soft-deletes a movement. Unresolved parents count as a missing movement.
func (s *movementService) DeleteMovement(ctx context.Context, unitID, registerRef, movementID string, actorID string) (bool, error) {
	register, err := s.resolve(ctx, unitID, registerRef)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to resolve register: %w", err)
	}

	deleted, err := s.movementRepo.DeactivateMovement(ctx, unitID, register.RegisterID, movementID, s.Now(), domain.ActorOrSystem(actorID))
	if err != nil {
		s.LogError(ctx, err, "Failed to delete movement",
			slog.String("unit_id", unitID),
			slog.String("register_id", register.RegisterID),
			slog.String("movement_id", movementID))
		return false, fmt.Errorf("failed to delete movement %s: %w", movementID, err)
	}
	if deleted {
		s.LogInfo(ctx, "Movement deactivated",
			slog.String("unit_id", unitID),
			slog.String("register_id", register.RegisterID),
			slog.String("movement_id", movementID))
	}
	return deleted, nil
}
