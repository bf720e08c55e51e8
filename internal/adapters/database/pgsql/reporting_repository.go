package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/caixa_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/caixa_ledger/internal/models"
	"github.com/SscSPs/caixa_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportingRepository implements the portsrepo.ReportingRepository interface
type ReportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &ReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*ReportingRepository)(nil)

// ListMovementsInPeriod reads the active movements of the unit's active registers.
func (r *ReportingRepository) ListMovementsInPeriod(ctx context.Context, unitID string, from, to time.Time) ([]domain.Movement, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+qualify(movementColumns, "m")+`
		FROM movements m
		JOIN registers r ON r.unit_id = m.unit_id AND r.register_id = m.register_id
		WHERE m.unit_id = $1
		  AND m.is_active AND r.is_active
		  AND m.occurred_at >= $2 AND m.occurred_at <= $3
		ORDER BY m.occurred_at DESC, length(m.register_id) DESC, m.register_id DESC,
		         length(m.movement_id) DESC, m.movement_id DESC`, unitID, from, to)
	if err != nil {
		return nil, storeError("list movements in period", err)
	}
	modelRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Movement])
	if err != nil {
		return nil, storeError("list movements in period", err)
	}
	return mapping.ToDomainMovements(modelRows), nil
}
