package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/caixa_ledger/internal/apperrors"
	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/caixa_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/caixa_ledger/internal/models"
	"github.com/SscSPs/caixa_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const unitColumns = `unit_id, name, address, phone, is_active, deleted_at, created_at, created_by, last_updated_at, last_updated_by`

// unitAllocationLock is the advisory lock key serializing unit id allocation.
const unitAllocationLock = `SELECT pg_advisory_xact_lock(hashtext('caixa_ledger.units'))`

type PgxUnitRepository struct {
	BaseRepository
}

func newPgxUnitRepository(pool *pgxpool.Pool) portsrepo.UnitRepositoryFacade {
	return &PgxUnitRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UnitRepositoryFacade = (*PgxUnitRepository)(nil)

func (r *PgxUnitRepository) FindUnitByID(ctx context.Context, unitID string) (*domain.Unit, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+unitColumns+` FROM units WHERE unit_id = $1`, unitID)
	if err != nil {
		return nil, storeError("find unit", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Unit])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storeError("find unit", err)
	}
	unit := mapping.ToDomainUnit(row)
	return &unit, nil
}

func (r *PgxUnitRepository) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+unitColumns+` FROM units WHERE is_active ORDER BY length(unit_id), unit_id`)
	if err != nil {
		return nil, storeError("list units", err)
	}
	rowsOut, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Unit])
	if err != nil {
		return nil, storeError("list units", err)
	}
	units := make([]domain.Unit, len(rowsOut))
	for i, m := range rowsOut {
		units[i] = mapping.ToDomainUnit(m)
	}
	return units, nil
}

// CreateUnit allocates the next unit id under a transaction-scoped advisory lock.
func (r *PgxUnitRepository) CreateUnit(ctx context.Context, unit domain.Unit) (*domain.Unit, error) {
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, unitAllocationLock); err != nil {
			return err
		}
		ids, err := nextIDs(ctx, tx, `
			SELECT unit_id FROM units
			WHERE unit_id ~ '^[0-9]+$'
			ORDER BY length(unit_id) DESC, unit_id DESC
			LIMIT 1`, domain.UnitIDWidth, 1)
		if err != nil {
			return err
		}
		unit.UnitID = ids[0]

		m := mapping.ToModelUnit(unit)
		_, err = tx.Exec(ctx, `
			INSERT INTO units (unit_id, name, address, phone, is_active, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			m.UnitID, m.Name, m.Address, m.Phone, m.IsActive,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		return err
	})
	if err != nil {
		return nil, storeError("create unit", err)
	}
	return &unit, nil
}

func (r *PgxUnitRepository) DeactivateUnit(ctx context.Context, unitID string, deletedAt time.Time, deletedBy string) (bool, error) {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE units
		SET is_active = FALSE, deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE unit_id = $1`, unitID, deletedAt, deletedBy)
	if err != nil {
		return false, storeError("deactivate unit", err)
	}
	return tag.RowsAffected() > 0, nil
}
