package pgsql

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/SscSPs/caixa_ledger/internal/apperrors"
	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/caixa_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/caixa_ledger/internal/models"
	"github.com/SscSPs/caixa_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const movementColumns = `unit_id, register_id, movement_id, movement_type, payment_form, amount, description,
	client_name, client_document, category_id, payment_status, occurred_at,
	is_active, deleted_at, deleted_by, created_at, created_by, last_updated_at, last_updated_by`

const insertMovementQuery = `
	INSERT INTO movements (
		unit_id, register_id, movement_id, movement_type, payment_form, amount, description,
		client_name, client_document, category_id, payment_status, occurred_at,
		is_active, created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

type PgxMovementRepository struct {
	BaseRepository
}

func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepositoryFacade {
	return &PgxMovementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MovementRepositoryFacade = (*PgxMovementRepository)(nil)

// SaveMovements is the batch writer. It locks the register row, allocates ids after
// the current maximum in slice order, queues every insert in one pgx.Batch and commits
// only when all of them succeeded.
func (r *PgxMovementRepository) SaveMovements(ctx context.Context, unitID, registerID string, movements []domain.Movement) ([]domain.Movement, error) {
	for _, m := range movements {
		if field, msg := m.Validate(); field != "" {
			return nil, apperrors.NewValidationError(field, msg)
		}
	}

	saved := make([]domain.Movement, len(movements))
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		var active bool
		err := tx.QueryRow(ctx, `
			SELECT is_active FROM registers
			WHERE unit_id = $1 AND register_id = $2
			FOR UPDATE`, unitID, registerID).Scan(&active)
		if errors.Is(err, pgx.ErrNoRows) || (err == nil && !active) {
			return apperrors.NewNotFoundError("Caixa não encontrado")
		}
		if err != nil {
			return err
		}

		for _, key := range referenceLockKeys(movements) {
			if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock_shared(hashtext($1))`, key); err != nil {
				return err
			}
		}

		ids, err := nextIDs(ctx, tx, `
			SELECT movement_id FROM movements
			WHERE unit_id = $1 AND register_id = $2 AND movement_id ~ '^[0-9]+$'
			ORDER BY length(movement_id) DESC, movement_id DESC
			LIMIT 1`, domain.MovementIDWidth, len(movements), unitID, registerID)
		if err != nil {
			return err
		}

		batch := &pgx.Batch{}
		for i, mov := range movements {
			mov.MovementID = ids[i]
			mov.UnitID = unitID
			mov.RegisterID = registerID
			saved[i] = mov

			m := mapping.ToModelMovement(mov)
			batch.Queue(insertMovementQuery,
				m.UnitID, m.RegisterID, m.MovementID, m.MovementType, m.PaymentForm, m.Amount, m.Description,
				m.ClientName, m.ClientDocument, m.CategoryID, m.PaymentStatus, m.OccurredAt,
				m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
			)
		}

		// Close reports the first failing command of the batch.
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return nil, storeError("save movements", err)
	}
	return saved, nil
}

// referenceLockKeys lists, sorted and without duplicates, the reference entries the
// movements point at.
func referenceLockKeys(movements []domain.Movement) []string {
	seen := make(map[string]struct{})
	for _, m := range movements {
		seen[referenceLockKey(paymentMethodsTable, string(m.PaymentForm))] = struct{}{}
		if m.CategoryID != "" {
			seen[referenceLockKey(expenseCategoriesTable, m.CategoryID)] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, unitID, registerID, movementID string) (*domain.Movement, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+movementColumns+` FROM movements
		WHERE unit_id = $1 AND register_id = $2 AND movement_id = $3`, unitID, registerID, movementID)
	if err != nil {
		return nil, storeError("find movement", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Movement])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storeError("find movement", err)
	}
	m := mapping.ToDomainMovement(row)
	return &m, nil
}

func (r *PgxMovementRepository) ListMovementsByRegister(ctx context.Context, unitID, registerID string, from, to *time.Time) ([]domain.Movement, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+movementColumns+` FROM movements
		WHERE unit_id = $1 AND register_id = $2 AND is_active
		  AND ($3::timestamptz IS NULL OR occurred_at >= $3)
		  AND ($4::timestamptz IS NULL OR occurred_at <= $4)
		ORDER BY occurred_at DESC, length(movement_id) DESC, movement_id DESC`, unitID, registerID, from, to)
	if err != nil {
		return nil, storeError("list movements", err)
	}
	modelRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Movement])
	if err != nil {
		return nil, storeError("list movements", err)
	}
	return mapping.ToDomainMovements(modelRows), nil
}

func (r *PgxMovementRepository) DeactivateMovement(ctx context.Context, unitID, registerID, movementID string, deletedAt time.Time, deletedBy string) (bool, error) {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE movements
		SET is_active = FALSE, deleted_at = $4, deleted_by = $5, last_updated_at = $4, last_updated_by = $5
		WHERE unit_id = $1 AND register_id = $2 AND movement_id = $3`,
		unitID, registerID, movementID, deletedAt, deletedBy)
	if err != nil {
		return false, storeError("deactivate movement", err)
	}
	return tag.RowsAffected() > 0, nil
}
