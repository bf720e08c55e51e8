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

const registerColumns = `unit_id, register_id, number, status, last_opened_at, last_closed_at,
	accepts_cash, accepts_credit, accepts_debit, accepts_pix, accepts_voucher,
	is_active, deleted_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxRegisterRepository struct {
	BaseRepository
}

func newPgxRegisterRepository(pool *pgxpool.Pool) portsrepo.RegisterRepositoryFacade {
	return &PgxRegisterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RegisterRepositoryFacade = (*PgxRegisterRepository)(nil)

func (r *PgxRegisterRepository) findOne(ctx context.Context, where string, args ...any) (*domain.Register, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+registerColumns+` FROM registers WHERE `+where, args...)
	if err != nil {
		return nil, storeError("find register", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Register])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storeError("find register", err)
	}
	register := mapping.ToDomainRegister(row)
	return &register, nil
}

func (r *PgxRegisterRepository) FindRegisterByID(ctx context.Context, unitID, registerID string) (*domain.Register, error) {
	return r.findOne(ctx, `unit_id = $1 AND register_id = $2`, unitID, registerID)
}

func (r *PgxRegisterRepository) FindRegisterByNumber(ctx context.Context, unitID string, number int) (*domain.Register, error) {
	return r.findOne(ctx, `unit_id = $1 AND number = $2`, unitID, number)
}

func (r *PgxRegisterRepository) ListRegistersByUnit(ctx context.Context, unitID string) ([]domain.Register, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+registerColumns+` FROM registers WHERE unit_id = $1 AND is_active ORDER BY number`, unitID)
	if err != nil {
		return nil, storeError("list registers", err)
	}
	modelRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Register])
	if err != nil {
		return nil, storeError("list registers", err)
	}
	registers := make([]domain.Register, len(modelRows))
	for i, m := range modelRows {
		registers[i] = mapping.ToDomainRegister(m)
	}
	return registers, nil
}

// CreateRegister locks the unit row, checks it is active, allocates the next
// register id/number and inserts the register in the same transaction.
func (r *PgxRegisterRepository) CreateRegister(ctx context.Context, register domain.Register) (*domain.Register, error) {
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		var active bool
		err := tx.QueryRow(ctx, `SELECT is_active FROM units WHERE unit_id = $1 FOR UPDATE`, register.UnitID).Scan(&active)
		if errors.Is(err, pgx.ErrNoRows) || (err == nil && !active) {
			return apperrors.NewNotFoundError("Unidade não encontrada")
		}
		if err != nil {
			return err
		}

		ids, err := nextIDs(ctx, tx, `
			SELECT register_id FROM registers
			WHERE unit_id = $1 AND register_id ~ '^[0-9]+$'
			ORDER BY length(register_id) DESC, register_id DESC
			LIMIT 1`, domain.RegisterIDWidth, 1, register.UnitID)
		if err != nil {
			return err
		}
		register.RegisterID = ids[0]
		register.Number = domain.ParseSequence(ids[0])

		m := mapping.ToModelRegister(register)
		_, err = tx.Exec(ctx, `
			INSERT INTO registers (
				unit_id, register_id, number, status,
				accepts_cash, accepts_credit, accepts_debit, accepts_pix, accepts_voucher,
				is_active, created_at, created_by, last_updated_at, last_updated_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			m.UnitID, m.RegisterID, m.Number, m.Status,
			m.AcceptsCash, m.AcceptsCredit, m.AcceptsDebit, m.AcceptsPix, m.AcceptsVoucher,
			m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		return err
	})
	if err != nil {
		return nil, storeError("create register", err)
	}
	return &register, nil
}

func (r *PgxRegisterRepository) UpdateRegisterPaymentMethods(ctx context.Context, unitID, registerID string, methods domain.AcceptedPaymentMethods, updatedAt time.Time, updatedBy string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE registers
		SET accepts_cash = $3, accepts_credit = $4, accepts_debit = $5, accepts_pix = $6, accepts_voucher = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE unit_id = $1 AND register_id = $2`,
		unitID, registerID, methods.Cash, methods.Credit, methods.Debit, methods.Pix, methods.Voucher, updatedAt, updatedBy)
	if err != nil {
		return storeError("update register payment methods", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("Caixa não encontrado")
	}
	return nil
}

func (r *PgxRegisterRepository) UpdateRegisterStatus(ctx context.Context, unitID, registerID string, status domain.RegisterStatus, at time.Time, updatedBy string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE registers
		SET status = $3::text,
		    last_opened_at = CASE WHEN $3::text = 'aberto' THEN $4::timestamptz ELSE last_opened_at END,
		    last_closed_at = CASE WHEN $3::text = 'fechado' THEN $4::timestamptz ELSE last_closed_at END,
		    last_updated_at = $4, last_updated_by = $5
		WHERE unit_id = $1 AND register_id = $2`,
		unitID, registerID, string(status), at, updatedBy)
	if err != nil {
		return storeError("update register status", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("Caixa não encontrado")
	}
	return nil
}

func (r *PgxRegisterRepository) DeactivateRegister(ctx context.Context, unitID, registerID string, deletedAt time.Time, deletedBy string) (bool, error) {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE registers
		SET is_active = FALSE, deleted_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE unit_id = $1 AND register_id = $2`, unitID, registerID, deletedAt, deletedBy)
	if err != nil {
		return false, storeError("deactivate register", err)
	}
	return tag.RowsAffected() > 0, nil
}
