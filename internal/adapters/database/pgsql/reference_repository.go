package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/caixa_ledger/internal/apperrors"
	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/caixa_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/caixa_ledger/internal/models"
	"github.com/SscSPs/caixa_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const referenceColumns = `id, name, item_type, item_category, is_active, created_at, created_by, last_updated_at, last_updated_by`

const (
	expenseCategoriesTable = "expense_categories"
	paymentMethodsTable    = "payment_methods"
)

// PgxReferenceRepository stores expense categories and payment methods. Both tables
// share the same layout, so every operation is written once against a table name.
type PgxReferenceRepository struct {
	BaseRepository
}

func newPgxReferenceRepository(pool *pgxpool.Pool) portsrepo.ReferenceRepositoryFacade {
	return &PgxReferenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReferenceRepositoryFacade = (*PgxReferenceRepository)(nil)

func (r *PgxReferenceRepository) upsert(ctx context.Context, table string, items []models.ReferenceItem) error {
	// created_* are left out of the update set so existing rows keep them.
	query := `
		INSERT INTO ` + table + ` (` + referenceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			item_type = EXCLUDED.item_type,
			item_category = EXCLUDED.item_category,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by`

	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, it := range items {
			batch.Queue(query, it.ID, it.Name, it.Type, it.Category, it.IsActive,
				it.CreatedAt, it.CreatedBy, it.LastUpdatedAt, it.LastUpdatedBy)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return storeError("upsert "+table, err)
	}
	return nil
}

func (r *PgxReferenceRepository) find(ctx context.Context, table, id, notFound string) (*models.ReferenceItem, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+referenceColumns+` FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return nil, storeError("find "+table, err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.ReferenceItem])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(notFound)
		}
		return nil, storeError("find "+table, err)
	}
	return &row, nil
}

func (r *PgxReferenceRepository) list(ctx context.Context, table string) ([]models.ReferenceItem, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+referenceColumns+` FROM `+table+` ORDER BY name`)
	if err != nil {
		return nil, storeError("list "+table, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ReferenceItem])
	if err != nil {
		return nil, storeError("list "+table, err)
	}
	return items, nil
}

// referenceLockKey names the advisory lock guarding usage of a reference entry.
// SaveMovements holds it shared for every category and payment form it writes;
// deleteIfUnused holds it exclusively, so no movement can start referencing the
// entry between the usage count and the delete.
func referenceLockKey(table, id string) string {
	return "caixa_ledger." + table + ":" + id
}

func (r *PgxReferenceRepository) deleteIfUnused(ctx context.Context, table, id, notFound, usageColumn string) (int, error) {
	var refs int
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, referenceLockKey(table, id)); err != nil {
			return err
		}

		var exists bool
		err := tx.QueryRow(ctx, `SELECT TRUE FROM `+table+` WHERE id = $1 FOR UPDATE`, id).Scan(&exists)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError(notFound)
		}
		if err != nil {
			return err
		}

		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM movements WHERE `+usageColumn+` = $1`, id).Scan(&refs); err != nil {
			return err
		}
		if refs > 0 {
			return nil
		}
		_, err = tx.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
		return err
	})
	if err != nil {
		return 0, storeError("delete "+table, err)
	}
	return refs, nil
}

func (r *PgxReferenceRepository) UpsertExpenseCategories(ctx context.Context, categories []domain.ExpenseCategory) error {
	items := make([]models.ReferenceItem, len(categories))
	for i, c := range categories {
		items[i] = mapping.FromExpenseCategory(c)
	}
	return r.upsert(ctx, expenseCategoriesTable, items)
}

func (r *PgxReferenceRepository) FindExpenseCategoryByID(ctx context.Context, id string) (*domain.ExpenseCategory, error) {
	item, err := r.find(ctx, expenseCategoriesTable, id, "Categoria não encontrada")
	if err != nil {
		return nil, err
	}
	c := mapping.ToExpenseCategory(*item)
	return &c, nil
}

func (r *PgxReferenceRepository) ListExpenseCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	items, err := r.list(ctx, expenseCategoriesTable)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ExpenseCategory, len(items))
	for i, it := range items {
		out[i] = mapping.ToExpenseCategory(it)
	}
	return out, nil
}

func (r *PgxReferenceRepository) DeleteExpenseCategoryIfUnused(ctx context.Context, id string) (int, error) {
	return r.deleteIfUnused(ctx, expenseCategoriesTable, id, "Categoria não encontrada", "category_id")
}

func (r *PgxReferenceRepository) UpsertPaymentMethods(ctx context.Context, methods []domain.PaymentMethod) error {
	items := make([]models.ReferenceItem, len(methods))
	for i, m := range methods {
		items[i] = mapping.FromPaymentMethod(m)
	}
	return r.upsert(ctx, paymentMethodsTable, items)
}

func (r *PgxReferenceRepository) FindPaymentMethodByID(ctx context.Context, id string) (*domain.PaymentMethod, error) {
	item, err := r.find(ctx, paymentMethodsTable, id, "Forma de pagamento não encontrada")
	if err != nil {
		return nil, err
	}
	m := mapping.ToPaymentMethod(*item)
	return &m, nil
}

func (r *PgxReferenceRepository) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	items, err := r.list(ctx, paymentMethodsTable)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PaymentMethod, len(items))
	for i, it := range items {
		out[i] = mapping.ToPaymentMethod(it)
	}
	return out, nil
}

func (r *PgxReferenceRepository) DeletePaymentMethodIfUnused(ctx context.Context, id string) (int, error) {
	return r.deleteIfUnused(ctx, paymentMethodsTable, id, "Forma de pagamento não encontrada", "payment_form")
}

// CountMovementsByCategory includes soft-deleted movements.
func (r *PgxReferenceRepository) CountMovementsByCategory(ctx context.Context, categoryID string) (int, error) {
	var n int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM movements WHERE category_id = $1`, categoryID).Scan(&n); err != nil {
		return 0, storeError("count movements by category", err)
	}
	return n, nil
}

// CountMovementsByPaymentForm includes soft-deleted movements.
func (r *PgxReferenceRepository) CountMovementsByPaymentForm(ctx context.Context, form string) (int, error) {
	var n int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM movements WHERE payment_form = $1`, form).Scan(&n); err != nil {
		return 0, storeError("count movements by payment form", err)
	}
	return n, nil
}
