package pgsql

import (
	"context"
	"errors"
	"strings"

	"github.com/SscSPs/caixa_ledger/internal/apperrors"
	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewStoreError("commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewStoreError("rollback transaction", err)
	}
	return nil
}

// WithTx runs fn inside a transaction and commits only when fn succeeds.
// Errors from fn are returned as they are; callers wrap store failures themselves.
func (r *BaseRepository) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op after a successful commit

	if err := fn(tx); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// storeError wraps err as a store failure unless it already belongs to the error taxonomy.
func storeError(op string, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) || errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrStore) {
		return err
	}
	return apperrors.NewStoreError(op, err)
}

// nextIDs allocates count sequential ids after the highest numeric id returned by
// highestQuery. Must run inside the transaction holding the parent lock.
func nextIDs(ctx context.Context, tx pgx.Tx, highestQuery string, width, count int, args ...any) ([]string, error) {
	var highest string
	err := tx.QueryRow(ctx, highestQuery, args...).Scan(&highest)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	return domain.NextSequenceRange([]string{highest}, func(s string) string { return s }, width, count), nil
}

// qualify prefixes every column of a comma separated list with alias.
func qualify(columns, alias string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
