package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/caixa_ledger/internal/core/domain"
)

// ReportingRepository defines operations for retrieving report input data
type ReportingRepository interface {
	// ListMovementsInPeriod retrieves the active movements of the active registers of a unit
	// whose timestamp falls inside the inclusive [from, to] window.
	ListMovementsInPeriod(ctx context.Context, unitID string, from, to time.Time) ([]domain.Movement, error)
}
