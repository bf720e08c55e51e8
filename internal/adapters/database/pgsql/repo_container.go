package pgsql

import (
	portsrepo "github.com/SscSPs/caixa_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UnitRepo:      newPgxUnitRepository(dbPool),
		RegisterRepo:  newPgxRegisterRepository(dbPool),
		MovementRepo:  newPgxMovementRepository(dbPool),
		ReferenceRepo: newPgxReferenceRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
