package services

import (
	portsrepo "github.com/SscSPs/caixa_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/caixa_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, opts ...Option) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Unit:      NewUnitService(repos.UnitRepo, opts...),
		Register:  NewRegisterService(repos.RegisterRepo, opts...),
		Movement:  NewMovementService(repos.UnitRepo, repos.RegisterRepo, repos.MovementRepo, opts...),
		Reference: NewReferenceService(repos.ReferenceRepo, opts...),
		Reporting: NewReportingService(repos.UnitRepo, repos.ReportingRepo, opts...),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UnitSvcFacade      = (*unitService)(nil)
	_ portssvc.RegisterSvcFacade  = (*registerService)(nil)
	_ portssvc.MovementSvcFacade  = (*movementService)(nil)
	_ portssvc.ReferenceSvcFacade = (*referenceService)(nil)
	_ portssvc.ReportingService   = (*reportingService)(nil)
)
