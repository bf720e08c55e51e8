package mapping

import (
	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	"github.com/SscSPs/caixa_ledger/internal/models"
)

// ToModelUnit converts a domain Unit to a model Unit
func ToModelUnit(d domain.Unit) models.Unit {
	return models.Unit{
		UnitID:      d.UnitID,
		Name:        d.Name,
		Address:     d.Address,
		Phone:       d.Phone,
		IsActive:    d.IsActive,
		DeletedAt:   d.DeletedAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUnit converts a model Unit to a domain Unit
func ToDomainUnit(m models.Unit) domain.Unit {
	return domain.Unit{
		UnitID:      m.UnitID,
		Name:        m.Name,
		Address:     m.Address,
		Phone:       m.Phone,
		IsActive:    m.IsActive,
		DeletedAt:   m.DeletedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelRegister converts a domain Register to a model Register
func ToModelRegister(d domain.Register) models.Register {
	return models.Register{
		UnitID:         d.UnitID,
		RegisterID:     d.RegisterID,
		Number:         d.Number,
		Status:         string(d.Status),
		LastOpenedAt:   d.LastOpenedAt,
		LastClosedAt:   d.LastClosedAt,
		AcceptsCash:    d.PaymentMethods.Cash,
		AcceptsCredit:  d.PaymentMethods.Credit,
		AcceptsDebit:   d.PaymentMethods.Debit,
		AcceptsPix:     d.PaymentMethods.Pix,
		AcceptsVoucher: d.PaymentMethods.Voucher,
		IsActive:       d.IsActive,
		DeletedAt:      d.DeletedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRegister converts a model Register to a domain Register
func ToDomainRegister(m models.Register) domain.Register {
	return domain.Register{
		UnitID:       m.UnitID,
		RegisterID:   m.RegisterID,
		Number:       m.Number,
		Status:       domain.RegisterStatus(m.Status),
		LastOpenedAt: m.LastOpenedAt,
		LastClosedAt: m.LastClosedAt,
		PaymentMethods: domain.AcceptedPaymentMethods{
			Cash:    m.AcceptsCash,
			Credit:  m.AcceptsCredit,
			Debit:   m.AcceptsDebit,
			Pix:     m.AcceptsPix,
			Voucher: m.AcceptsVoucher,
		},
		IsActive:    m.IsActive,
		DeletedAt:   m.DeletedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelMovement converts a domain Movement to a model Movement
func ToModelMovement(d domain.Movement) models.Movement {
	return models.Movement{
		UnitID:         d.UnitID,
		RegisterID:     d.RegisterID,
		MovementID:     d.MovementID,
		MovementType:   string(d.Type),
		PaymentForm:    string(d.PaymentForm),
		Amount:         d.Amount,
		Description:    d.Description,
		ClientName:     nullable(d.ClientName),
		ClientDocument: nullable(d.ClientDocument),
		CategoryID:     nullable(d.CategoryID),
		PaymentStatus:  string(d.PaymentStatus),
		OccurredAt:     d.Timestamp,
		IsActive:       d.IsActive,
		DeletedAt:      d.DeletedAt,
		DeletedBy:      nullable(d.DeletedBy),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMovement converts a model Movement to a domain Movement
func ToDomainMovement(m models.Movement) domain.Movement {
	return domain.Movement{
		MovementID:     m.MovementID,
		UnitID:         m.UnitID,
		RegisterID:     m.RegisterID,
		Type:           domain.MovementType(m.MovementType),
		PaymentForm:    domain.PaymentForm(m.PaymentForm),
		Amount:         m.Amount,
		Description:    m.Description,
		ClientName:     deref(m.ClientName),
		ClientDocument: deref(m.ClientDocument),
		CategoryID:     deref(m.CategoryID),
		PaymentStatus:  domain.PaymentStatus(m.PaymentStatus),
		Timestamp:      m.OccurredAt.UTC(),
		IsActive:       m.IsActive,
		DeletedAt:      m.DeletedAt,
		DeletedBy:      deref(m.DeletedBy),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMovements converts a slice of model movements
func ToDomainMovements(ms []models.Movement) []domain.Movement {
	out := make([]domain.Movement, len(ms))
	for i, m := range ms {
		out[i] = ToDomainMovement(m)
	}
	return out
}
