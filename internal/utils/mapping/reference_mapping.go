package mapping

import (
	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	"github.com/SscSPs/caixa_ledger/internal/models"
)

// FromExpenseCategory converts a domain ExpenseCategory to a reference row
func FromExpenseCategory(d domain.ExpenseCategory) models.ReferenceItem {
	return models.ReferenceItem{ID: d.ID, Name: d.Name, Type: d.Type, Category: d.Category, IsActive: d.IsActive, AuditFields: ToModelAuditFields(d.AuditFields)}
}

// ToExpenseCategory converts a reference row to a domain ExpenseCategory
func ToExpenseCategory(m models.ReferenceItem) domain.ExpenseCategory {
	return domain.ExpenseCategory{ID: m.ID, Name: m.Name, Type: m.Type, Category: m.Category, IsActive: m.IsActive, AuditFields: ToDomainAuditFields(m.AuditFields)}
}

// FromPaymentMethod converts a domain PaymentMethod to a reference row
func FromPaymentMethod(d domain.PaymentMethod) models.ReferenceItem {
	return models.ReferenceItem{ID: d.ID, Name: d.Name, Type: d.Type, Category: d.Category, IsActive: d.IsActive, AuditFields: ToModelAuditFields(d.AuditFields)}
}

// ToPaymentMethod converts a reference row to a domain PaymentMethod
func ToPaymentMethod(m models.ReferenceItem) domain.PaymentMethod {
	return domain.PaymentMethod{ID: m.ID, Name: m.Name, Type: m.Type, Category: m.Category, IsActive: m.IsActive, AuditFields: ToDomainAuditFields(m.AuditFields)}
}
