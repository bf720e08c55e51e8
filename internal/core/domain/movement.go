package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tells income (entrada) from expense (saida).
type MovementType string

const (
	Entrada MovementType = "entrada"
	Saida   MovementType = "saida"
)

// IsValid reports whether t is one of the known movement types.
func (t MovementType) IsValid() bool {
	return t == Entrada || t == Saida
}

// PaymentForm is the fixed enumeration of payment forms accepted for entrada movements.
type PaymentForm string

const (
	Dinheiro PaymentForm = "dinheiro"
	Credito  PaymentForm = "credito"
	Debito   PaymentForm = "debito"
	Pix      PaymentForm = "pix"
	Ticket   PaymentForm = "ticket"
)

// PaymentForms lists every payment form in display order.
var PaymentForms = []PaymentForm{Dinheiro, Credito, Debito, Pix, Ticket}

// IsValid reports whether f belongs to the fixed payment form enumeration.
func (f PaymentForm) IsValid() bool {
	for _, known := range PaymentForms {
		if f == known {
			return true
		}
	}
	return false
}

// PaymentStatus is meaningful for entrada movements only; saida is always realizado.
type PaymentStatus string

const (
	Realizado PaymentStatus = "realizado"
	Pendente  PaymentStatus = "pendente"
)

// NormalizePaymentStatus forces realizado for saida movements and for any missing
// or unknown status.
func NormalizePaymentStatus(t MovementType, status PaymentStatus) PaymentStatus {
	if t == Saida {
		return Realizado
	}
	if status == Realizado || status == Pendente {
		return status
	}
	return Realizado
}

// Movement (movimento) is a single financial event belonging to exactly one register.
// Movements are never updated after creation; they can only be soft-deleted.
type Movement struct {
	MovementID     string          `json:"id"`
	UnitID         string          `json:"unidadeId"`
	RegisterID     string          `json:"caixaId"`
	Type           MovementType    `json:"tipo"`
	PaymentForm    PaymentForm     `json:"formaPagamento"`
	Amount         decimal.Decimal `json:"valor"`
	Description    string          `json:"descricao"`
	ClientName     string          `json:"cliente,omitempty"`
	ClientDocument string          `json:"documento,omitempty"`
	CategoryID     string          `json:"categoriaId,omitempty"`
	PaymentStatus  PaymentStatus   `json:"statusPagamento"`
	Timestamp      time.Time       `json:"timestamp"`
	IsActive       bool            `json:"ativo"`
	DeletedAt      *time.Time      `json:"deletedAt,omitempty"`
	DeletedBy      string          `json:"deletedBy,omitempty"`
	AuditFields
}

// IsRevenue reports whether m counts as settled income.
func (m Movement) IsRevenue() bool {
	return m.Type == Entrada && m.PaymentStatus == Realizado
}

// IsPending reports whether m is income still awaiting payment.
func (m Movement) IsPending() bool {
	return m.Type == Entrada && m.PaymentStatus == Pendente
}

// IsExpense reports whether m is an expense.
func (m Movement) IsExpense() bool {
	return m.Type == Saida
}

// AmountScale is the number of decimal places a movement amount may carry.
const AmountScale = 2

// maxAmount is the first value that no longer fits NUMERIC(18,2).
var maxAmount = decimal.New(1, 16)

// Validate checks the invariants every stored movement must hold.
// It returns the offending field name and a message, or empty strings when valid.
func (m Movement) Validate() (field string, message string) {
	if !m.Type.IsValid() {
		return "tipo", "deve ser entrada ou saida"
	}
	if m.PaymentForm == "" {
		return "formaPagamento", "campo obrigatório"
	}
	if m.Type == Entrada && !m.PaymentForm.IsValid() {
		return "formaPagamento", "forma de pagamento inválida: " + string(m.PaymentForm)
	}
	if !m.Amount.IsPositive() {
		return "valor", "deve ser maior que zero"
	}
	if !m.Amount.Equal(m.Amount.Round(AmountScale)) {
		return "valor", "no máximo 2 casas decimais"
	}
	if m.Amount.GreaterThanOrEqual(maxAmount) {
		return "valor", "valor acima do limite permitido"
	}
	return "", ""
}
