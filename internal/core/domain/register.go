package domain

import "time"

// RegisterStatus is informational only; movements do not depend on it.
type RegisterStatus string

const (
	RegisterOpen   RegisterStatus = "aberto"
	RegisterClosed RegisterStatus = "fechado"
)

// AcceptedPaymentMethods is the per-register configuration of payment methods.
type AcceptedPaymentMethods struct {
	Cash    bool `json:"dinheiro"`
	Credit  bool `json:"credito"`
	Debit   bool `json:"debito"`
	Pix     bool `json:"pix"`
	Voucher bool `json:"ticket"`
}

// AllPaymentMethods is the configuration given to every new register.
func AllPaymentMethods() AcceptedPaymentMethods {
	return AcceptedPaymentMethods{Cash: true, Credit: true, Debit: true, Pix: true, Voucher: true}
}

// Register (caixa) is a cash drawer belonging to exactly one unit.
// RegisterID and Number are allocated together from max(existing)+1 and never reused.
type Register struct {
	RegisterID     string                 `json:"id"`
	UnitID         string                 `json:"unidadeId"`
	Number         int                    `json:"numero"`
	Status         RegisterStatus         `json:"status"`
	LastOpenedAt   *time.Time             `json:"ultimaAbertura"`
	LastClosedAt   *time.Time             `json:"ultimoFechamento"`
	PaymentMethods AcceptedPaymentMethods `json:"formasPagamento"`
	IsActive       bool                   `json:"ativo"`
	DeletedAt      *time.Time             `json:"deletedAt,omitempty"`
	AuditFields
}
