package dto

import "github.com/SscSPs/caixa_ledger/internal/core/domain"

// CreateRegisterResponse is returned after a register is created.
type CreateRegisterResponse struct {
	ID     string `json:"id"`
	Number int    `json:"numero"`
}

// UpdateRegisterRequest is the only accepted register update: the payment methods.
// Any other field sent by the caller is ignored.
type UpdateRegisterRequest struct {
	PaymentMethods *domain.AcceptedPaymentMethods `json:"formasPagamento" binding:"required"`
}
