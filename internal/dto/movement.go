package dto

import (
	"time"

	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMovementRequest defines the data needed to record a movement.
// Amount is a pointer so a missing value can be told apart from zero.
type CreateMovementRequest struct {
	Type           domain.MovementType  `json:"tipo" validate:"required"`
	PaymentForm    domain.PaymentForm   `json:"formaPagamento" validate:"required"`
	Amount         *decimal.Decimal     `json:"valor" validate:"required"`
	Description    string               `json:"descricao" validate:"max=500"`
	ClientName     string               `json:"cliente" validate:"max=200"`
	ClientDocument string               `json:"documento" validate:"max=40"`
	CategoryID     string               `json:"categoriaId"`
	PaymentStatus  domain.PaymentStatus `json:"statusPagamento"`
	Timestamp      *time.Time           `json:"timestamp"` // Optional: defaults to the creation instant
}

// ToMovement builds the domain movement for a request, leaving the id unassigned.
func (r CreateMovementRequest) ToMovement(unitID, registerID string, now time.Time, actorID string) domain.Movement {
	amount := decimal.Zero
	if r.Amount != nil {
		amount = *r.Amount
	}
	ts := now
	if r.Timestamp != nil {
		ts = r.Timestamp.UTC()
	}
	return domain.Movement{
		UnitID:         unitID,
		RegisterID:     registerID,
		Type:           r.Type,
		PaymentForm:    r.PaymentForm,
		Amount:         amount,
		Description:    r.Description,
		ClientName:     r.ClientName,
		ClientDocument: r.ClientDocument,
		CategoryID:     r.CategoryID,
		PaymentStatus:  domain.NormalizePaymentStatus(r.Type, r.PaymentStatus),
		Timestamp:      ts,
		IsActive:       true,
		AuditFields:    domain.NewAuditFields(now, actorID),
	}
}

// CreateMovementsBatchRequest carries the movements of one atomic batch.
type CreateMovementsBatchRequest struct {
	Movements []CreateMovementRequest `json:"movimentos"`
}

// CreateMovementResponse is returned after a single create.
type CreateMovementResponse struct {
	ID string `json:"id"`
}

// CreateMovementsBatchResponse is returned after a batch create.
type CreateMovementsBatchResponse struct {
	Quantity int `json:"quantidade"`
}

// ListMovementsParams defines query parameters for listing movements.
type ListMovementsParams struct {
	Date string `form:"data"` // YYYY-MM-DD, optional
}
