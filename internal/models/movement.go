package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement is a row of the movements table.
type Movement struct {
	UnitID         string          `db:"unit_id"`
	RegisterID     string          `db:"register_id"`
	MovementID     string          `db:"movement_id"`
	MovementType   string          `db:"movement_type"`
	PaymentForm    string          `db:"payment_form"`
	Amount         decimal.Decimal `db:"amount"`
	Description    string          `db:"description"`
	ClientName     *string         `db:"client_name"`
	ClientDocument *string         `db:"client_document"`
	CategoryID     *string         `db:"category_id"`
	PaymentStatus  string          `db:"payment_status"`
	OccurredAt     time.Time       `db:"occurred_at"`
	IsActive       bool            `db:"is_active"`
	DeletedAt      *time.Time      `db:"deleted_at"`
	DeletedBy      *string         `db:"deleted_by"`
	AuditFields
}
