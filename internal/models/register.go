package models

import "time"

// Register is a row of the registers table. Accepted payment methods are stored
// as one boolean column per method.
type Register struct {
	UnitID         string     `db:"unit_id"`
	RegisterID     string     `db:"register_id"`
	Number         int        `db:"number"`
	Status         string     `db:"status"`
	LastOpenedAt   *time.Time `db:"last_opened_at"`
	LastClosedAt   *time.Time `db:"last_closed_at"`
	AcceptsCash    bool       `db:"accepts_cash"`
	AcceptsCredit  bool       `db:"accepts_credit"`
	AcceptsDebit   bool       `db:"accepts_debit"`
	AcceptsPix     bool       `db:"accepts_pix"`
	AcceptsVoucher bool       `db:"accepts_voucher"`
	IsActive       bool       `db:"is_active"`
	DeletedAt      *time.Time `db:"deleted_at"`
	AuditFields
}
