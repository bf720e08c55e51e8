package models

import "time"

// Unit is a row of the units table.
type Unit struct {
	UnitID    string     `db:"unit_id"`
	Name      string     `db:"name"`
	Address   string     `db:"address"`
	Phone     string     `db:"phone"`
	IsActive  bool       `db:"is_active"`
	DeletedAt *time.Time `db:"deleted_at"`
	AuditFields
}
