package domain

import "time"

// Unit is a physical business location. Units own registers and are only ever
// soft-deleted.
type Unit struct {
	UnitID    string     `json:"id"`
	Name      string     `json:"nome"`
	Address   string     `json:"endereco"`
	Phone     string     `json:"telefone"`
	IsActive  bool       `json:"ativo"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	AuditFields
}
