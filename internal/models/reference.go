package models

// ReferenceItem is a row of the expense_categories or payment_methods table.
// Both tables share the same columns.
type ReferenceItem struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Type     string `db:"item_type"`
	Category string `db:"item_category"`
	IsActive bool   `db:"is_active"`
	AuditFields
}
