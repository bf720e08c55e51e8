package dto

// ReferenceItem is one expense category or payment method in a bulk upsert.
// The stored id is derived from Name.
type ReferenceItem struct {
	Name     string `json:"nome" validate:"required,max=120"`
	Type     string `json:"tipo" validate:"max=60"`
	Category string `json:"categoria" validate:"max=60"`
}

// UpsertReferenceRequest wraps a bulk upsert of reference data.
type UpsertReferenceRequest struct {
	Items []ReferenceItem `json:"itens" validate:"required,min=1,dive"`
}
