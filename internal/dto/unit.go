package dto

// CreateUnitRequest defines the data needed to create a unit.
type CreateUnitRequest struct {
	Name    string `json:"nome" validate:"required,max=120"`
	Address string `json:"endereco" validate:"max=250"`
	Phone   string `json:"telefone" validate:"max=30"`
}
