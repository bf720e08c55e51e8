package domain

// ExpenseCategory classifies saida movements. Its ID is the slug of its name.
type ExpenseCategory struct {
	ID       string `json:"id"`
	Name     string `json:"nome"`
	Type     string `json:"tipo"`
	Category string `json:"categoria"`
	IsActive bool   `json:"ativo"`
	AuditFields
}

// PaymentMethod classifies entrada movements. Its ID is the slug of its name and
// matches a PaymentForm value when the method is one of the built-in forms.
type PaymentMethod struct {
	ID       string `json:"id"`
	Name     string `json:"nome"`
	Type     string `json:"tipo"`
	Category string `json:"categoria"`
	IsActive bool   `json:"ativo"`
	AuditFields
}
