package slug_test

import (
	"testing"

	"github.com/SscSPs/caixa_ledger/internal/utils/slug"
	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"accents", "Cartão de Crédito", "cartao-de-credito"},
		{"already slug", "pix", "pix"},
		{"punctuation and spaces", "  Água, Luz & Telefone  ", "agua-luz-telefone"},
		{"digits", "Aluguel 2024", "aluguel-2024"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Make(tt.in))
		})
	}
}
