package domain_test

import (
	"strconv"
	"testing"

	"github.com/SscSPs/caixa_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNextSequence(t *testing.T) {
	byID := func(s string) string { return s }

	tests := []struct {
		name     string
		siblings []string
		width    int
		wantID   string
		wantNext int
	}{
		{name: "empty register collection", siblings: nil, width: domain.RegisterIDWidth, wantID: "001", wantNext: 1},
		{name: "empty movement collection", siblings: []string{}, width: domain.MovementIDWidth, wantID: "000001", wantNext: 1},
		{name: "max plus one", siblings: []string{"001", "003", "002"}, width: 3, wantID: "004", wantNext: 4},
		{name: "gaps are not reused", siblings: []string{"001", "009"}, width: 3, wantID: "010", wantNext: 10},
		{name: "malformed counts as zero", siblings: []string{"abc", "", "002"}, width: 3, wantID: "003", wantNext: 3},
		{name: "only malformed", siblings: []string{"x"}, width: 6, wantID: "000001", wantNext: 1},
		{name: "wider than width", siblings: []string{"999"}, width: 3, wantID: "1000", wantNext: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, next := domain.NextSequence(tt.siblings, byID, tt.width)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestNextSequence_RegisterNumbers(t *testing.T) {
	registers := []domain.Register{{RegisterID: "001", Number: 1}, {RegisterID: "007", Number: 7}}

	id, next := domain.NextSequence(registers, func(r domain.Register) string { return strconv.Itoa(r.Number) }, domain.RegisterIDWidth)

	assert.Equal(t, "008", id)
	assert.Equal(t, 8, next)
}

func TestNextSequenceRange(t *testing.T) {
	ids := domain.NextSequenceRange([]string{"000004"}, func(s string) string { return s }, domain.MovementIDWidth, 3)

	assert.Equal(t, []string{"000005", "000006", "000007"}, ids)
	assert.Empty(t, domain.NextSequenceRange([]string{}, func(s string) string { return s }, 6, 0))
}

func TestParseSequence(t *testing.T) {
	assert.Equal(t, 7, domain.ParseSequence("007"))
	assert.Equal(t, 0, domain.ParseSequence("-3"))
	assert.Equal(t, 0, domain.ParseSequence("7a"))
	assert.Equal(t, 12, domain.ParseSequence(" 12 "))
}

func TestCompareSequence(t *testing.T) {
	assert.Positive(t, domain.CompareSequence("1000000", "999999"))
	assert.Negative(t, domain.CompareSequence("999", "1000"))
	assert.Zero(t, domain.CompareSequence("007", "007"))
}
