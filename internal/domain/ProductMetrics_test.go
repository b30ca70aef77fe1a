package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProductGroup(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOk bool
	}{
		{name: "Código nomeado em minúsculas", raw: "tapcare", want: ProductTapCare, wantOk: true},
		{name: "Código nomeado com sublinhado", raw: "isafe_cyber", want: ProductISafe, wantOk: true},
		{name: "Apelido OTHER", raw: "OTHER", want: ProductOther, wantOk: true},
		{name: "Apelido other em minúsculas", raw: "other", want: ProductOther, wantOk: true},
		{name: "Rótulo exato do grupo", raw: "Sản phẩm khác", want: ProductOther, wantOk: true},
		{name: "Código fora da lista nomeada", raw: "MOTOR", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseProductGroup(tt.raw)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
