package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount uint64
		want   string
	}{
		{0, "Rp0"},
		{500, "Rp500"},
		{1000, "Rp1.000"},
		{20000, "Rp20.000"},
		{150000, "Rp150.000"},
		{1250000, "Rp1.250.000"},
		{1000000000, "Rp1.000.000.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatRupiah(tt.amount))
	}
}
