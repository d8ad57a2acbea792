package events

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalToMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		units    int64
		nanos    int32
	}{
		{name: "whole amount", amount: "190", currency: "KES", units: 190, nanos: 0},
		{name: "fractional amount", amount: "190.50", currency: "KES", units: 190, nanos: 500000000},
		{name: "small fraction", amount: "0.05", currency: "KES", units: 0, nanos: 50000000},
		{name: "zero", amount: "0", currency: "KES", units: 0, nanos: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)

			m := decimalToMoney(amount, tt.currency)

			assert.Equal(t, tt.currency, m.CurrencyCode)
			assert.Equal(t, tt.units, m.Units)
			assert.Equal(t, tt.nanos, m.Nanos)
		})
	}
}
