package events

import (
	"github.com/shopspring/decimal"
	"google.golang.org/genproto/googleapis/type/money"
)

// decimalToMoney converts a decimal amount into the proto money type.
func decimalToMoney(amount decimal.Decimal, currency string) *money.Money {
	units := amount.IntPart()
	nanos := amount.Sub(decimal.NewFromInt(units)).Mul(decimal.NewFromInt(1_000_000_000)).IntPart()
	return &money.Money{
		CurrencyCode: currency,
		Units:        units,
		Nanos:        int32(nanos),
	}
}
