package utils

import (
	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatAmount formats an amount with the ledger's fixed precision.
// Example: 1000 returns "1000.00", 12.345 returns "12.35".
func FormatAmount(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, domain.AmountPrecision)
}

// FormatWithPrecision formats an amount with the given number of decimal places,
// keeping trailing zeros.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
