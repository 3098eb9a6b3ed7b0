package kernel

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places every monetary result is rounded to.
const MoneyPlaces int32 = 2

// RoundMoney rounds d to MoneyPlaces using round-half-away-from-zero,
// so 40.515 becomes 40.52 and -40.515 becomes -40.52.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// Money parses a literal amount. It panics on malformed input and is meant
// for rate constants and literals in tests.
func Money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
