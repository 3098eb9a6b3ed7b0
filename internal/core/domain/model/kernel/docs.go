// Package kernel provides core domain primitives shared by the shipping model.
//
// The package includes:
//   - RoundMoney: rounding of monetary amounts to MoneyPlaces, half away from zero
//   - Money: parses decimal literals such as tariff rates
//
// All amounts and quantities are shopspring/decimal values; float64 is never
// used for money.
package kernel
