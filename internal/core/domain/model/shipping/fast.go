package shipping

import (
	"shippingcost/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// fastTariff: 12.00 + 4.50/kg + 0.10/km + 3% of the order value.
var fastTariff = linearTariff{
	base:      kernel.Money("12.00"),
	perKg:     kernel.Money("4.50"),
	perKm:     kernel.Money("0.10"),
	priceRate: kernel.Money("0.03"),
}

// Fast is the express delivery option: quickest and most expensive.
type Fast struct{}

func NewFast() Fast {
	return Fast{}
}

func (Fast) Calculate(weightKg, distanceKm, priceBeforeShipping decimal.Decimal) decimal.Decimal {
	return fastTariff.apply(weightKg, distanceKm, priceBeforeShipping)
}

func (Fast) Name() string {
	return "Fast (express)"
}

func (Fast) Kind() Kind {
	return KindFast
}
