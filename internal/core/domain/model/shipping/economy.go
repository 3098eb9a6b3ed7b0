package shipping

import (
	"shippingcost/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// economyTariff: 6.00 + 2.80/kg + 0.06/km + 1% of the order value.
var economyTariff = linearTariff{
	base:      kernel.Money("6.00"),
	perKg:     kernel.Money("2.80"),
	perKm:     kernel.Money("0.06"),
	priceRate: kernel.Money("0.01"),
}

// Economy is the cheaper, slower delivery option.
type Economy struct{}

func NewEconomy() Economy {
	return Economy{}
}

func (Economy) Calculate(weightKg, distanceKm, priceBeforeShipping decimal.Decimal) decimal.Decimal {
	return economyTariff.apply(weightKg, distanceKm, priceBeforeShipping)
}

func (Economy) Name() string {
	return "Economy"
}

func (Economy) Kind() Kind {
	return KindEconomy
}
