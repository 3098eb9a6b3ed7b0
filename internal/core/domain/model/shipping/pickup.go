package shipping

import "github.com/shopspring/decimal"

// Pickup means the customer collects the order; it never costs anything.
type Pickup struct{}

func NewPickup() Pickup {
	return Pickup{}
}

func (Pickup) Calculate(_, _, _ decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}

func (Pickup) Name() string {
	return "Store pickup (free)"
}

func (Pickup) Kind() Kind {
	return KindPickup
}
