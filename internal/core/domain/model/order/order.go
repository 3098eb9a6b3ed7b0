package order

import (
	"errors"
	"sync"

	"shippingcost/internal/core/domain/model/kernel"
	"shippingcost/internal/core/domain/model/shipping"
	"shippingcost/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate whose shipping cost depends on its currently assigned
// pricing strategy.
//
// Order follows these invariants:
//   - It always holds exactly one non-nil shipping.Strategy
//   - id, price, weight and distance never change after construction
//   - Shipping cost, total and method name are derived on demand, never stored
//
// The strategy reference is guarded by a mutex so a single Order can be read
// and re-priced from several goroutines.
type Order struct {
	// id is an opaque, caller-supplied identifier
	id string

	// priceBeforeShipping is the value of the goods
	priceBeforeShipping decimal.Decimal

	// weightKg is the parcel weight in kilograms
	weightKg decimal.Decimal

	// distanceKm is the delivery distance in kilometers
	distanceKm decimal.Decimal

	mu       sync.RWMutex
	strategy shipping.Strategy

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an Order with its initial pricing strategy.
//
// Numeric fields are stored as given; only the strategy is checked. A nil
// strategy, or a nil pointer wrapped in the interface, yields
// errs.ValueIsRequiredError and no order.
//
// Example:
//
//	o, err := order.NewOrder("PED001", kernel.Money("120.50"), kernel.Money("2.2"),
//	    kernel.Money("150"), shipping.NewEconomy())
//	if err != nil {
//	    // strategy was missing
//	}
//	fmt.Println(o.ShippingMethodName(), o.CalculateShipping(), o.Total())
func NewOrder(
	id string,
	priceBeforeShipping, weightKg, distanceKm decimal.Decimal,
	initialStrategy shipping.Strategy,
) (*Order, error) {
	if shipping.IsMissing(initialStrategy) {
		return nil, errs.NewValueIsRequiredError("initialStrategy")
	}

	return &Order{
		id:                  id,
		priceBeforeShipping: priceBeforeShipping,
		weightKg:            weightKg,
		distanceKm:          distanceKm,
		strategy:            initialStrategy,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() string {
	return o.id
}

func (o *Order) PriceBeforeShipping() decimal.Decimal {
	return o.priceBeforeShipping
}

func (o *Order) WeightKg() decimal.Decimal {
	return o.weightKg
}

func (o *Order) DistanceKm() decimal.Decimal {
	return o.distanceKm
}

// Strategy returns the pricing strategy currently in effect.
func (o *Order) Strategy() shipping.Strategy {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.strategy
}

// SetStrategy replaces the pricing strategy. Every later call to
// CalculateShipping, Total and ShippingMethodName uses the new one; the
// previous strategy is not remembered.
//
// A nil strategy (typed nil pointers included) yields errs.ValueIsRequiredError
// and leaves the order unchanged.
func (o *Order) SetStrategy(strategy shipping.Strategy) error {
	if shipping.IsMissing(strategy) {
		return errs.NewValueIsRequiredError("strategy")
	}

	o.mu.Lock()
	o.strategy = strategy
	o.mu.Unlock()
	return nil
}

// CalculateShipping asks the current strategy for the shipping cost.
func (o *Order) CalculateShipping() decimal.Decimal {
	return o.Strategy().Calculate(o.weightKg, o.distanceKm, o.priceBeforeShipping)
}

// Total is the goods value plus shipping, rounded to kernel.MoneyPlaces.
func (o *Order) Total() decimal.Decimal {
	return kernel.RoundMoney(o.priceBeforeShipping.Add(o.CalculateShipping()))
}

// ShippingMethodName returns the display name of the current strategy.
func (o *Order) ShippingMethodName() string {
	return o.Strategy().Name()
}
