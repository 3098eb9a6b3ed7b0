package services

import (
	"sort"

	"shippingcost/internal/core/domain/model/kernel"
	"shippingcost/internal/core/domain/model/order"
	"shippingcost/internal/core/domain/model/shipping"
	"shippingcost/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Quote is the price an order would have under one candidate strategy.
type Quote struct {
	Kind         shipping.Kind
	Name         string
	ShippingCost decimal.Decimal
	Total        decimal.Decimal
}

// QuoteComparer is a domain service that prices an order under several
// strategies and picks the cheapest one.
//
// Business rules:
//   - Orders must be valid before comparison
//   - Comparing never changes the order's current strategy
//   - Quotes are ordered by shipping cost; ties keep the candidates' order
//
// Example usage:
//
//	comparer := services.NewQuoteComparer()
//	quotes, err := comparer.Compare(o, shipping.All(kernel.Money("300")))
//	if err != nil {
//	    return err
//	}
//	fmt.Println("cheapest:", quotes[0].Name, quotes[0].Total)
type QuoteComparer struct{}

func NewQuoteComparer() QuoteComparer {
	return QuoteComparer{}
}

// pricedCandidate keeps a quote together with the strategy that produced it.
type pricedCandidate struct {
	strategy shipping.Strategy
	quote    Quote
}

// Compare returns one Quote per candidate, cheapest first.
func (c QuoteComparer) Compare(o *order.Order, candidates []shipping.Strategy) ([]Quote, error) {
	priced, err := c.price(o, candidates)
	if err != nil {
		return nil, err
	}

	quotes := make([]Quote, len(priced))
	for i, p := range priced {
		quotes[i] = p.quote
	}

	return quotes, nil
}

// ApplyCheapest switches the order to the cheapest candidate and returns its quote.
// The applied strategy is the exact candidate behind the returned quote, even
// when several candidates share a kind.
func (c QuoteComparer) ApplyCheapest(o *order.Order, candidates []shipping.Strategy) (Quote, error) {
	priced, err := c.price(o, candidates)
	if err != nil {
		return Quote{}, err
	}

	cheapest := priced[0]
	if err = o.SetStrategy(cheapest.strategy); err != nil {
		return Quote{}, err
	}

	return cheapest.quote, nil
}

func (c QuoteComparer) price(o *order.Order, candidates []shipping.Strategy) ([]pricedCandidate, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		return nil, errs.NewValueIsRequiredError("candidate strategies")
	}

	priced := make([]pricedCandidate, 0, len(candidates))
	for _, s := range candidates {
		if shipping.IsMissing(s) {
			return nil, errs.NewValueIsRequiredError("candidate strategy")
		}

		cost := s.Calculate(o.WeightKg(), o.DistanceKm(), o.PriceBeforeShipping())
		priced = append(priced, pricedCandidate{
			strategy: s,
			quote: Quote{
				Kind:         s.Kind(),
				Name:         s.Name(),
				ShippingCost: cost,
				Total:        kernel.RoundMoney(o.PriceBeforeShipping().Add(cost)),
			},
		})
	}

	sort.SliceStable(priced, func(i, j int) bool {
		return priced[i].quote.ShippingCost.LessThan(priced[j].quote.ShippingCost)
	})

	return priced, nil
}
