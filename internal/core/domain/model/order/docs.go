// Package order provides the Order aggregate of the shipping cost service.
//
// The package includes:
//   - Order: the aggregate root holding the goods value, parcel weight, delivery
//     distance and the pricing strategy currently in effect
//
// Key business rules:
//   - An order always holds exactly one pricing strategy
//   - The strategy can be replaced at any time; later calculations use the new one
//   - Shipping cost, total and method name are derived on demand and never stored
//   - Numeric attributes are not validated by the aggregate
package order
