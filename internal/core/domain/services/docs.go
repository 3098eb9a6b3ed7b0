// Package services provides domain services that operate on the shipping model
// but don't naturally belong to a single aggregate root.
//
// The package includes:
//   - QuoteComparer: prices an order under several strategies and can switch it
//     to the cheapest one
package services
