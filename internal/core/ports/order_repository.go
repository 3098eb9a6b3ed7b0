// Package ports defines the persistence contracts of the shipping domain.
// These interfaces decouple the application layer from infrastructure and
// make use cases testable with mocks.
package ports

import (
	"context"

	"shippingcost/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The order's current strategy is stored with it and restored on load.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, i.e. a replaced strategy.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetAll retrieves every order, ordered by identifier.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
