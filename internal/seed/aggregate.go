package seed

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/oc2pg/demoseed/internal/schema"
	"github.com/oc2pg/demoseed/internal/store"
)

// OrderTotaler derives a payment amount from an order's already-inserted
// items. The seeder uses the store-backed implementation; tests substitute an
// in-memory one.
type OrderTotaler interface {
	OrderTotal(ctx context.Context, orderID int) (Cents, error)
}

// AggregateComputer reads the committed order_items rows and sums
// quantity × unit_price in the database, null-safe: an order without items
// totals zero.
type AggregateComputer struct {
	store      *store.Store
	schemaName string
}

func NewAggregateComputer(s *store.Store, schemaName string) *AggregateComputer {
	return &AggregateComputer{store: s, schemaName: schemaName}
}

func (a *AggregateComputer) OrderTotal(ctx context.Context, orderID int) (Cents, error) {
	query, args, err := a.store.Builder().
		Select("COALESCE(SUM(quantity * unit_price), 0)").
		From(schema.QualifiedName(a.schemaName, "order_items")).
		Where(squirrel.Eq{"order_id": orderID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build order total query: %w", err)
	}

	var raw string
	if err := a.store.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		return 0, fmt.Errorf("failed to read total for order %d: %w", orderID, err)
	}
	total, err := ParseCents(raw)
	if err != nil {
		return 0, fmt.Errorf("unexpected total for order %d: %w", orderID, err)
	}
	return total, nil
}
