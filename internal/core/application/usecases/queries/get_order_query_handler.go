package queries

import (
	"context"
	"database/sql"
	"errors"

	"orders/internal/core/domain/services"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
// Existence is checked before authorization, so an order that does not
// exist reports not-found to any caller, while an order the caller may not
// see reports forbidden rather than hiding its existence.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: policy}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when no such order exists and
// errs.AccessForbiddenError when the caller is neither the owner nor an
// admin.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			items,
			total,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	resp, err := scanOrderRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	if err = h.policy.Authorize(query.Actor(), resp.OwnerID, services.ActionRead); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}
