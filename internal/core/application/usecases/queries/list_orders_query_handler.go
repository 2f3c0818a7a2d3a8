package queries

import (
	"context"
	"encoding/json"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves order pages from the database.
// The count and the page itself run as two concurrent queries against the
// connection pool, so the pagination metadata and the rows come from the
// same request without doubling latency.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query, _ := NewListOrdersQuery(claims, 2, 20, "total", "asc", "created")
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d of %d orders\n", len(page.Orders), page.Pagination.Total)
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
// Returns the requested page scoped to the query's owner. A page beyond the
// last one returns an empty slice with the true total, not an error.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where := "WHERE owner_id = ?"
	args := []any{query.OwnerID().String()}
	if status, ok := query.StatusFilter(); ok {
		where += " AND status = ?"
		args = append(args, status)
	}

	// Sort column and direction come from the constructor's allow-list,
	// never from raw request input.
	pageSQL := fmt.Sprintf(`
		SELECT
			id,
			owner_id,
			items,
			total,
			status,
			created_at,
			updated_at
		FROM orders
		%s
		ORDER BY %s %s
		LIMIT ? OFFSET ?
	`, where, query.SortBy(), query.SortOrder())
	countSQL := "SELECT COUNT(*) FROM orders " + where

	var (
		orders []OrderResponse
		total  int
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		offset := (query.Page() - 1) * query.Limit()
		pageArgs := append(append([]any{}, args...), query.Limit(), offset)

		rows, err := h.db.WithContext(groupCtx).Raw(pageSQL, pageArgs...).Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		orders = make([]OrderResponse, 0)
		for rows.Next() {
			orderResp, scanErr := scanOrderRow(rows.Scan)
			if scanErr != nil {
				return scanErr
			}
			orders = append(orders, orderResp)
		}

		return rows.Err()
	})

	group.Go(func() error {
		return h.db.WithContext(groupCtx).Raw(countSQL, args...).Scan(&total).Error
	})

	if err := group.Wait(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	pages := total / query.Limit()
	if total%query.Limit() != 0 {
		pages++
	}

	return ListOrdersQueryResponse{
		Orders: orders,
		Pagination: Pagination{
			Page:  query.Page(),
			Limit: query.Limit(),
			Total: total,
			Pages: pages,
		},
	}, nil
}

// scanOrderRow maps one orders row onto the shared read model.
func scanOrderRow(scan func(dest ...any) error) (OrderResponse, error) {
	var (
		resp      OrderResponse
		id        uuid.UUID
		ownerID   uuid.UUID
		itemsJSON []byte
		status    int
	)

	if err := scan(
		&id,
		&ownerID,
		&itemsJSON,
		&resp.Total,
		&status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	owner, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.OwnerID = owner

	if err = json.Unmarshal(itemsJSON, &resp.Items); err != nil {
		return OrderResponse{}, err
	}
	resp.Status = order.Status(status)

	return resp, nil
}
