package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/identity"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

const (
	defaultPage  = 1
	defaultLimit = 10

	// SortByCreatedAt is the default sort column.
	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"
	SortByTotal     = "total"
	SortByStatus    = "status"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// validSortFields is the allow-list of sortable columns. Anything outside
// it silently falls back to created_at, so callers cannot inject arbitrary
// column names into the generated SQL.
var validSortFields = map[string]struct{}{
	SortByCreatedAt: {},
	SortByUpdatedAt: {},
	SortByTotal:     {},
	SortByStatus:    {},
}

// ListOrdersQuery retrieves a page of the calling user's orders.
// Results are always scoped to the caller: the owner identifier comes from
// the verified claims, never from request input.
//
// Example:
//
//	query, err := NewListOrdersQuery(claims, 1, 10, "total", "desc", "")
//	if err != nil {
//	    return fmt.Errorf("invalid listing parameters: %w", err)
//	}
//
//	page, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	ownerID      kernel.UUID
	page         int
	limit        int
	sortBy       string
	sortOrder    string
	filterStatus order.Status
	hasFilter    bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query with normalized parameters.
// Non-positive page and limit values fall back to 1 and 10, an unrecognized
// sortBy falls back to created_at, and any sortOrder other than "asc" means
// descending. A non-empty statusFilter must name a known status.
func NewListOrdersQuery(
	actor identity.Claims,
	page, limit int,
	sortBy, sortOrder, statusFilter string,
) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	if _, ok := validSortFields[sortBy]; !ok {
		sortBy = SortByCreatedAt
	}
	if sortOrder != SortOrderAsc {
		sortOrder = SortOrderDesc
	}

	query := ListOrdersQuery{
		ownerID:   actor.UserID(),
		page:      page,
		limit:     limit,
		sortBy:    sortBy,
		sortOrder: sortOrder,
		guard:     guard.NewConstructorGuard(),
	}

	if statusFilter != "" {
		status, err := order.StatusFromString(statusFilter)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		query.filterStatus = status
		query.hasFilter = true
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OwnerID returns the identifier the listing is scoped to.
func (q ListOrdersQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// Page returns the normalized 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Limit returns the normalized page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// SortBy returns the normalized sort column.
func (q ListOrdersQuery) SortBy() string {
	return q.sortBy
}

// SortOrder returns "asc" or "desc".
func (q ListOrdersQuery) SortOrder() string {
	return q.sortOrder
}

// StatusFilter returns the status filter and whether one is set.
func (q ListOrdersQuery) StatusFilter() (order.Status, bool) {
	return q.filterStatus, q.hasFilter
}

// OrderItemResponse is a single order line in a read model.
type OrderItemResponse struct {
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse is the read model shared by the listing and single-order
// queries.
type OrderResponse struct {
	ID        kernel.UUID
	OwnerID   kernel.UUID
	Items     []OrderItemResponse
	Total     decimal.Decimal
	Status    order.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Pagination describes the page window of a listing response.
// Pages is the total page count rounded up.
type Pagination struct {
	Page  int
	Limit int
	Total int
	Pages int
}

// ListOrdersQueryResponse is a single page of orders with its pagination
// metadata.
type ListOrdersQueryResponse struct {
	Orders     []OrderResponse
	Pagination Pagination
}
