package http

import (
	"time"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Envelope is the uniform response shape of the API.
// Success responses carry Data, failures carry Error; never both.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody describes a failed request with a machine-readable code.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ItemRequest is a single order line in a create request.
type ItemRequest struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// CreateOrderRequest is the body of POST /v1/orders.
type CreateOrderRequest struct {
	Items []ItemRequest `json:"items"`
}

// UpdateStatusRequest is the body of PATCH /v1/orders/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ItemResponse mirrors ItemRequest in responses.
type ItemResponse struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// OrderResponse is the wire form of an order in every endpoint.
type OrderResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Items     []ItemResponse  `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PaginationResponse is the page window metadata of a listing.
type PaginationResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// ListOrdersResponse is the data payload of GET /v1/orders.
type ListOrdersResponse struct {
	Orders     []OrderResponse    `json:"orders"`
	Pagination PaginationResponse `json:"pagination"`
}

// CancelOrderResponse confirms a cancellation. Unlike the other endpoints,
// DELETE answers with a confirmation message and the final status rather
// than the full order body.
type CancelOrderResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// orderResponseFromDomain maps an aggregate onto the wire form.
func orderResponseFromDomain(aggregate *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemResponse{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.UnitPrice(),
		})
	}

	return OrderResponse{
		ID:        aggregate.ID().String(),
		UserID:    aggregate.OwnerID().String(),
		Items:     items,
		Total:     aggregate.Total(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// orderResponseFromReadModel maps a query read model onto the wire form.
func orderResponseFromReadModel(model queries.OrderResponse) OrderResponse {
	items := make([]ItemResponse, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, ItemResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.UnitPrice,
		})
	}

	return OrderResponse{
		ID:        model.ID.String(),
		UserID:    model.OwnerID.String(),
		Items:     items,
		Total:     model.Total,
		Status:    model.Status.String(),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
