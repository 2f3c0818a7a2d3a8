package services

import (
	"orders/internal/core/domain/model/identity"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// Action names an operation to be authorized against a single order.
// List queries are not actions: they are always scoped to the caller's own
// orders and never reach the policy.
type Action string

const (
	ActionRead         Action = "read order"
	ActionUpdateStatus Action = "update order status"
	ActionCancel       Action = "cancel order"
)

// AccessPolicy decides whether an authenticated caller may act on an order
// owned by a given user.
//
// The rule is uniform across all actions: the caller must be the owner of the
// resource or carry the admin role. The decision is made after the resource
// has been located, so legitimate owners and admins always learn whether an
// order exists; non-owners get a forbidden decision, never a disguised
// not-found.
type AccessPolicy struct{}

// NewAccessPolicy creates the ownership-based access policy.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Authorize returns nil if claims may perform action on a resource owned by
// resourceOwnerID, or an access-forbidden error otherwise.
func (AccessPolicy) Authorize(claims identity.Claims, resourceOwnerID kernel.UUID, action Action) error {
	if err := claims.Validate(); err != nil {
		return err
	}
	if err := resourceOwnerID.Validate(); err != nil {
		return err
	}

	if claims.UserID().IsEqual(resourceOwnerID) || claims.IsAdmin() {
		return nil
	}

	return errs.NewAccessForbiddenError(claims.UserID().String(), string(action))
}
