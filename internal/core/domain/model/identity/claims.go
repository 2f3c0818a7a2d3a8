// Package identity provides the value objects describing an authenticated
// caller. Claims are decoded from a verified credential by the token verifier
// and consumed read-only; the service never issues or persists them.
package identity

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
)

// RoleAdmin grants access to any order regardless of ownership.
const RoleAdmin = "admin"

// ErrClaimsAreNotConstructed is returned when a Claims instance was not
// created through the NewClaims factory method.
var ErrClaimsAreNotConstructed = errors.New("Claims must be created via NewClaims constructor")

// Roles is a capability set checked via membership, not positional scanning.
// An empty set is valid and simply carries no elevated privilege.
type Roles map[string]struct{}

// NewRoles builds a role set from a list of role names.
// Duplicates collapse; empty names are ignored.
func NewRoles(names ...string) Roles {
	roles := make(Roles, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		roles[name] = struct{}{}
	}
	return roles
}

// Has reports whether the set contains the given role.
func (r Roles) Has(role string) bool {
	_, ok := r[role]
	return ok
}

// Names returns the role names in unspecified order.
func (r Roles) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	return names
}

// Claims holds the identity facts extracted from a verified credential.
//
// Claims are borrowed per request: they are never stored and the order
// service only reads them to make access decisions.
type Claims struct {
	userID kernel.UUID
	roles  Roles
	email  string

	isConstructed bool
}

// NewClaims creates validated identity claims.
// The user identifier must be a valid UUID; roles and email may be empty.
func NewClaims(userID kernel.UUID, roles Roles, email string) (Claims, error) {
	if err := userID.Validate(); err != nil {
		return Claims{}, err
	}

	if roles == nil {
		roles = NewRoles()
	}

	return Claims{
		userID:        userID,
		roles:         roles,
		email:         email,
		isConstructed: true,
	}, nil
}

// Validate ensures the Claims instance was properly constructed through NewClaims.
func (c Claims) Validate() error {
	if !c.isConstructed {
		return ErrClaimsAreNotConstructed
	}
	return nil
}

// UserID returns the authenticated user's identifier.
func (c Claims) UserID() kernel.UUID {
	return c.userID
}

// Roles returns the caller's capability set.
func (c Claims) Roles() Roles {
	return c.roles
}

// Email returns the caller's email address, possibly empty.
func (c Claims) Email() string {
	return c.email
}

// IsAdmin reports whether the caller carries the admin role.
func (c Claims) IsAdmin() bool {
	return c.roles.Has(RoleAdmin)
}
