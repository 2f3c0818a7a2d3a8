// Package order provides domain entities and business logic for order management.
// It implements the Order aggregate root with lifecycle management and state
// transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, ownership, items, and lifecycle
//   - Item: A value object for a single order line with exact decimal amounts
//   - Status: A state machine that enforces valid order status transitions
//   - Domain event names and payloads for the two canonical order events
//
// Key business rules:
//   - Orders must have a valid unique identifier, an owner, and at least one item
//   - Every item has a non-empty name and strictly positive quantity and price
//   - The total is the exact decimal sum of item subtotals, fixed at creation
//   - Status follows the workflow Created -> InProgress -> Completed, with
//     cancellation allowed from Created and InProgress
//   - Completed and Cancelled are terminal; no transition leaves them
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
