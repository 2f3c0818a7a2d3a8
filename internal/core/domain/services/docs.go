// Package services provides domain services that implement business rules
// spanning more than one domain concept.
//
// The package includes:
//   - AccessPolicy: the ownership-based authorization rule applied to every
//     read and mutation of a single order
//
// Domain services hold logic that doesn't naturally belong to a single
// aggregate root, following Domain-Driven Design principles.
package services
