// Package services provides domain services that orchestrate business rules
// across multiple domain entities of the order core. It implements logic that
// doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - TransitionPolicy: the authorization table deciding which principal may
//     move an order along which status edge
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
