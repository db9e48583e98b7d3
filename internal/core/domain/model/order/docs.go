// Package order provides the Order aggregate of the grocery marketplace:
// a placed cart snapshot with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root holding line-item snapshots, total price,
//     status, and the optional delivery partner reference
//   - LineItem: A point-in-time snapshot of a product's price and vendor
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders are created from at least one line item; each quantity is positive
//   - Total price equals the sum of quantity * unit price across line items
//     and is never edited independently
//   - Order status follows a defined workflow:
//     pending -> confirmed -> processing -> out-for-delivery -> delivered,
//     with cancellation allowed from pending, confirmed, and processing
//   - delivered and cancelled are terminal
//   - out-for-delivery is entered through partner assignment, which also
//     records the assigned partner on the order
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
