// Package partner provides the DeliveryPartner aggregate: a courier profile
// created by an administrator, carrying an append-only history of order
// assignments and an optional one-time link to a user account.
//
// Key business rules:
//   - Name, phone, and vehicle type are required
//   - The assignment history only grows; nothing removes entries when an
//     order is delivered, cancelled, or re-assigned elsewhere
//   - At most one user account may be linked, and the link is immutable
//     once set
package partner
