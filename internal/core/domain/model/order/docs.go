// Package order provides the Order entity, its line items and the order status
// state machine.
//
// The package includes:
//   - Order: requester, destination, items, bound vehicle and lifecycle status
//   - Item: a named line item with a non-negative price
//   - Status: Created -> Assigned -> Completed
//
// Key business rules:
//   - Order ids are issued by the dispatch registry, never by the order itself
//   - The total amount is the exact decimal sum of item prices (0 for no items)
//   - A vehicle is bound exactly when the order is Assigned or Completed
package order
