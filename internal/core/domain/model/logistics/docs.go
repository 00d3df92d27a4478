// Package logistics provides the dispatch registry: the System aggregate that owns the
// fleet and the order book of one session.
//
// Key business rules:
//   - Order ids come from a counter owned by the System, start at 0 and are never
//     reused, even when the order is then rejected for lack of a vehicle
//   - Placement is first-fit (see services.OrderDispatcher)
//   - Only successfully placed orders enter the order book
//   - A vehicle is bound to at most one active order, and to one exactly when it is
//     unavailable
//   - The fleet slice is a private copy; vehicles themselves are shared by pointer
//
// System is not safe for concurrent use. Callers serialise access, see the
// in-memory unit of work in adapters/out/memory.
package logistics
