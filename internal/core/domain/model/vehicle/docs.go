// Package vehicle provides the Vehicle entity of the logistics domain.
//
// A vehicle is identified by a caller supplied number and is either available or
// carrying exactly one order. The dispatch registry is the only component that moves a
// vehicle between these two states:
//
//	Available ──TakeOrder──> Carrying ──CompleteOrder──> Available
//
// Vehicle numbers are not checked for uniqueness; two vehicles with the same number are
// still two distinct entities.
package vehicle
