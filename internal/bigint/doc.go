// Package bigint implements arbitrary-precision unsigned integers stored as a
// sequence of 32-bit limbs, least significant limb first.
//
// Every operation is a pure function of its operands: it reads them and
// returns a freshly allocated *Int. Values are never modified after they are
// returned, so a single value may be shared between goroutines without
// synchronization.
//
// The limb sequence is a double-ended queue. Shifting by whole limbs pushes or
// pops at the low end and does not move the remaining limbs.
//
// Text conversion is limited to big-endian hexadecimal and binary. The
// canonical forms returned by [Int.Hex] and [Int.Bin] render every limb at a
// fixed width (8 hex digits or 32 binary digits), so their length is always a
// multiple of the limb width.
package bigint
