// Package grid provides the addressable n×n board that every placement rule
// is evaluated against.
//
// # Cells
//
// A [Coord] addresses one square by (row, col), both zero-based. A
// [TypedCell] pairs a coordinate with a [CellType]: type 0 is a full unit
// square, types 1-8 are oriented half-cells used by typed-accretion tasks.
//
//	Type  Kind      Shape
//	0     full      whole square
//	1-4   diagonal  right triangle with its right angle at SW, SE, NE, NW
//	5-8   apex      triangle from a NW, NE, SE, SW corner to the far edge midpoints
//
// # Cell sets
//
// [Set] is an insertion-ordered collection keyed by coordinate. A coordinate
// holds at most one cell, whatever its type.
//
// # Bounds
//
// [Grid] only answers bounds questions. Resizing validates the new
// dimension against configured [Bounds] and leaves the grid untouched on
// failure; owners of placement state clear their own collections on resize.
package grid
