// Package connectivity groups freely placed cells into connected components
// and judges each component against a task's validity predicate.
//
// # Adjacency
//
// Three predicates decide whether two cells touch:
//
//   - [KingAdjacent]: any of the 8 surrounding squares
//   - [OrthogonalAdjacent]: the 4 edge-sharing squares
//   - [TypedAdjacent]: edge-sharing squares whose cell types meet along that edge
//
// Typed adjacency is driven by [Linked], a lookup table keyed by
// (type, type, direction). The table is derived once from the open sides of
// each cell type:
//
//	type  open sides
//	0     up, right, down, left
//	1     down, left      (diagonal half, right angle SW)
//	2     down, right     (diagonal half, right angle SE)
//	3     up, right       (diagonal half, right angle NE)
//	4     up, left        (diagonal half, right angle NW)
//	5     down, right     (apex at NW)
//	6     down, left      (apex at NE)
//	7     up, left        (apex at SE)
//	8     up, right       (apex at SW)
//
// Cell a links to its neighbor b in direction d iff a is open toward d and
// b is open toward the opposite side. Two half-cells of the same type never
// link.
//
// # Components
//
// [Components] runs an explicit-stack depth-first search. The visited set is
// keyed by coordinate because a coordinate holds at most one cell. Callers
// must not rely on the order components are returned in.
//
// # Validity
//
// Unit-accretion tasks count cells ([CountIs]); typed-accretion tasks sum
// weights, 1 per full cell and 0.5 per half-cell ([WeightIs]). Weights are
// summed in half units so the comparison is exact.
package connectivity
