// Package placement implements the stateful grid placement engine.
//
// An [Engine] owns one grid, the task mode selected for it and every cell
// collection derived from user input:
//
//   - figures: committed shapes (whole-shape tasks) or validated components
//     (accretion tasks)
//   - zone: cells surrounding figures that may not receive a new placement
//   - free cells: the toggled working set of accretion tasks
//
// Derived collections are recomputed from their sources on every mutation and
// never patched, so the zone is always exactly the rule applied to the current
// figures and, in accretion tasks, the figures are exactly the valid components
// of the free cells.
//
// The engine is synchronous and not safe for concurrent use. Callers that
// share an engine across goroutines must serialize access themselves.
//
// Placement rejections are expected on almost every hover and are reported as
// plain booleans. Errors are reserved for configuration input: grid size, task
// code, parameters and restored state.
package placement
