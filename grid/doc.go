// Package grid models the rectangular board that gridpath searches.
//
// What:
//
//   - Grid holds a fixed rows×cols board with sparse storage: a position with
//     no entry is Open.
//   - Cell states form a closed set (Kind): Open, Wall, Start, End, Frontier,
//     Visited, OnPath. Frontier and Visited carry a cost.
//   - Exactly zero or one Start and End exist at any time. They may coincide.
//   - Search annotations (Frontier, Visited, OnPath) are transient and are
//     removed by ClearSearch and Reset.
//   - Snapshot is an immutable copy for renderers and searchers.
//
// Mutation rules:
//
//   - ToggleWall / SetWall: silent no-op (false) out of bounds, on Start/End
//     or on an annotated cell, so ToggleWall twice always restores the cell.
//   - SetStart / SetEnd: ErrOutOfBounds or ErrWallCell; replace the previous endpoint.
//   - ClearWalls leaves Start/End untouched; ClearSearch leaves walls and endpoints.
//   - Apply accepts annotations only and never overwrites Wall, Start or End.
//
// Coordinates:
//
//   - Locate maps a continuous point plus a cell size onto a Pos, or reports
//     ErrOutOfBounds. X selects the column and Y the row.
//   - CellRect is the inverse; FitCellSize picks a square cell for a surface.
//
// Complexity:
//
//   - Neighbors:  O(d), d = 4 or 8.
//   - Snapshot:   O(k), k = number of non-Open cells.
//   - Components / Reachable: O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: a dimension is < 1.
//   - ErrOutOfBounds: position or mapped point lies outside the grid.
//   - ErrWallCell: Start or End placed on a wall.
//   - ErrOptionViolation: invalid functional option.
package grid
