// SPDX-License-Identifier: MIT
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Model:
//   - 4-neighborhood orthogonal grid; vertex IDs "r,c" in row-major order.
//     This is a deliberate exception to cfg.idFn to keep positions explicit.
//   - Each vertex carries the coordinate (c·spacing, r·spacing).
//   - Edge weight = spacing × cfg.weightFn(cfg.rng). With a WeightFn that
//     never returns less than 1, every edge is at least as long as the
//     straight line between its endpoints and the Euclidean heuristic stays
//     admissible.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - For each (r,c): Right edge then Bottom edge, when present.
//
// Complexity: O(rows·cols) vertices and edges.

package builder

import (
	"fmt"

	"github.com/chaithanyamandadi/routelab/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex ID used by Grid for cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				x, y := float64(c)*cfg.spacing, float64(r)*cfg.spacing
				if err := g.AddVertex(id, core.WithCoord(x, y)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := addEdge(g, methodGrid, u, GridID(r, c+1), cfg.spacing*cfg.weight()); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, u, GridID(r+1, c), cfg.spacing*cfg.weight()); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
