// SPDX-License-Identifier: MIT
//
// impl_hyderabad.go - the ten-location Hyderabad road dataset.
//
// Coordinates are planar map units; weights are road distances in km.
// Straight-line distance to Kukatpally never exceeds the road distance, so
// the Euclidean heuristic is admissible for the default goal. It is not
// consistent (Ameerpet–Begumpet is shorter than its straight line).
// The Ameerpet–Begumpet segment is surveyed twice; the later reading (4.0)
// replaces the earlier one, leaving 14 distinct roads.

package builder

import (
	"fmt"

	"github.com/chaithanyamandadi/routelab/core"
)

const methodHyderabad = "Hyderabad"

// Default endpoints for the Hyderabad benchmark.
const (
	HyderabadSource = "Uppal"
	HyderabadGoal   = "Kukatpally"
)

// hyderabadLocations lists IDs and map coordinates in insertion order.
var hyderabadLocations = []struct {
	id   string
	x, y float64
}{
	{"Uppal", 0, 0},
	{"Secunderabad", 2, 3},
	{"Ameerpet", 5, 1},
	{"Madhapur", 7, 4},
	{"Gachibowli", 8, 2},
	{"Dilsukhnagar", 3, 5},
	{"Mehdipatnam", 6, 3},
	{"Hitech City", 9, 6},
	{"Begumpet", 4, 7},
	{"Kukatpally", 10, 5},
}

// hyderabadRoads lists road segments in survey order.
var hyderabadRoads = []struct {
	u, v string
	km   float64
}{
	{"Uppal", "Secunderabad", 10.2},
	{"Secunderabad", "Ameerpet", 5.8},
	{"Ameerpet", "Madhapur", 6.5},
	{"Madhapur", "Gachibowli", 4.7},
	{"Gachibowli", "Kukatpally", 8.0},
	{"Uppal", "Dilsukhnagar", 7.3},
	{"Dilsukhnagar", "Mehdipatnam", 9.1},
	{"Mehdipatnam", "Hitech City", 5.5},
	{"Hitech City", "Begumpet", 7.2},
	{"Begumpet", "Kukatpally", 6.9},
	{"Ameerpet", "Begumpet", 3.6},
	{"Dilsukhnagar", "Secunderabad", 8.3},
	{"Mehdipatnam", "Madhapur", 4.2},
	{"Begumpet", "Secunderabad", 5.0},
	{"Begumpet", "Ameerpet", 4.0},
}

// Hyderabad returns a Constructor that adds the Hyderabad locations and
// roads. It ignores cfg.idFn and cfg.weightFn: IDs and distances are fixed.
func Hyderabad() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, loc := range hyderabadLocations {
			if err := g.AddVertex(loc.id, core.WithCoord(loc.x, loc.y)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodHyderabad, loc.id, err)
			}
		}
		for _, r := range hyderabadRoads {
			if err := addEdge(g, methodHyderabad, r.u, r.v, r.km); err != nil {
				return err
			}
		}

		return nil
	}
}
