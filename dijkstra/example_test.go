package dijkstra_test

import (
	"fmt"

	"github.com/chaithanyamandadi/routelab/builder"
	"github.com/chaithanyamandadi/routelab/dijkstra"
)

// ExampleShortestPath finds the Uppal → Kukatpally route without using
// coordinates.
func ExampleShortestPath() {
	g, _ := builder.BuildGraph(nil, builder.Hyderabad())

	path, d, err := dijkstra.ShortestPath(g, builder.HyderabadSource, builder.HyderabadGoal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	fmt.Printf("%.1f\n", d)
	// Output:
	// [Uppal Secunderabad Begumpet Kukatpally]
	// 22.1
}
