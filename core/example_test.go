package core_test

import (
	"fmt"

	"github.com/chaithanyamandadi/routelab/core"
)

// ExampleGraph_Distance builds a small road triangle and prices two routes,
// one of which uses a road that does not exist.
func ExampleGraph_Distance() {
	g := core.NewGraph()
	_ = g.AddVertex("Uppal", core.WithCoord(0, 0))
	_ = g.AddVertex("Secunderabad", core.WithCoord(2, 3))
	_ = g.AddEdge("Uppal", "Secunderabad", 10.2)
	_ = g.AddEdge("Secunderabad", "Ameerpet", 5.8)

	fmt.Printf("%.1f\n", g.Distance([]string{"Uppal", "Secunderabad", "Ameerpet"}))
	fmt.Println(g.Distance([]string{"Uppal", "Ameerpet"}))
	// Output:
	// 16.0
	// +Inf
}
