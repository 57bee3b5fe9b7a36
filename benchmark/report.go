// SPDX-License-Identifier: MIT
//
// report.go - ranked results and their text rendering.

package benchmark

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/chaithanyamandadi/routelab/kshortest"
)

// Result is one strategy's entry in a Report.
type Result struct {
	Strategy     string
	Route        []string
	Distance     float64 // +Inf when Err != nil or Route is not a valid path
	Elapsed      time.Duration
	Err          error
	Alternatives []kshortest.Path
	Rank         int // 1-based position after sorting
}

// Failed reports whether the strategy produced no usable route.
func (r Result) Failed() bool {
	return r.Err != nil || math.IsInf(r.Distance, 1)
}

// Report is the ranked outcome of one Harness.Run.
type Report struct {
	RunID   string
	Source  string
	Goal    string
	Results []Result // ascending by Distance, then Elapsed
	Best    *Result  // nil when every strategy failed
}

// WriteText renders the report as an aligned table followed by any
// alternative routes and the winning strategy.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "run %s: %s → %s\n", r.RunID, r.Source, r.Goal); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tSTRATEGY\tDISTANCE\tELAPSED\tROUTE")
	for _, res := range r.Results {
		route := strings.Join(res.Route, " → ")
		if res.Err != nil {
			route = "error: " + res.Err.Error()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			res.Rank, res.Strategy, formatDistance(res.Distance), res.Elapsed.Round(time.Microsecond), route)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, res := range r.Results {
		if len(res.Alternatives) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s alternatives:\n", res.Strategy); err != nil {
			return err
		}
		for i, p := range res.Alternatives {
			if _, err := fmt.Fprintf(w, "  %d. %s (%s)\n", i+1, strings.Join(p.Nodes, " → "), formatDistance(p.Distance)); err != nil {
				return err
			}
		}
	}

	best := "none"
	if r.Best != nil {
		best = fmt.Sprintf("%s (%s)", r.Best.Strategy, formatDistance(r.Best.Distance))
	}
	_, err := fmt.Fprintf(w, "\nbest: %s\n", best)

	return err
}

func formatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", d)
}
