// SPDX-License-Identifier: MIT
//
// validate.go - input checks run once before optimization.

package genetic

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/chaithanyamandadi/routelab/core"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateOptions checks struct constraints on o.
func validateOptions(o Options) error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %v", ErrBadOptions, err)
	}
	return nil
}

// validateInterior checks that anchors and interior vertices exist and that
// no vertex appears twice across interior and anchors.
func validateInterior(g *core.Graph, interior []string, o Options) error {
	seen := make(map[string]struct{}, len(interior)+2)
	for _, anchor := range []string{o.Source, o.Goal} {
		if anchor == "" {
			continue
		}
		if !g.HasVertex(anchor) {
			return fmt.Errorf("genetic: anchor %q: %w", anchor, core.ErrVertexNotFound)
		}
		seen[anchor] = struct{}{}
	}
	if o.Source != "" && o.Source == o.Goal {
		return fmt.Errorf("%w: source and goal are both %q", ErrDuplicateGene, o.Source)
	}

	for _, id := range interior {
		if !g.HasVertex(id) {
			return fmt.Errorf("genetic: interior %q: %w", id, core.ErrVertexNotFound)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateGene, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}
