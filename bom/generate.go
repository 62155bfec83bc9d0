package bom

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/soypat/fasteners"
	"github.com/soypat/fasteners/kernel"
	"golang.org/x/sync/errgroup"
)

// Generator builds the solid of a spec. *forge.Generator implements it.
type Generator interface {
	Generate(spec fasteners.Spec) (kernel.Solid, error)
}

// Result is the generated solid of one item.
type Result struct {
	Item        Item
	Designation string
	Solid       kernel.Solid
}

// Generate builds every item's solid using up to workers goroutines. It
// stops at the first failure and returns it; results are in item order.
func Generate(ctx context.Context, gen Generator, items []Item, workers int, log zerolog.Logger) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, it := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := fasteners.Designate(it.Spec)
			if err == nil {
				results[i].Solid, err = gen.Generate(it.Spec)
			}
			if err != nil {
				log.Error().Err(err).Int("item", i).Stringer("spec", it.Spec).Msg("generation failed")
				return fmt.Errorf("bom: item %d (%v): %w", i, it.Spec, err)
			}
			results[i].Item = it
			results[i].Designation = d
			log.Debug().Int("item", i).Str("designation", d).Int("count", it.Count).Msg("generated")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
