package probe

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// CheckAll probes every URL using a bounded worker pool and returns the
// results in input order: results[i] always corresponds to urls[i] no matter
// which probe finished first. Probes are independent; one timing out does
// not disturb the others.
func (p *Prober) CheckAll(ctx context.Context, urls []string) []Result {
	results := make([]Result, len(urls))

	g := new(errgroup.Group)
	g.SetLimit(p.opts.Concurrency)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			results[i] = p.Check(ctx, u)
			return nil
		})
	}
	_ = g.Wait() // workers never return an error; failures live in Results

	return results
}
