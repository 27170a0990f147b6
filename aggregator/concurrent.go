package aggregator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mysteriumnetwork/zonegrep/enumerator"
	"github.com/mysteriumnetwork/zonegrep/zone"
)

const DefaultParallelism = 4

// ConcurrentAggregator enumerates zones once, then fetches each zone's
// record sets across a bounded worker pool. Any failure cancels remaining
// work and surfaces the first error; no partial aggregate is ever returned.
type ConcurrentAggregator struct {
	enum     enumerator.Enumerator
	parallel int
}

func NewConcurrentAggregator(enum enumerator.Enumerator, parallel int) *ConcurrentAggregator {
	if parallel <= 0 {
		parallel = DefaultParallelism
	}
	return &ConcurrentAggregator{
		enum:     enum,
		parallel: parallel,
	}
}

func (a *ConcurrentAggregator) Aggregate(ctx context.Context) (*Aggregate, error) {
	zones, err := a.enum.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to enumerate zones: %w", err)
	}

	// Each worker owns exactly one slot, so a zone is either fully drained
	// into its slot or absent from the final aggregate.
	recordSets := make([][]zone.RecordSet, len(zones))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(a.parallel)

	for idx, z := range zones {
		idx, z := idx, z
		group.Go(func() error {
			records, err := a.enum.ListRecordSets(gctx, z)
			if err != nil {
				return fmt.Errorf("unable to enumerate record sets for zone %s: %w", z.ID, err)
			}

			recordSets[idx] = records
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	result := &Aggregate{
		Zones:      zones,
		RecordSets: make(map[string][]zone.RecordSet, len(zones)),
	}
	for idx, z := range zones {
		result.RecordSets[z.ID] = recordSets[idx]
	}

	return result, nil
}
