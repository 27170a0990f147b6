package aggregator

import (
	"context"

	"github.com/mysteriumnetwork/zonegrep/zone"
)

// Aggregate is the fully populated result of one account traversal: every
// discovered zone in discovery order, plus the complete record set sequence
// of each zone keyed by zone id. It is assembled once and read-only
// afterwards.
type Aggregate struct {
	Zones      []zone.Zone
	RecordSets map[string][]zone.RecordSet
}

type Aggregator interface {
	Aggregate(ctx context.Context) (*Aggregate, error)
}
