package enumerator

import (
	"context"

	"github.com/mysteriumnetwork/zonegrep/zone"
)

// Enumerator is the two-operation view of a cloud DNS account: list every
// hosted zone, and list every record set of one zone.
type Enumerator interface {
	ListZones(ctx context.Context) ([]zone.Zone, error)
	ListRecordSets(ctx context.Context, z zone.Zone) ([]zone.RecordSet, error)
}
