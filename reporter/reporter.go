package reporter

import (
	"context"

	"github.com/mysteriumnetwork/zonegrep/zone"
)

type Reporter interface {
	Report(ctx context.Context, rows []zone.ResultRow) error
}
