package reporter

import (
	"context"

	"github.com/hashicorp/go-multierror"

	"github.com/mysteriumnetwork/zonegrep/zone"
)

// MultiReporter fans the same rows out to every configured reporter and
// keeps going past failures, accumulating them into one error.
type MultiReporter struct {
	reporters []Reporter
}

func NewMultiReporter(reporters ...Reporter) *MultiReporter {
	return &MultiReporter{
		reporters: reporters,
	}
}

func (r *MultiReporter) Report(ctx context.Context, rows []zone.ResultRow) error {
	var result error

	for _, reporter := range r.reporters {
		if err := reporter.Report(ctx, rows); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result
}
