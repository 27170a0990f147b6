package workflow

import (
	"context"
	"fmt"

	"github.com/mysteriumnetwork/zonegrep/aggregator"
	"github.com/mysteriumnetwork/zonegrep/heartbeat"
	"github.com/mysteriumnetwork/zonegrep/matcher"
	"github.com/mysteriumnetwork/zonegrep/reporter"
)

// Runner ties the pipeline together: aggregate the account, match, report,
// then beat. Collaborators are injected so the whole run is testable
// without touching the network.
type Runner struct {
	aggregator aggregator.Aggregator
	predicate  matcher.Predicate
	drain      reporter.Reporter
	heartbeat  heartbeat.Heartbeat
}

func NewRunner(agg aggregator.Aggregator, pred matcher.Predicate, drain reporter.Reporter, beat heartbeat.Heartbeat) *Runner {
	return &Runner{
		aggregator: agg,
		predicate:  pred,
		drain:      drain,
		heartbeat:  beat,
	}
}

func (r *Runner) Run(ctx context.Context) error {
	agg, err := r.aggregator.Aggregate(ctx)
	if err != nil {
		return fmt.Errorf("unable to aggregate account records: %w", err)
	}

	rows := matcher.FindMatches(agg, r.predicate)

	if err := r.drain.Report(ctx, rows); err != nil {
		return fmt.Errorf("reporting error: %w", err)
	}

	if err := r.heartbeat.Beat(ctx); err != nil {
		return fmt.Errorf("heartbeat error: %w", err)
	}

	return nil
}
