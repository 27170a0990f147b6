package reporter

import (
	"context"
	"fmt"
	"time"

	"github.com/PagerDuty/go-pagerduty"
	"github.com/hashicorp/go-multierror"

	"github.com/mysteriumnetwork/zonegrep/zone"
)

// PagerDutyReporter raises one Events v2 alert per matching record value.
// Useful when the search target is something no record should point at
// anymore, like a decommissioned address.
type PagerDutyReporter struct {
	routingKey string
}

func NewPagerDutyReporter(routingKey string) *PagerDutyReporter {
	return &PagerDutyReporter{
		routingKey: routingKey,
	}
}

func (r *PagerDutyReporter) Report(ctx context.Context, rows []zone.ResultRow) error {
	var resultErr error

	for _, row := range rows {
		event := pagerduty.V2Event{
			RoutingKey: r.routingKey,
			Action:     "trigger",
			DedupKey:   fmt.Sprintf("%s/%s/%s", row.HostedZoneID, row.RecordName, row.RecordValue),
			Payload: &pagerduty.V2Payload{
				Summary:   fmt.Sprintf("record %s (%s) points at %s", row.RecordName, row.RecordType, row.RecordValue),
				Source:    fmt.Sprintf("%s (%s)", row.HostedZoneName, row.HostedZoneID),
				Severity:  "warning",
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			},
		}

		_, err := pagerduty.ManageEventWithContext(ctx, event)
		if err != nil {
			resultErr = multierror.Append(resultErr, err)
		}
	}

	return resultErr
}
