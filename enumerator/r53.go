package enumerator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"golang.org/x/time/rate"

	"github.com/mysteriumnetwork/zonegrep/zone"
)

// Route53API is the subset of the Route 53 client this package consumes.
// *route53.Client satisfies it.
type Route53API interface {
	ListHostedZones(ctx context.Context, params *route53.ListHostedZonesInput, optFns ...func(*route53.Options)) (*route53.ListHostedZonesOutput, error)
	ListResourceRecordSets(ctx context.Context, params *route53.ListResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ListResourceRecordSetsOutput, error)
}

type Route53Enumerator struct {
	api     Route53API
	limiter *rate.Limiter
}

// NewRoute53Enumerator wraps an existing Route 53 client. rateEvery is the
// minimal interval between API calls, shared across all concurrent callers;
// zero or negative disables rate limiting.
func NewRoute53Enumerator(api Route53API, rateEvery time.Duration) *Route53Enumerator {
	return &Route53Enumerator{
		api:     api,
		limiter: rate.NewLimiter(rate.Every(rateEvery), 1),
	}
}

// ListZones drains hosted zone pagination and returns the zones in
// discovery order, ids normalized, duplicates across page boundaries
// dropped. Termination relies on the service eventually reporting
// IsTruncated=false.
func (e *Route53Enumerator) ListZones(ctx context.Context) ([]zone.Zone, error) {
	var (
		zones  []zone.Zone
		seen   = make(map[string]struct{})
		marker *string
	)

	for {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("error waiting for ratelimit: %w", err)
		}

		out, err := e.api.ListHostedZones(ctx, &route53.ListHostedZonesInput{
			Marker: marker,
		})
		if err != nil {
			return nil, newAPIError("ListHostedZones", "", err)
		}

		for _, hz := range out.HostedZones {
			id := normalizeZoneID(aws.ToString(hz.Id))
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}

			zones = append(zones, zone.Zone{
				ID:   id,
				Name: aws.ToString(hz.Name),
			})
		}

		if !out.IsTruncated {
			break
		}
		marker = out.NextMarker
	}

	return zones, nil
}

// ListRecordSets drains record set pagination for one zone. The cursor is
// the composite name/type/identifier triple: each next page starts exactly
// after the last record of the previous one. Response order is preserved
// and no deduplication happens, record pages never overlap.
func (e *Route53Enumerator) ListRecordSets(ctx context.Context, z zone.Zone) ([]zone.RecordSet, error) {
	var (
		records         []zone.RecordSet
		startName       *string
		startType       types.RRType
		startIdentifier *string
	)

	for {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("error waiting for ratelimit: %w", err)
		}

		out, err := e.api.ListResourceRecordSets(ctx, &route53.ListResourceRecordSetsInput{
			HostedZoneId:          aws.String(z.ID),
			StartRecordName:       startName,
			StartRecordType:       startType,
			StartRecordIdentifier: startIdentifier,
		})
		if err != nil {
			return nil, newAPIError("ListResourceRecordSets", z.ID, err)
		}

		for _, rrs := range out.ResourceRecordSets {
			records = append(records, convertRecordSet(rrs))
		}

		if !out.IsTruncated {
			break
		}
		startName = out.NextRecordName
		startType = out.NextRecordType
		startIdentifier = out.NextRecordIdentifier
	}

	return records, nil
}

// convertRecordSet maps the wire shape onto the tagged value variant. An
// alias target wins over any stray literal values; a record set carrying
// neither stays KindNone.
func convertRecordSet(rrs types.ResourceRecordSet) zone.RecordSet {
	rs := zone.RecordSet{
		Name: aws.ToString(rrs.Name),
		Type: string(rrs.Type),
	}

	switch {
	case rrs.AliasTarget != nil:
		rs.Value = zone.AliasValue(aws.ToString(rrs.AliasTarget.DNSName))
	case len(rrs.ResourceRecords) > 0:
		values := make([]string, 0, len(rrs.ResourceRecords))
		for _, rr := range rrs.ResourceRecords {
			values = append(values, aws.ToString(rr.Value))
		}
		rs.Value = zone.LiteralValues(values)
	}

	return rs
}

// normalizeZoneID strips the path-style prefix the service puts on zone ids
// ("/hostedzone/Z123" -> "Z123"). Already-bare ids pass through unchanged,
// so applying it twice is harmless but the enumerator only ever applies it
// once, at discovery.
func normalizeZoneID(id string) string {
	if i := strings.LastIndexByte(id, '/'); i >= 0 {
		return id[i+1:]
	}
	return id
}
