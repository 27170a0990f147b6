package matcher

import (
	"fmt"
	"log"
	"regexp"

	"github.com/mysteriumnetwork/zonegrep/aggregator"
	"github.com/mysteriumnetwork/zonegrep/zone"
)

type Mode int

const (
	ModeEquality = Mode(iota)
	ModeRegex
)

// Options configures the match predicate. Record is a literal value for
// ModeEquality or a pattern for ModeRegex. The caller validates it is
// non-empty before the core runs.
type Options struct {
	Record string
	Mode   Mode
}

// Predicate decides whether a single candidate record value matches.
// *regexp.Regexp satisfies it directly.
type Predicate interface {
	MatchString(string) bool
}

func NewPredicate(opts Options) (Predicate, error) {
	switch opts.Mode {
	case ModeEquality:
		return equalityPredicate{target: opts.Record}, nil
	case ModeRegex:
		re, err := regexp.Compile(opts.Record)
		if err != nil {
			return nil, fmt.Errorf("can't compile record pattern: %w", err)
		}
		return re, nil
	default:
		return nil, fmt.Errorf("unknown match mode: %d", opts.Mode)
	}
}

// equalityPredicate tries the configured target both bare and
// dot-terminated against the candidate. Record values come back fully
// qualified from the service while the user-supplied target usually is
// not, so the normalization is one-directional: the candidate itself is
// never stripped of its trailing dot.
type equalityPredicate struct {
	target string
}

func (p equalityPredicate) MatchString(candidate string) bool {
	return candidate == p.target || candidate == p.target+"."
}

// FindMatches walks the aggregate in zone discovery order, then record set
// order, then value order, and emits one row per matching value. An alias
// target is a single candidate; a record set with neither alias nor values
// is skipped with a log line.
func FindMatches(agg *aggregator.Aggregate, pred Predicate) []zone.ResultRow {
	var rows []zone.ResultRow

	for _, z := range agg.Zones {
		for _, rs := range agg.RecordSets[z.ID] {
			switch rs.Value.Kind() {
			case zone.KindAlias:
				if pred.MatchString(rs.Value.Alias()) {
					rows = append(rows, newRow(z, rs, rs.Value.Alias()))
				}
			case zone.KindLiterals:
				for _, value := range rs.Value.Literals() {
					if pred.MatchString(value) {
						rows = append(rows, newRow(z, rs, value))
					}
				}
			default:
				log.Printf("record set %s (%s) in zone %s has neither alias target nor values, skipping",
					rs.Name, rs.Type, z.ID)
			}
		}
	}

	return rows
}

func newRow(z zone.Zone, rs zone.RecordSet, value string) zone.ResultRow {
	return zone.ResultRow{
		HostedZoneID:   z.ID,
		HostedZoneName: z.Name,
		RecordType:     rs.Type,
		RecordName:     rs.Name,
		RecordValue:    value,
	}
}
