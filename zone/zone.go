package zone

// Zone is an immutable descriptor of a hosted zone. ID is the bare zone
// identifier, with any path-style prefix already stripped at discovery time.
// Name is the fully qualified domain name the zone serves (trailing dot).
type Zone struct {
	ID   string
	Name string
}

type ValueKind int

const (
	KindNone = ValueKind(iota)
	KindAlias
	KindLiterals
)

// RecordValue is the value side of a record set: a single alias target, an
// ordered sequence of literal values, or nothing at all. The zero value is
// KindNone, which is valid but can never match anything.
type RecordValue struct {
	kind     ValueKind
	alias    string
	literals []string
}

func AliasValue(target string) RecordValue {
	return RecordValue{
		kind:  KindAlias,
		alias: target,
	}
}

func LiteralValues(values []string) RecordValue {
	return RecordValue{
		kind:     KindLiterals,
		literals: values,
	}
}

func (v RecordValue) Kind() ValueKind {
	return v.kind
}

// Alias returns the aliased DNS name. Empty unless Kind is KindAlias.
func (v RecordValue) Alias() string {
	return v.alias
}

// Literals returns the literal values in service order. Nil unless Kind is
// KindLiterals.
func (v RecordValue) Literals() []string {
	return v.literals
}

type RecordSet struct {
	Name  string
	Type  string
	Value RecordValue
}

// ResultRow is one matching record value, flattened for serialization.
type ResultRow struct {
	HostedZoneID   string `json:"hostedZoneId"`
	HostedZoneName string `json:"hostedZoneName"`
	RecordType     string `json:"recordType"`
	RecordName     string `json:"recordName"`
	RecordValue    string `json:"recordValue"`
}
