package reporter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mysteriumnetwork/zonegrep/zone"
)

var sampleRows = []zone.ResultRow{
	{
		HostedZoneID:   "Z1",
		HostedZoneName: "example.com.",
		RecordType:     "A",
		RecordName:     "foo.example.com.",
		RecordValue:    "5.6.7.8",
	},
	{
		HostedZoneID:   "Z2",
		HostedZoneName: "example.org.",
		RecordType:     "CNAME",
		RecordName:     "www.example.org.",
		RecordValue:    "foo.example.com.",
	},
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewJSONReporter(&buf).Report(context.Background(), sampleRows))

	var decoded []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	require.Equal(t, map[string]string{
		"hostedZoneId":   "Z1",
		"hostedZoneName": "example.com.",
		"recordType":     "A",
		"recordName":     "foo.example.com.",
		"recordValue":    "5.6.7.8",
	}, decoded[0])
}

func TestJSONReporterEmptyResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewJSONReporter(&buf).Report(context.Background(), nil))
	require.Equal(t, "[]\n", buf.String())
}

func TestCSVReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewCSVReporter(&buf).Report(context.Background(), sampleRows))
	require.Equal(t,
		"Z1,example.com.,A,foo.example.com.,5.6.7.8\n"+
			"Z2,example.org.,CNAME,www.example.org.,foo.example.com.\n",
		buf.String())
}

func TestCSVReporterWithHeaders(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewCSVReporter(&buf).SetHeaders(true).Report(context.Background(), sampleRows[:1]))
	require.Equal(t,
		"hostedZoneId,hostedZoneName,recordType,recordName,recordValue\n"+
			"Z1,example.com.,A,foo.example.com.,5.6.7.8\n",
		buf.String())
}

type stubReporter struct {
	err  error
	rows []zone.ResultRow
}

func (r *stubReporter) Report(_ context.Context, rows []zone.ResultRow) error {
	r.rows = rows
	return r.err
}

func TestMultiReporterFansOut(t *testing.T) {
	t.Parallel()

	first := &stubReporter{}
	second := &stubReporter{}

	err := NewMultiReporter(first, second).Report(context.Background(), sampleRows)
	require.NoError(t, err)
	require.Equal(t, sampleRows, first.rows)
	require.Equal(t, sampleRows, second.rows)
}

func TestMultiReporterKeepsGoingPastFailures(t *testing.T) {
	t.Parallel()

	firstErr := errors.New("first sink down")
	first := &stubReporter{err: firstErr}
	second := &stubReporter{}

	err := NewMultiReporter(first, second).Report(context.Background(), sampleRows)
	require.ErrorIs(t, err, firstErr)
	require.Equal(t, sampleRows, second.rows)
}

func TestCountReporter(t *testing.T) {
	t.Parallel()

	require.NoError(t, NewCountReporter().Report(context.Background(), sampleRows))
}
