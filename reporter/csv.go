package reporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mysteriumnetwork/zonegrep/zone"
)

var csvHeader = []string{"hostedZoneId", "hostedZoneName", "recordType", "recordName", "recordValue"}

type CSVReporter struct {
	w       io.Writer
	headers bool
}

func NewCSVReporter(w io.Writer) *CSVReporter {
	return &CSVReporter{
		w:       w,
		headers: false,
	}
}

func (r *CSVReporter) SetHeaders(headers bool) *CSVReporter {
	r.headers = headers
	return r
}

func (r *CSVReporter) Report(_ context.Context, rows []zone.ResultRow) error {
	cw := csv.NewWriter(r.w)

	if r.headers {
		if err := cw.Write(csvHeader); err != nil {
			return fmt.Errorf("CSV header write failed: %w", err)
		}
	}

	for _, row := range rows {
		record := []string{
			row.HostedZoneID,
			row.HostedZoneName,
			row.RecordType,
			row.RecordName,
			row.RecordValue,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("CSV row write failed: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("CSV flush failed: %w", err)
	}

	return nil
}
