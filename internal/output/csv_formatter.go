package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/sipgo/sip-calculator/internal/domain"
)

// CSVFormatter emits one projection row per line across all plans, suitable
// for spreadsheet import. Amounts are plain whole-unit numbers without
// grouping or currency signs.
type CSVFormatter struct{}

// Name returns the formatter identifier.
func (CSVFormatter) Name() string { return "csv" }

// Format writes the header and the per-plan projection rows.
func (CSVFormatter) Format(comparison *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"plan", "type", "month", "year", "invested", "gains", "future_value"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, plan := range comparison.Plans {
		for _, row := range plan.Projection {
			record := []string{
				plan.Name,
				string(plan.Type),
				strconv.Itoa(row.Month),
				row.YearLabel,
				row.Principal.String(),
				row.Gains.String(),
				row.FutureValue.String(),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
