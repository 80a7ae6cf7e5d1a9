package output

import (
	"encoding/json"

	"github.com/sipgo/sip-calculator/internal/domain"
)

// JSONFormatter marshals the plan comparison as indented JSON.
type JSONFormatter struct{}

// Name returns the formatter identifier.
func (JSONFormatter) Name() string { return "json" }

// Format marshals the comparison.
func (JSONFormatter) Format(comparison *domain.PlanComparison) ([]byte, error) {
	return json.MarshalIndent(comparison, "", "  ")
}
