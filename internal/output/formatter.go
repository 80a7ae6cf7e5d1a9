package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/sipgo/sip-calculator/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic
// formatting).
type Formatter interface {
	Format(comparison *domain.PlanComparison) ([]byte, error)
	// Name returns a short identifier for flag parsing and logging.
	Name() string
}

// WriteFormatted runs a formatter and writes its output to a timestamped file
// with the given extension, returning the filename.
func WriteFormatted(f Formatter, comparison *domain.PlanComparison, ext string) (string, error) {
	data, err := f.Format(comparison)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("sip_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores the available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"table":       "console",
	"json-pretty": "json",
	"csv-table":   "csv",
}

// GetFormatterByName fetches a registered formatter, resolving aliases;
// nil when unknown.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}
