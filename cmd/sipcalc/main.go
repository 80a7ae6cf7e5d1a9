package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/sipgo/sip-calculator/internal/calculation"
	"github.com/sipgo/sip-calculator/internal/domain"
	"github.com/sipgo/sip-calculator/internal/output"
)

var (
	flagFormat  string
	flagOut     bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sipcalc",
	Short: "SIP calculator",
	Long:  "Compute SIP future values, goal contributions, growth projections and fund scores.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "console",
		fmt.Sprintf("Output format (%v)", output.AvailableFormatterNames()))
	rootCmd.PersistentFlags().BoolVarP(&flagOut, "out", "o", false,
		"Write output to a timestamped report file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"Enable engine debug logging")

	rootCmd.AddCommand(forwardCmd)
	rootCmd.AddCommand(reverseCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(projectionCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(exampleCmd)
}

// newEngine builds the calculation engine honoring --verbose.
func newEngine() *calculation.Engine {
	engine := calculation.NewEngine()
	if flagVerbose {
		engine.SetLogger(stdLogger{})
	}
	return engine
}

// render resolves the selected formatter and writes the comparison to stdout
// or, with --out, to a timestamped report file.
func render(comparison *domain.PlanComparison) error {
	formatter := output.GetFormatterByName(flagFormat)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %v)", flagFormat, output.AvailableFormatterNames())
	}

	if flagOut {
		ext := formatter.Name()
		if ext == "console" {
			ext = "txt"
		}
		filename, err := output.WriteFormatted(formatter, comparison, ext)
		if err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", filename)
		return nil
	}

	data, err := formatter.Format(comparison)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// stdLogger adapts the standard library logger to the engine's interface.
type stdLogger struct{}

func (stdLogger) Debugf(format string, args ...any) { log.Printf("DEBUG "+format, args...) }
func (stdLogger) Infof(format string, args ...any)  { log.Printf("INFO "+format, args...) }
func (stdLogger) Warnf(format string, args ...any)  { log.Printf("WARN "+format, args...) }
