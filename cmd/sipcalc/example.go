package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sipgo/sip-calculator/internal/config"
)

var exampleOutput string

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write a starter plan file to get going quickly",
	RunE: func(cmd *cobra.Command, args []string) error {
		file := config.NewInputParser().CreateExamplePlanFile()

		data, err := yaml.Marshal(file)
		if err != nil {
			return fmt.Errorf("failed to marshal example plan file: %w", err)
		}

		if err := os.WriteFile(exampleOutput, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exampleOutput, err)
		}

		fmt.Printf("Example plan file written to %s\n", exampleOutput)
		fmt.Println("Edit it to match your plans, then run: sipcalc plan --input", exampleOutput)
		return nil
	},
}

func init() {
	exampleCmd.Flags().StringVarP(&exampleOutput, "output", "O", "sip_plans.yaml", "Destination file")
}
