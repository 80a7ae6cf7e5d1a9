package main

import (
	"github.com/spf13/cobra"

	"github.com/sipgo/sip-calculator/internal/config"
)

var planInput string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Run every plan in a YAML plan file and compare the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		file, err := parser.LoadFromFile(planInput)
		if err != nil {
			return err
		}

		engine := newEngine()
		comparison, err := engine.RunPlans(file)
		if err != nil {
			return err
		}

		return render(comparison)
	},
}

func init() {
	planCmd.Flags().StringVarP(&planInput, "input", "i", "sip_plans.yaml", "Plan file to load")
}
