package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/sipgo/sip-calculator/internal/domain"
)

// InputParser handles parsing of plan configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan file from YAML.
func (ip *InputParser) LoadFromFile(filename string) (*domain.PlanFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file domain.PlanFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlanFile(&file); err != nil {
		return nil, fmt.Errorf("plan file validation failed: %w", err)
	}

	return &file, nil
}

// ValidatePlanFile validates the shared assumptions and every plan.
func (ip *InputParser) ValidatePlanFile(file *domain.PlanFile) error {
	if err := ip.validateAssumptions(&file.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}

	if len(file.Plans) == 0 {
		return fmt.Errorf("no plans provided")
	}

	seen := make(map[string]bool, len(file.Plans))
	for i, plan := range file.Plans {
		if err := ip.validatePlan(&plan); err != nil {
			return fmt.Errorf("plan %d validation failed: %w", i, err)
		}
		if seen[plan.Name] {
			return fmt.Errorf("duplicate plan name %q", plan.Name)
		}
		seen[plan.Name] = true
	}

	return nil
}

// validateAssumptions validates the shared assumptions block.
func (ip *InputParser) validateAssumptions(a *domain.Assumptions) error {
	if a.AnnualRatePercent.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return fmt.Errorf("annual rate must be greater than -100%%")
	}
	if a.AnnualRatePercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("annual rate above 100%% is not plausible")
	}
	if a.ProjectionIntervalMonths < 1 {
		return fmt.Errorf("projection interval must be at least 1 month")
	}
	return nil
}

// validatePlan validates a single plan entry.
func (ip *InputParser) validatePlan(plan *domain.Plan) error {
	if plan.Name == "" {
		return fmt.Errorf("plan name is required")
	}

	switch plan.Type {
	case domain.PlanForward:
		if plan.MonthlyAmount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("monthly amount must be positive")
		}
		if !plan.GoalAmount.IsZero() {
			return fmt.Errorf("forward plan must not set goal_amount")
		}
	case domain.PlanGoal:
		if plan.GoalAmount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("goal amount must be positive")
		}
		if !plan.MonthlyAmount.IsZero() {
			return fmt.Errorf("goal plan must not set monthly_amount")
		}
	default:
		return fmt.Errorf("plan type must be 'forward' or 'goal', got %q", plan.Type)
	}

	if plan.Years <= 0 {
		return fmt.Errorf("years must be positive")
	}
	if plan.Years > 100 {
		return fmt.Errorf("years must be at most 100")
	}
	if plan.AnnualRatePercent != nil && plan.AnnualRatePercent.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return fmt.Errorf("annual rate override must be greater than -100%%")
	}

	return nil
}

// CreateExamplePlanFile creates a starter plan file.
func (ip *InputParser) CreateExamplePlanFile() *domain.PlanFile {
	conservativeRate := decimal.NewFromInt(8)

	return &domain.PlanFile{
		Assumptions: domain.Assumptions{
			AnnualRatePercent:        decimal.NewFromInt(12),
			ProjectionIntervalMonths: 12,
			IncludeFinalTerm:         false,
		},
		Plans: []domain.Plan{
			{
				Name:          "Wealth Builder",
				Type:          domain.PlanForward,
				MonthlyAmount: decimal.NewFromInt(10000),
				Years:         20,
			},
			{
				Name:       "One Crore Goal",
				Type:       domain.PlanGoal,
				GoalAmount: decimal.NewFromInt(10000000),
				Years:      20,
			},
			{
				Name:              "Debt-Heavy Fallback",
				Type:              domain.PlanForward,
				MonthlyAmount:     decimal.NewFromInt(15000),
				Years:             10,
				AnnualRatePercent: &conservativeRate,
			},
		},
	}
}
