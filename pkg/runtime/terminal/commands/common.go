package commands

import (
	"github.com/de-tools/campaign-dash/pkg/models/domain"
	"github.com/de-tools/campaign-dash/pkg/services/config"
	"github.com/spf13/cobra"
)

// ConfigLoader resolves the effective configuration, flags included.
type ConfigLoader func() (*config.Config, error)

// ReportHandler prints a dashboard report in one output format.
type ReportHandler interface {
	Handle(report *domain.Report) error
}

type criteriaFlags struct {
	ageMin    int
	ageMax    int
	incomeMin float64
	incomeMax float64
	education []string
	marital   []string
}

func (f *criteriaFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.ageMin, "age-min", 0, "Lower age bound (defaults to the dataset minimum)")
	cmd.Flags().IntVar(&f.ageMax, "age-max", 0, "Upper age bound (defaults to the dataset maximum)")
	cmd.Flags().Float64Var(&f.incomeMin, "income-min", 0, "Lower income bound (defaults to the dataset minimum)")
	cmd.Flags().Float64Var(&f.incomeMax, "income-max", 0, "Upper income bound (defaults to the dataset maximum)")
	cmd.Flags().StringSliceVar(&f.education, "education", nil, "Education levels to include (defaults to all)")
	cmd.Flags().StringSliceVar(&f.marital, "marital", nil, "Marital statuses to include (defaults to all)")
}

// apply overlays the flags the user actually set on the dataset defaults.
func (f *criteriaFlags) apply(cmd *cobra.Command, c domain.FilterCriteria) domain.FilterCriteria {
	flags := cmd.Flags()
	if flags.Changed("age-min") {
		c.AgeMin = f.ageMin
	}
	if flags.Changed("age-max") {
		c.AgeMax = f.ageMax
	}
	if flags.Changed("income-min") {
		c.IncomeMin = f.incomeMin
	}
	if flags.Changed("income-max") {
		c.IncomeMax = f.incomeMax
	}
	if flags.Changed("education") {
		c.AllowedEducation = domain.NewSet(f.education...)
	}
	if flags.Changed("marital") {
		c.AllowedMarital = domain.NewSet(f.marital...)
	}
	return c
}
