package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/de-tools/campaign-dash/pkg/adapters"
	"github.com/de-tools/campaign-dash/pkg/runtime/bootstrap"
	"github.com/de-tools/campaign-dash/pkg/services/dashboard"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	loadConfig ConfigLoader
	reporters  map[string]ReportHandler
	criteria   criteriaFlags
	format     string
	hideLegend bool
}

func NewReportCmd(loadConfig ConfigLoader, reporters map[string]ReportHandler) *cobra.Command {
	rc := &ReportCmd{loadConfig: loadConfig, reporters: reporters}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the dashboard aggregates for the given filters",
		RunE:  rc.run,
	}

	rc.criteria.bind(cmd)
	cmd.Flags().StringVar(&rc.format, "format", "text", fmt.Sprintf("Output format (%s)", strings.Join(rc.formats(), "|")))
	cmd.Flags().BoolVar(&rc.hideLegend, "hide-legend", false, "Hide chart legends")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	reporter, ok := rc.reporters[rc.format]
	if !ok {
		return fmt.Errorf("unsupported format %q. Supported formats: %v", rc.format, rc.formats())
	}

	cfg, err := rc.loadConfig()
	if err != nil {
		return err
	}

	svc, err := bootstrap.NewDashboard(ctx, cfg, nil)
	if err != nil {
		return err
	}

	criteria := rc.criteria.apply(cmd, svc.DefaultCriteria())
	dash, err := svc.Build(ctx, criteria, dashboard.ViewOptions{ShowLegend: !rc.hideLegend})
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}

	report := adapters.MapDashboardDomainToReport(*dash, cfg.Dashboard.Variant)
	return reporter.Handle(&report)
}

func (rc *ReportCmd) formats() []string {
	names := make([]string, 0, len(rc.reporters))
	for name := range rc.reporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
