package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/campaign-dash/pkg/models/domain"
	"github.com/de-tools/campaign-dash/pkg/runtime/bootstrap"
	"github.com/de-tools/campaign-dash/pkg/runtime/chart"
	"github.com/de-tools/campaign-dash/pkg/services/dashboard"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type RenderCmd struct {
	loadConfig ConfigLoader
	criteria   criteriaFlags
	outDir     string
	charts     []string
	width      int
	height     int
	hideLegend bool
}

func NewRenderCmd(loadConfig ConfigLoader) *cobra.Command {
	rc := &RenderCmd{loadConfig: loadConfig}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the dashboard charts as PNG files",
		RunE:  rc.run,
	}

	defaults := chart.NewRenderer()
	rc.criteria.bind(cmd)
	cmd.Flags().StringVarP(&rc.outDir, "out", "o", "charts", "Directory the PNG files are written to")
	cmd.Flags().StringSliceVar(&rc.charts, "chart", nil, "Charts to render (defaults to all)")
	cmd.Flags().IntVar(&rc.width, "width", defaults.Width, "Image width in pixels")
	cmd.Flags().IntVar(&rc.height, "height", defaults.Height, "Image height in pixels")
	cmd.Flags().BoolVar(&rc.hideLegend, "hide-legend", false, "Hide chart legends")

	return cmd
}

func (rc *RenderCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

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
	if dash.Empty() {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), dash.Notice)
		return err
	}

	selected, err := rc.selectCharts(dash)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(rc.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	renderer := &chart.Renderer{Width: rc.width, Height: rc.height}
	for _, spec := range selected {
		path := filepath.Join(rc.outDir, spec.ID+".png")
		if err := writeChart(renderer, spec, path); err != nil {
			return err
		}
		logger.Info().Str("chart", spec.ID).Str("path", path).Msg("chart rendered")
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
			return err
		}
	}
	return nil
}

func (rc *RenderCmd) selectCharts(dash *domain.Dashboard) ([]domain.ChartSpec, error) {
	if len(rc.charts) == 0 {
		return dash.Charts, nil
	}
	selected := make([]domain.ChartSpec, 0, len(rc.charts))
	for _, id := range rc.charts {
		spec, ok := dash.Chart(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q. Supported charts: %v", domain.ErrUnknownChart, id, domain.ChartIDs)
		}
		selected = append(selected, spec)
	}
	return selected, nil
}

func writeChart(renderer *chart.Renderer, spec domain.ChartSpec, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := renderer.Render(spec, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to render %s: %w", spec.ID, err)
	}
	return f.Close()
}
