package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/campaign-dash/pkg/runtime/terminal/commands"
	"github.com/de-tools/campaign-dash/pkg/runtime/terminal/export"
	"github.com/de-tools/campaign-dash/pkg/services/config"

	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reporters  map[string]commands.ReportHandler
	rootCmd    *cobra.Command
	configPath string
	dataset    string
	variant    string
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporters: map[string]commands.ReportHandler{
			"text":  NewReporter(opts.Output),
			"table": export.NewReporter(opts.Output),
		},
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// LoadConfig reads the configuration file and applies the global flag overrides.
func (cli *CLI) LoadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(cli.configPath)
	if err != nil {
		return nil, err
	}
	if cli.dataset != "" {
		cfg.Dataset.Path = cli.dataset
		cfg.Dataset.Source = "file"
	}
	if cli.variant != "" {
		cfg.Dashboard.Variant = cli.variant
	}
	return cfg, nil
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dash",
		Short:         "Marketing campaign dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&cli.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().StringVar(&cli.dataset, "dataset", "", "Dataset file (.xlsx or .csv), overrides dataset.path")
	cmd.PersistentFlags().StringVar(&cli.variant, "variant", "", "Dashboard variant (basic|enhanced|full)")

	cmd.AddCommand(commands.NewReportCmd(cli.LoadConfig, cli.reporters))
	cmd.AddCommand(commands.NewRenderCmd(cli.LoadConfig))
	cmd.AddCommand(commands.NewImportCmd(cli.LoadConfig))

	return cmd
}
