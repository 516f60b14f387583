package commands

import (
	"fmt"
	"path/filepath"

	"github.com/de-tools/campaign-dash/pkg/services/dataset"
	"github.com/de-tools/campaign-dash/pkg/store/duckdb"
	"github.com/de-tools/campaign-dash/pkg/store/duckdb/records"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

type ImportCmd struct {
	loadConfig ConfigLoader
	dbPath     string
	quiet      bool
}

func NewImportCmd(loadConfig ConfigLoader) *cobra.Command {
	ic := &ImportCmd{loadConfig: loadConfig}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Snapshot the dataset file into DuckDB",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.dbPath, "db", "", "DuckDB file to write (defaults to store.db_path)")
	cmd.Flags().BoolVarP(&ic.quiet, "quiet", "q", false, "Do not show a progress bar")

	return cmd
}

func (ic *ImportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := ic.loadConfig()
	if err != nil {
		return err
	}
	dbPath := cfg.Store.DbPath
	if ic.dbPath != "" {
		dbPath = ic.dbPath
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer db.Close()

	st, err := records.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create records store: %w", err)
	}

	var progress dataset.Progress
	if !ic.quiet {
		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("importing records"),
			progressbar.OptionShowCount(),
			progressbar.OptionSpinnerType(14),
		)
		defer func() { _ = bar.Finish() }()
		progress = bar
	}

	src := dataset.NewFileSource(cfg.Dataset.Path, cfg.Dataset.Sheet)
	if _, err := dataset.Import(ctx, db, st, filepath.Base(cfg.Dataset.Path), src, progress); err != nil {
		return fmt.Errorf("failed to import dataset: %w", err)
	}

	last, err := st.LastImport(ctx)
	if err != nil {
		return err
	}
	if last == nil {
		return fmt.Errorf("import was not recorded in %s", dbPath)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records from %s into %s at %s\n",
		last.RecordCount, last.Source, dbPath, last.ImportedAt.Format("2006-01-02 15:04:05"))
	return err
}
