package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mlindborg/learnflow/internal/database"
	"github.com/mlindborg/learnflow/internal/datasync"
	"github.com/mlindborg/learnflow/internal/learnlog"
)

type ExportFormat string

func (f *ExportFormat) Set(val string) error {
	for _, format := range allExportFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid export format: %s", val)
}

func (f ExportFormat) String() string {
	return string(f)
}

func (f *ExportFormat) Type() string {
	return "ExportFormat"
}

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatYAML ExportFormat = "yaml"
)

var (
	_                pflag.Value = (*ExportFormat)(nil)
	allExportFormats             = []ExportFormat{ExportFormatCSV, ExportFormatYAML}
)

func newClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Reset every category to empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			service, closeService, err := newService(cfg)
			if err != nil {
				return err
			}
			defer closeService()

			service.Clear()
			if err := saveHistory(cfg, service); err != nil {
				return err
			}

			cmd.Println("All entries have been cleared.")
			return nil
		},
	}
}

func newSaveCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Write the history to a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			service, closeService, err := newService(cfg)
			if err != nil {
				return err
			}
			defer closeService()

			path := cfg.Files.HistoryFile
			if file != "" {
				path = file
			}
			if err := learnlog.NewJSONHistoryRepository(path).Save(service.Snapshot()); err != nil {
				return err
			}

			cmd.Printf("Entries saved to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "target file (default: configured history file)")

	return cmd
}

func newLoadCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Replace the history from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			path := cfg.Files.HistoryFile
			if file != "" {
				path = file
			}
			// load fully before touching the configured history so a bad
			// file never leaves partial state behind
			store, err := learnlog.NewJSONHistoryRepository(path).Load()
			if err != nil {
				return err
			}

			if err := learnlog.NewJSONHistoryRepository(cfg.Files.HistoryFile).Save(store); err != nil {
				return err
			}

			cmd.Printf("Entries loaded from %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "source file (default: configured history file)")

	return cmd
}

func newExportCommand() *cobra.Command {
	format := ExportFormatCSV
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the history for spreadsheet or notebook consumption",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			service, closeService, err := newService(cfg)
			if err != nil {
				return err
			}
			defer closeService()
			snapshot := service.Snapshot()

			path := output
			switch format {
			case ExportFormatYAML:
				if path == "" {
					path = cfg.ExportPath("learnflow.yml")
				}
				err = learnlog.WriteYAML(path, snapshot)
			case ExportFormatCSV:
				fallthrough
			default:
				if path == "" {
					path = cfg.ExportPath("learnflow.csv")
				}
				err = learnlog.WriteCSV(path, snapshot)
			}
			if err != nil {
				return err
			}

			cmd.Printf("Entries exported to %s\n", path)
			return nil
		},
	}
	cmd.Flags().Var(&format, "format", fmt.Sprintf("Export format. Possible values are %v", allExportFormats))
	cmd.Flags().StringVar(&output, "output", "", "output file (default: in the configured export directory)")

	return cmd
}

func newSyncCommand() *cobra.Command {
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronization commands",
	}

	syncCmd.AddCommand(newSyncImportDBCommand())

	return syncCmd
}

func newSyncImportDBCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import-db",
		Short: "Import the JSON history into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := learnlog.NewJSONHistoryRepository(cfg.Files.HistoryFile).Load()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()
			if err := database.EnsureSchema(ctx, db); err != nil {
				return fmt.Errorf("database.EnsureSchema() > %w", err)
			}

			importer := datasync.NewImporter(learnlog.NewDBRecordRepository(db), os.Stdout)
			if _, err := importer.ImportStore(ctx, store, datasync.ImportOptions{DryRun: dryRun}); err != nil {
				return fmt.Errorf("importer.ImportStore() > %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be imported without writing")

	return cmd
}
