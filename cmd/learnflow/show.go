package main

import (
	"github.com/spf13/cobra"

	"github.com/mlindborg/learnflow/internal/cli"
	"github.com/mlindborg/learnflow/internal/learnlog"
)

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the latest entry per category",
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

			cli.NewRenderer(cmd.OutOrStdout()).RenderSummary(service.Summary())
			return nil
		},
	}
}

func newHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history [category]",
		Short: "Show every recorded entry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var only learnlog.Category
			if len(args) == 1 {
				only, err = learnlog.ParseCategory(args[0])
				if err != nil {
					return err
				}
			}

			service, closeService, err := newService(cfg)
			if err != nil {
				return err
			}
			defer closeService()

			cli.NewRenderer(cmd.OutOrStdout()).RenderHistory(service.Snapshot(), only)
			return nil
		},
	}
}

func newLatestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "latest <category>",
		Short: "Show the most recent entry text for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			category, err := learnlog.ParseCategory(args[0])
			if err != nil {
				return err
			}

			service, closeService, err := newService(cfg)
			if err != nil {
				return err
			}
			defer closeService()
			text, err := service.Latest(category)
			if err != nil {
				return err
			}

			cli.NewRenderer(cmd.OutOrStdout()).RenderLatest(category, text)
			return nil
		},
	}
}
