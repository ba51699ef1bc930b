package main

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlindborg/learnflow/internal/learnlog"
)

func newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <category> <text>...",
		Short: "Append an entry to a category",
		Args:  cobra.MinimumNArgs(2),
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
			record, err := service.SetEntry(category, strings.Join(args[1:], " "))
			if err != nil {
				if errors.Is(err, learnlog.ErrInvalidCategory) {
					return err
				}
				// audit trail is best effort, the entry is already committed
				slog.Warn("audit log write failed", "error", err)
			}
			if err := saveHistory(cfg, service); err != nil {
				return err
			}

			cmd.Println(record.Summary())
			return nil
		},
	}
}

func newGoalCommand() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "goal <text>...",
		Short: "Append a goal with a status",
		Args:  cobra.MinimumNArgs(1),
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

			var opts []learnlog.GoalOption
			if status != "" {
				opts = append(opts, learnlog.WithStatus(status))
			}
			record, err := service.AddGoal(strings.Join(args, " "), opts...)
			if err != nil {
				slog.Warn("audit log write failed", "error", err)
			}
			if err := saveHistory(cfg, service); err != nil {
				return err
			}

			cmd.Printf("%s (Status: %s)\n", record.Summary(), record.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "goal status (default from config)")

	return cmd
}

func newReflectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reflect <text>...",
		Short: "Append a reflection note with mood analysis",
		Args:  cobra.MinimumNArgs(1),
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
			record, err := service.AddReflection(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				// the reflection is committed either way; a classifier or
				// audit failure only costs the annotation
				slog.Warn("reflection annotation incomplete", "error", err)
			}
			if err := saveHistory(cfg, service); err != nil {
				return err
			}

			cmd.Println(record.Summary())
			return nil
		},
	}
}
