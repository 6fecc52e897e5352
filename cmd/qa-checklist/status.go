package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Greninja110/QA-Checklist/internal/config"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session and history summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			sessions, history, err := buildManagers(cfg)
			if err != nil {
				return err
			}

			sess, err := sessions.Get()
			if err != nil {
				return fmt.Errorf("failed to load session: %w", err)
			}

			target := sess.TargetWebsite
			if target == "" {
				target = "(not set)"
			}

			items, checked := 0, 0
			for _, h := range sess.Checklist {
				for _, it := range h.Items {
					items++
					if it.Checked {
						checked++
					}
				}
			}

			fmt.Printf("Target:    %s\n", target)
			fmt.Printf("Started:   %s\n", sess.StartDate)
			fmt.Printf("Checklist: %d/%d items checked across %d headings\n", checked, items, len(sess.Checklist))
			fmt.Printf("Notes:     %d\n", len(sess.Notes))

			entries, err := history.ListAll()
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}
			fmt.Printf("Completed: %d sessions\n", len(entries))

			return nil
		},
	}
}
