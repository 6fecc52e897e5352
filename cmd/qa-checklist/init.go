package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Greninja110/QA-Checklist/internal/config"
)

// starterChecklist seeds new installs with a minimal template so the
// first session is not empty. Users are expected to edit the file.
const starterChecklist = `[
  {
    "id": 1,
    "title": "Functionality",
    "items": [
      { "id": 1, "text": "All links work", "checked": false },
      { "id": 2, "text": "Forms validate and submit", "checked": false },
      { "id": 3, "text": "Search returns relevant results", "checked": false }
    ]
  },
  {
    "id": 2,
    "title": "Security",
    "items": [
      { "id": 1, "text": "Inputs sanitized against XSS", "checked": false },
      { "id": 2, "text": "Auth pages served over HTTPS", "checked": false }
    ]
  },
  {
    "id": 3,
    "title": "Responsiveness",
    "items": [
      { "id": 1, "text": "Layout holds at mobile widths", "checked": false },
      { "id": 2, "text": "Images scale without overflow", "checked": false }
    ]
  }
]
`

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config and starter checklist template",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath := configPath
			if cfgPath == "" {
				cfgPath = config.DefaultPath
			}

			if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
				if err := config.WriteDefault(cfgPath); err != nil {
					return fmt.Errorf("failed to write config: %w", err)
				}
				fmt.Printf("Wrote %s\n", cfgPath)
			} else {
				fmt.Printf("%s already exists, skipping\n", cfgPath)
			}

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if _, err := os.Stat(cfg.Template.Path); os.IsNotExist(err) {
				if err := os.WriteFile(cfg.Template.Path, []byte(starterChecklist), 0644); err != nil {
					return fmt.Errorf("failed to write template: %w", err)
				}
				fmt.Printf("Wrote %s\n", cfg.Template.Path)
			} else {
				fmt.Printf("%s already exists, skipping\n", cfg.Template.Path)
			}

			return nil
		},
	}
}
