package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Greninja110/QA-Checklist/internal/config"
	"github.com/Greninja110/QA-Checklist/internal/core"
	"github.com/Greninja110/QA-Checklist/internal/storage"
	"github.com/Greninja110/QA-Checklist/internal/web"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the checklist API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			sessions, history, err := buildManagers(cfg)
			if err != nil {
				return err
			}

			// Heal both documents up front so the first request never
			// has to.
			if _, err := sessions.Get(); err != nil {
				return fmt.Errorf("failed to initialize session: %w", err)
			}
			if _, err := history.ListAll(); err != nil {
				return fmt.Errorf("failed to initialize history: %w", err)
			}

			log.Printf("qa-checklist %s serving on http://%s", Version, cfg.Server.Addr)
			server := web.NewServer(sessions, history)
			return server.Run(cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func buildManagers(cfg *config.Config) (*core.SessionManager, *core.HistoryManager, error) {
	store, err := storage.New(cfg.Storage.DataDir)
	if err != nil {
		return nil, nil, err
	}

	template := core.NewFileTemplate(cfg.Template.Path)
	history := core.NewHistoryManager(store)
	sessions := core.NewSessionManager(store, template, history)

	return sessions, history, nil
}
