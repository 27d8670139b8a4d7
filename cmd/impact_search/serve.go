package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/impact-search/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  `Start an HTTP server exposing POST /api/search, GET /api/search/vocabulary, GET /health and GET /metrics.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Port = port
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			c, err := buildComponents(ctx, a.cfg, a.logger, false)
			if err != nil {
				return err
			}
			defer c.Close()

			// Only hand a non-nil store to the server
			var database server.Pinger
			if c.database != nil {
				database = c.database
			}

			srv := server.New(server.Config{
				Port:      a.cfg.Port,
				RateLimit: a.cfg.RateLimit,
				Logger:    a.logger,
			}, c.service, database)

			return srv.Start(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on (overrides PORT)")
	return cmd
}
