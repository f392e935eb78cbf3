package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/overthinkhq/ponder/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP analysis API",
		Long: `Serve the analysis pipeline over HTTP.

Endpoints:
  POST /analyze   analyze a question
  GET  /intents   list the supported categories
  GET  /health    health check`,
		RunE: runServe,
	}

	cmd.Flags().String("host", "", "Host to bind (default from config)")
	cmd.Flags().IntP("port", "p", 0, "Port to listen on (default from config)")
	_ = viper.BindPFlag("server.host", cmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	analyzer, err := buildAnalyzer()
	if err != nil {
		return err
	}

	cfg := server.DefaultConfig()
	if host := viper.GetString("server.host"); host != "" {
		cfg.Host = host
	}
	if port := viper.GetInt("server.port"); port != 0 {
		cfg.Port = port
	}
	cfg.EnableCORS = viper.GetBool("server.cors")

	return server.New(analyzer, cfg, version).Start(cmd.Context())
}
