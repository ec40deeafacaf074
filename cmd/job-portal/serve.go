package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ishu9bansal/mcp-job-portal/internal/config"
	"github.com/ishu9bansal/mcp-job-portal/internal/server"
)

var (
	servePort      int
	serveTransport string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long:  `Start the job portal MCP server over streamable HTTP (default) or stdio.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default $PORT or 3000)")
	serveCmd.Flags().StringVar(&serveTransport, "transport", "", "Transport: http or stdio (default $MCP_TRANSPORT or http)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	// Flags override the environment.
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveTransport != "" {
		cfg.Transport = serveTransport
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv := server.New(server.Config{Port: cfg.Port})

	switch cfg.Transport {
	case config.TransportStdio:
		return srv.RunStdio(cmd.Context())
	case config.TransportHTTP:
		return srv.Start()
	default:
		return fmt.Errorf("unknown transport %q", cfg.Transport)
	}
}
