// Package main provides the entry point for the job portal MCP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job-portal",
	Short: "Job Portal MCP Server",
	Long:  "Job portal MCP server exposing tools and resources to create, delete, filter, and match candidate profiles and job postings held in memory.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
