// Package main provides the entry point for the Resume Roaster CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roast_agent",
	Short: "Resume Roaster CLI and HTTP API Server",
	Long:  "Resume Roaster scores resumes against job descriptions, delivers brutally honest critiques, and generates tailored resumes and cover letters via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
