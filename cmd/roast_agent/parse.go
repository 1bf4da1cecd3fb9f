package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-roaster/internal/ingestion"
	"github.com/jonathan/resume-roaster/internal/observability"
	"github.com/jonathan/resume-roaster/internal/profile"
)

var (
	parseResumeFile string
	parseOutFile    string
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume into a structured candidate profile",
	Long:  "Extract a structured candidate profile (contact info, experience, education, skills, projects) from a resume file.",
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseResumeFile, "resume", "r", "", "Path to resume file (.txt or .pdf) (required)")
	parseCmd.Flags().StringVarP(&parseOutFile, "out", "o", "", "Write the profile JSON to this path")

	parseCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	resumeText, _, err := ingestion.ResumeFromFile(parseResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	client, err := newGenerationClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	// No store for CLI runs; the parsed profile goes to stdout or a file.
	parsed, err := profile.NewService(client, nil).Parse(ctx, uuid.Nil, resumeText)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintProfile(parsed)

	if parseOutFile != "" {
		data, err := json.MarshalIndent(parsed, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode profile: %w", err)
		}
		if err := os.WriteFile(parseOutFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write profile: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Profile written to %s\n", parseOutFile)
	}

	return nil
}
