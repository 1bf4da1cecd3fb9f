package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-roaster/internal/ingestion"
	"github.com/jonathan/resume-roaster/internal/observability"
	"github.com/jonathan/resume-roaster/internal/roast"
)

var (
	roastResumeFile string
	roastJDFile     string
	roastJDURL      string
)

var roastCmd = &cobra.Command{
	Use:   "roast",
	Short: "Roast a resume against a job description",
	Long:  "Score a resume against a job description and print a brutally honest critique with shortlist odds, ATS score and per-section feedback.",
	RunE:  runRoast,
}

func init() {
	roastCmd.Flags().StringVarP(&roastResumeFile, "resume", "r", "", "Path to resume file (.txt or .pdf) (required)")
	roastCmd.Flags().StringVar(&roastJDFile, "jd-file", "", "Path to job description text file")
	roastCmd.Flags().StringVar(&roastJDURL, "jd-url", "", "URL to fetch the job posting from")

	roastCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(roastCmd)
}

func runRoast(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	resumeText, _, err := ingestion.ResumeFromFile(roastResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jobDescription, err := loadJobDescription(ctx, roastJDFile, roastJDURL)
	if err != nil {
		return err
	}

	client, err := newGenerationClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	result, err := roast.NewService(client).Roast(ctx, roast.Request{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
	})
	if err != nil {
		return fmt.Errorf("roast failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintRoastResult(result)
	return nil
}
