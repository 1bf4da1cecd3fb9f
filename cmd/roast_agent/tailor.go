package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-roaster/internal/generation"
	"github.com/jonathan/resume-roaster/internal/ingestion"
	"github.com/jonathan/resume-roaster/internal/observability"
	"github.com/jonathan/resume-roaster/internal/profile"
	"github.com/jonathan/resume-roaster/internal/types"
)

var (
	tailorResumeFile  string
	tailorJDFile      string
	tailorJDURL       string
	tailorTemplate    string
	tailorCoverLetter bool
	tailorOutFile     string
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Generate a resume tailored to a job description",
	Long:  "Parse a resume into a candidate profile, then generate a resume tailored to the given job description, with an optional cover letter.",
	RunE:  runTailor,
}

func init() {
	tailorCmd.Flags().StringVarP(&tailorResumeFile, "resume", "r", "", "Path to resume file (.txt or .pdf) (required)")
	tailorCmd.Flags().StringVar(&tailorJDFile, "jd-file", "", "Path to job description text file")
	tailorCmd.Flags().StringVar(&tailorJDURL, "jd-url", "", "URL to fetch the job posting from")
	tailorCmd.Flags().StringVar(&tailorTemplate, "template", "modern", "Resume template (modern, classic, creative)")
	tailorCmd.Flags().BoolVar(&tailorCoverLetter, "cover-letter", false, "Also generate a cover letter")
	tailorCmd.Flags().StringVarP(&tailorOutFile, "out", "o", "", "Write the tailored resume text to this path")

	tailorCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	resumeText, _, err := ingestion.ResumeFromFile(tailorResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jobDescription, err := loadJobDescription(ctx, tailorJDFile, tailorJDURL)
	if err != nil {
		return err
	}

	client, err := newGenerationClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	parsed, err := profile.NewService(client, nil).Parse(ctx, uuid.Nil, resumeText)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	resume, err := generation.NewService(client, nil).Preview(ctx, generation.Request{
		Profile:            parsed,
		JobDescription:     jobDescription,
		Template:           types.ParseTemplateTag(tailorTemplate),
		IncludeCoverLetter: tailorCoverLetter,
	})
	if err != nil {
		return fmt.Errorf("tailoring failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintGeneratedResume(resume)

	if tailorOutFile != "" {
		content := resume.Content
		if resume.CoverLetter != "" {
			content += "\n\n---\n\n" + resume.CoverLetter
		}
		if err := os.WriteFile(tailorOutFile, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write resume: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Tailored resume written to %s\n", tailorOutFile)
	} else {
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, resume.Content)
	}

	return nil
}
