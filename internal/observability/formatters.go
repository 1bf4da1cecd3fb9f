// Package observability provides formatted output utilities for the
// CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-roaster/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRoastResult outputs a human-readable summary of a roast.
func (p *Printer) PrintRoastResult(result *types.RoastResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Verdict:        %s\n", result.Verdict))
	sb.WriteString(fmt.Sprintf("Shortlist odds: %d%%\n", result.ShortlistProbability))
	sb.WriteString(fmt.Sprintf("ATS score:      %d\n", result.ATSScore))
	sb.WriteString(fmt.Sprintf("Keyword match:  %d%%\n", result.KeywordMatchPercent))
	sb.WriteString("\n")

	if result.VerdictReason != "" {
		sb.WriteString(result.VerdictReason + "\n\n")
	}

	if len(result.TopRejectionReasons) > 0 {
		sb.WriteString("Likely rejection reasons:\n")
		for _, reason := range result.TopRejectionReasons {
			sb.WriteString("  • " + reason + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Section scores:\n")
	for _, section := range []struct {
		name  string
		roast types.SectionRoast
	}{
		{"Summary", result.Sections.Summary},
		{"Skills", result.Sections.Skills},
		{"Experience", result.Sections.Experience},
		{"Projects", result.Sections.Projects},
		{"Formatting", result.Sections.Formatting},
	} {
		sb.WriteString(fmt.Sprintf("  %-11s %3d\n", section.name, section.roast.Score))
	}

	if len(result.KeywordGaps) > 0 {
		sb.WriteString("\nKeyword gaps:\n")
		count := min(len(result.KeywordGaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString("  • " + result.KeywordGaps[i] + "\n")
		}
		if len(result.KeywordGaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.KeywordGaps)-maxItemsToShow))
		}
	}

	if result.OverallRoast != "" {
		sb.WriteString("\n" + result.OverallRoast + "\n")
	}

	p.printBox("ROAST RESULT", strings.TrimRight(sb.String(), "\n"))
}

// PrintGeneratedResume outputs a summary of a tailoring run without
// dumping the full resume body.
func (p *Printer) PrintGeneratedResume(resume *types.GeneratedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Template:   %s\n", resume.Template))
	sb.WriteString(fmt.Sprintf("ATS score:  %d\n", resume.ATSScore))
	sb.WriteString(fmt.Sprintf("Length:     %d chars\n", len(resume.Content)))
	if resume.CoverLetter != "" {
		sb.WriteString("Cover letter: included\n")
	}

	if resume.Analysis != nil {
		sb.WriteString(fmt.Sprintf("Match:      %s\n", resume.Analysis.MatchScore))
		if len(resume.Analysis.MissingKeywords) > 0 {
			sb.WriteString("\nMissing keywords:\n")
			count := min(len(resume.Analysis.MissingKeywords), maxItemsToShow)
			for i := 0; i < count; i++ {
				sb.WriteString("  • " + resume.Analysis.MissingKeywords[i] + "\n")
			}
		}
	}

	p.printBox("TAILORED RESUME", strings.TrimRight(sb.String(), "\n"))
}

// PrintProfile outputs a summary of a parsed candidate profile.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if profile.Contact.FullName != "" {
		sb.WriteString(fmt.Sprintf("Name:        %s\n", profile.Contact.FullName))
	}
	if profile.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:       %s\n", profile.Contact.Email))
	}
	sb.WriteString(fmt.Sprintf("Experience:  %d entries\n", len(profile.Experience)))
	sb.WriteString(fmt.Sprintf("Education:   %d entries\n", len(profile.Education)))
	sb.WriteString(fmt.Sprintf("Skills:      %d\n", len(profile.SkillList())))
	sb.WriteString(fmt.Sprintf("Projects:    %d\n", len(profile.Projects)))

	p.printBox("PARSED PROFILE", strings.TrimRight(sb.String(), "\n"))
}
