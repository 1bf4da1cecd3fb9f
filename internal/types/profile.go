// Package types defines the shared domain types for the resume roaster pipeline.
package types

import "strings"

// Contact holds the candidate's contact details extracted from a resume.
// Empty fields mean the resume did not contain them.
type Contact struct {
	FullName     string `json:"full_name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Location     string `json:"location,omitempty"`
	LinkedInURL  string `json:"linkedin_url,omitempty"`
	GitHubURL    string `json:"github_url,omitempty"`
	PortfolioURL string `json:"portfolio_url,omitempty"`
}

// Experience represents a single work experience entry.
type Experience struct {
	Company      string   `json:"company"`
	Title        string   `json:"title"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	IsCurrent    bool     `json:"is_current,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education represents a single education entry.
type Education struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree,omitempty"`
	Major          string `json:"major,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

// Project represents a personal or professional project entry.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Outcomes     string   `json:"outcomes,omitempty"`
}

// Certification represents a professional certification entry.
type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer,omitempty"`
	Date         string `json:"date,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
}

// Achievement represents a standalone achievement or award.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
}

// CandidateProfile is the canonical structured form of a candidate's
// master resume. It is produced by a one-time parse of the uploaded
// resume and reused across generation requests; it is only ever
// replaced wholesale by a re-parse, never partially updated.
type CandidateProfile struct {
	Contact        Contact             `json:"contact"`
	Summary        string              `json:"summary,omitempty"`
	Experience     []Experience        `json:"experience,omitempty"`
	Education      []Education         `json:"education,omitempty"`
	Skills         map[string][]string `json:"skills,omitempty"`
	Projects       []Project           `json:"projects,omitempty"`
	Certifications []Certification     `json:"certifications,omitempty"`
	Achievements   []Achievement       `json:"achievements,omitempty"`
}

// IsEmpty reports whether the profile carries no usable content.
func (p *CandidateProfile) IsEmpty() bool {
	if p == nil {
		return true
	}
	return strings.TrimSpace(p.Contact.FullName) == "" &&
		strings.TrimSpace(p.Summary) == "" &&
		len(p.Experience) == 0 &&
		len(p.Skills) == 0
}

// SkillList flattens the categorized skills mapping into a single slice,
// preserving no particular category order but deduplicating entries.
func (p *CandidateProfile) SkillList() []string {
	if p == nil || len(p.Skills) == 0 {
		return nil
	}
	seen := make(map[string]bool)
	var skills []string
	for _, category := range p.Skills {
		for _, skill := range category {
			normalized := strings.ToLower(strings.TrimSpace(skill))
			if normalized == "" || seen[normalized] {
				continue
			}
			seen[normalized] = true
			skills = append(skills, skill)
		}
	}
	return skills
}

// RecentExperience returns up to n most recent experience entries.
// Entries are assumed to be stored most-recent first, as produced by
// the profile parser.
func (p *CandidateProfile) RecentExperience(n int) []Experience {
	if p == nil || n <= 0 || len(p.Experience) == 0 {
		return nil
	}
	if n > len(p.Experience) {
		n = len(p.Experience)
	}
	return p.Experience[:n]
}
