// Package export renders the application summary for printing and download.
// Exporters only read a session.Summary; their failures never reach the
// session.
package export

import (
	"fmt"
	"strings"

	"jobportal-engine/internal/apply"
	"jobportal-engine/internal/session"
)

const DocumentTitle = "Job Application Details"

// Section is one labelled block of the summary document.
type Section struct {
	Heading string
	Lines   []string
}

// Document is the renderer-neutral layout of a summary.
type Document struct {
	Title    string
	Sections []Section
}

// Build lays out a summary. The about-me text is neutralized here so no
// renderer ever sees the raw markup.
func Build(sum session.Summary) Document {
	job, form := sum.Job, sum.Form

	return Document{
		Title: DocumentTitle,
		Sections: []Section{
			{
				Heading: job.Title,
				Lines: []string{
					"Company: " + job.Company,
					fmt.Sprintf("Experience Required: %d years", job.ExperienceYears),
					"Skills Required: " + strings.Join(job.RequiredSkills, ", "),
					job.Description,
				},
			},
			{
				Heading: "About Me",
				Lines:   splitLines(apply.PlainText(form.AboutMe)),
			},
			{
				Heading: "Form Data",
				Lines: []string{
					"First Name: " + form.FirstName,
					"Last Name: " + form.LastName,
					"Email: " + form.Email,
					"Skills: " + strings.Join(form.Skills, ", "),
				},
			},
		},
	}
}

func splitLines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimRight(l, " \t"); l != "" {
			out = append(out, l)
		}
	}
	return out
}
