package catalog

import (
	"strings"

	"jobportal-engine/internal/domain"
)

// Search returns the postings whose title contains query, ignoring case, in
// catalog order. An empty query returns every posting.
func Search(jobs []domain.JobPosting, query string) []domain.JobPosting {
	needle := strings.ToLower(query)
	out := make([]domain.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		if strings.Contains(strings.ToLower(j.Title), needle) {
			out = append(out, j)
		}
	}
	return out
}
