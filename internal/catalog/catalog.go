// Package catalog holds the static job postings offered during a session and
// the search filter over them.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"jobportal-engine/internal/domain"
)

//go:embed seed.yml
var defaultSeed []byte

type seedFile struct {
	Jobs []domain.JobPosting `yaml:"jobs"`
}

// Default returns the built-in postings.
func Default() []domain.JobPosting {
	jobs, err := Parse(defaultSeed)
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in seed is invalid: %v", err))
	}
	return jobs
}

// Load reads postings from a YAML seed file. An empty path yields Default().
func Load(path string) ([]domain.JobPosting, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	jobs, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return jobs, nil
}

// Parse decodes and validates a YAML seed document. Applied is never read
// from the seed; every posting starts out not applied.
func Parse(b []byte) ([]domain.JobPosting, error) {
	var sf seedFile
	if err := yaml.Unmarshal(b, &sf); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := Validate(sf.Jobs); err != nil {
		return nil, err
	}
	for i := range sf.Jobs {
		sf.Jobs[i].Applied = false
	}
	return sf.Jobs, nil
}

// Validate checks the structural rules every seed list must satisfy.
func Validate(jobs []domain.JobPosting) error {
	var errs []string
	seen := map[int]bool{}

	if len(jobs) == 0 {
		errs = append(errs, "at least one job is required")
	}
	for i, j := range jobs {
		if j.ID <= 0 {
			errs = append(errs, fmt.Sprintf("jobs[%d].id must be > 0", i))
		} else if seen[j.ID] {
			errs = append(errs, fmt.Sprintf("jobs[%d].id %d is duplicated", i, j.ID))
		}
		seen[j.ID] = true

		if strings.TrimSpace(j.Title) == "" {
			errs = append(errs, fmt.Sprintf("jobs[%d].title is required", i))
		}
		if strings.TrimSpace(j.Company) == "" {
			errs = append(errs, fmt.Sprintf("jobs[%d].company is required", i))
		}
		if j.ExperienceYears < 0 {
			errs = append(errs, fmt.Sprintf("jobs[%d].experience_years must be >= 0", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
