package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal-engine/internal/domain"
)

func TestDefault(t *testing.T) {
	jobs := Default()
	require.Len(t, jobs, 6)

	assert.Equal(t, 1, jobs[0].ID)
	assert.Equal(t, "Frontend Developer", jobs[0].Title)
	assert.Equal(t, []string{"React", "JavaScript", "CSS"}, jobs[0].RequiredSkills)
	assert.Equal(t, "clogo2.jpg", jobs[1].LogoRef)
	assert.Equal(t, 5, jobs[1].ExperienceYears)
	for _, j := range jobs {
		assert.False(t, j.Applied, "job %d", j.ID)
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path falls back to default", func(t *testing.T) {
		jobs, err := Load("")
		require.NoError(t, err)
		assert.Len(t, jobs, 6)
	})

	t.Run("seed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "jobs.yml")
		content := `
jobs:
  - id: 10
    title: Go Engineer
    company: Gopher Co
    experience_years: 2
    required_skills: [Go, SQL]
    logo: gopher.png
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		jobs, err := Load(path)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Go Engineer", jobs[0].Title)
		assert.Equal(t, "gopher.png", jobs[0].LogoRef)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := domain.JobPosting{ID: 1, Title: "A", Company: "B"}

	tests := []struct {
		name    string
		jobs    []domain.JobPosting
		wantErr bool
	}{
		{name: "valid", jobs: []domain.JobPosting{valid}},
		{name: "empty", jobs: nil, wantErr: true},
		{name: "zero id", jobs: []domain.JobPosting{{Title: "A", Company: "B"}}, wantErr: true},
		{name: "duplicate id", jobs: []domain.JobPosting{valid, valid}, wantErr: true},
		{name: "missing title", jobs: []domain.JobPosting{{ID: 1, Company: "B"}}, wantErr: true},
		{name: "missing company", jobs: []domain.JobPosting{{ID: 1, Title: "A"}}, wantErr: true},
		{name: "negative experience", jobs: []domain.JobPosting{{ID: 1, Title: "A", Company: "B", ExperienceYears: -1}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.jobs)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseIgnoresApplied(t *testing.T) {
	jobs, err := Parse([]byte("jobs:\n  - id: 1\n    title: A\n    company: B\n    applied: true\n"))
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.False(t, jobs[0].Applied)
}

func TestSkills(t *testing.T) {
	all := Skills()
	assert.Len(t, all, 60)
	assert.True(t, IsSkill("React"))
	assert.True(t, IsSkill("TDD (Test-Driven Development)"))
	assert.False(t, IsSkill("TDD"))
	assert.False(t, IsSkill("react"))

	all[0].Value = "mutated"
	assert.Equal(t, "React", Skills()[0].Value)
}
