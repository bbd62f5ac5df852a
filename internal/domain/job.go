package domain

// JobPosting is one static job record in the catalog. Applied is the only
// field that changes during a session, and only from false to true.
type JobPosting struct {
	ID              int      `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	Company         string   `json:"company" yaml:"company"`
	ExperienceYears int      `json:"experienceYears" yaml:"experience_years"`
	RequiredSkills  []string `json:"requiredSkills" yaml:"required_skills"`
	Description     string   `json:"description" yaml:"description"`
	LogoRef         string   `json:"logoRef" yaml:"logo"`
	Applied         bool     `json:"applied" yaml:"-"`
}

// Clone returns a copy that shares no slices with j.
func (j JobPosting) Clone() JobPosting {
	out := j
	out.RequiredSkills = append([]string(nil), j.RequiredSkills...)
	return out
}
