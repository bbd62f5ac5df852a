package domain

// ApplicationFormData is a validated application form submission.
// AboutMe holds the raw rich text as submitted; it is untrusted and must be
// neutralized before rendering.
type ApplicationFormData struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Skills    []string `json:"skills"`
	AboutMe   string   `json:"aboutMe"`
}

func (a ApplicationFormData) Clone() ApplicationFormData {
	out := a
	out.Skills = append([]string(nil), a.Skills...)
	return out
}

// Skill is one entry of the fixed skill vocabulary offered by the form.
type Skill struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
