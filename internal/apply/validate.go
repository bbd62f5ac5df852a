// Package apply validates job application forms.
package apply

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"jobportal-engine/internal/catalog"
	"jobportal-engine/internal/domain"
)

// Form field names, as submitted by the client.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldSkills    = "skills"
	FieldAboutMe   = "aboutMe"
)

// AllFields lists every form field in display order.
var AllFields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldSkills, FieldAboutMe}

// Fields are the raw values of the application form. A nil Skills slice means
// the field was never filled in; an empty one means everything was deselected.
type Fields struct {
	FirstName string   `json:"firstName" validate:"required,alpha"`
	LastName  string   `json:"lastName" validate:"required,alpha"`
	Email     string   `json:"email" validate:"required,email,gmail"`
	Skills    []string `json:"skills" validate:"required,min=1,dive,skill"`
	AboutMe   string   `json:"aboutMe" validate:"required,richtext"`
}

var gmailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@gmail\.com$`)

var labels = map[string]string{
	FieldFirstName: "First Name",
	FieldLastName:  "Last Name",
	FieldEmail:     "Email",
	FieldSkills:    "Skills",
	FieldAboutMe:   "About Me",
}

// Validator checks application forms against the fixed rule set.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "gmail", func(fl validator.FieldLevel) bool {
		return gmailRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "skill", func(fl validator.FieldLevel) bool {
		return catalog.IsSkill(fl.Field().String())
	})
	mustRegister(v, "richtext", func(fl validator.FieldLevel) bool {
		return PlainText(fl.Field().String()) != ""
	})
	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("apply: register %q: %v", tag, err))
	}
}

// Validate checks every field. On success it returns the form data with
// duplicate skills collapsed; otherwise a non-empty FieldErrors.
func (v *Validator) Validate(f Fields) (domain.ApplicationFormData, error) {
	if fe := v.check(f); len(fe) > 0 {
		return domain.ApplicationFormData{}, fe
	}
	return domain.ApplicationFormData{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Skills:    dedupe(f.Skills),
		AboutMe:   f.AboutMe,
	}, nil
}

// ValidateTouched returns the errors of the touched fields only, for live
// feedback while the form is being filled in.
func (v *Validator) ValidateTouched(f Fields, touched []string) FieldErrors {
	return v.check(f).Only(touched...)
}

func (v *Validator) check(f Fields) FieldErrors {
	out := FieldErrors{}

	err := v.v.Struct(f)
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError only happens on programmer error.
		panic(fmt.Sprintf("apply: %v", err))
	}

	for _, e := range verrs {
		field := e.Field()
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = message(field, e)
	}
	return out
}

func message(field string, e validator.FieldError) string {
	label := labels[field]
	switch e.Tag() {
	case "required":
		if field == FieldSkills {
			return "Skills are required"
		}
		return label + " is required"
	case "richtext":
		return label + " is required"
	case "alpha":
		return label + " should only contain letters"
	case "email":
		return "Invalid email address"
	case "gmail":
		return "Email must be a valid Gmail address"
	case "min":
		return "Select at least one skill"
	case "skill":
		return fmt.Sprintf("Unknown skill: %v", e.Value())
	default:
		return label + " is invalid"
	}
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
