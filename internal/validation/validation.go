// Package validation contains the request payload validators. Each
// validator returns a field→message map so clients can render errors
// next to the offending form field.
package validation

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Result is the outcome of validating one request payload.
type Result struct {
	Errors  map[string]string
	IsValid bool
}

func newResult() Result {
	return Result{Errors: map[string]string{}}
}

func (r *Result) finish() Result {
	r.IsValid = len(r.Errors) == 0
	return *r
}

// RegisterInput is the payload for account registration.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput is the payload for credential verification.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileInput is the payload for profile create-or-update. Skills is a
// comma-delimited string; the service layer splits it into a list.
type ProfileInput struct {
	Handle         string `json:"handle"`
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// ExperienceInput is the payload for adding a work history entry.
type ExperienceInput struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationInput is the payload for adding an education entry.
type EducationInput struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// PostInput is the payload for creating a post or a comment.
type PostInput struct {
	Text string `json:"text"`
}

// ValidateRegister checks a registration payload.
func ValidateRegister(in RegisterInput) Result {
	r := newResult()

	if isEmpty(in.Name) {
		r.Errors["name"] = "Name field is required"
	} else if !lengthBetween(in.Name, 2, 30) {
		r.Errors["name"] = "Name must be between 2 and 30 characters"
	}

	if isEmpty(in.Email) {
		r.Errors["email"] = "Email field is required"
	} else if !emailRe.MatchString(in.Email) {
		r.Errors["email"] = "Email is invalid"
	}

	if isEmpty(in.Password) {
		r.Errors["password"] = "Password field is required"
	} else if !lengthBetween(in.Password, 6, 30) {
		r.Errors["password"] = "Password must be between 6 and 30 characters"
	}

	return r.finish()
}

// ValidateLogin checks a login payload.
func ValidateLogin(in LoginInput) Result {
	r := newResult()

	if isEmpty(in.Email) {
		r.Errors["email"] = "Email field is required"
	} else if !emailRe.MatchString(in.Email) {
		r.Errors["email"] = "Email is invalid"
	}

	if isEmpty(in.Password) {
		r.Errors["password"] = "Password field is required"
	}

	return r.finish()
}

// ValidateProfile checks a profile create-or-update payload. Optional
// URL fields are only validated when supplied.
func ValidateProfile(in ProfileInput) Result {
	r := newResult()

	if isEmpty(in.Handle) {
		r.Errors["handle"] = "Profile handle is required"
	} else if !lengthBetween(in.Handle, 2, 40) {
		r.Errors["handle"] = "Handle needs to be between 2 and 40 characters"
	}

	if isEmpty(in.Status) {
		r.Errors["status"] = "Status field is required"
	}
	if isEmpty(in.Skills) {
		r.Errors["skills"] = "Skills field is required"
	}

	optionalURL(r.Errors, "website", in.Website)
	optionalURL(r.Errors, "youtube", in.Youtube)
	optionalURL(r.Errors, "twitter", in.Twitter)
	optionalURL(r.Errors, "facebook", in.Facebook)
	optionalURL(r.Errors, "linkedin", in.Linkedin)
	optionalURL(r.Errors, "instagram", in.Instagram)

	return r.finish()
}

// ValidateExperience checks a work history entry payload.
func ValidateExperience(in ExperienceInput) Result {
	r := newResult()

	if isEmpty(in.Title) {
		r.Errors["title"] = "Job title field is required"
	}
	if isEmpty(in.Company) {
		r.Errors["company"] = "Company field is required"
	}
	if isEmpty(in.From) {
		r.Errors["from"] = "From date field is required"
	}

	return r.finish()
}

// ValidateEducation checks an education entry payload.
func ValidateEducation(in EducationInput) Result {
	r := newResult()

	if isEmpty(in.School) {
		r.Errors["school"] = "School field is required"
	}
	if isEmpty(in.Degree) {
		r.Errors["degree"] = "Degree field is required"
	}
	if isEmpty(in.FieldOfStudy) {
		r.Errors["fieldofstudy"] = "Field of study field is required"
	}
	if isEmpty(in.From) {
		r.Errors["from"] = "From date field is required"
	}

	return r.finish()
}

// ValidatePost checks a post or comment payload.
func ValidatePost(in PostInput) Result {
	r := newResult()

	if isEmpty(in.Text) {
		r.Errors["text"] = "Text field is required"
	} else if !lengthBetween(in.Text, 10, 300) {
		r.Errors["text"] = "Post must be between 10 and 300 characters"
	}

	return r.finish()
}

func isEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// optionalURL records an error only when value is set and not an
// absolute http(s) URL.
func optionalURL(errs map[string]string, field, value string) {
	if value == "" {
		return
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs[field] = "Not a valid URL"
	}
}
