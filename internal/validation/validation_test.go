package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     RegisterInput
		wantValid bool
		wantField string
	}{
		{
			name:      "valid",
			input:     RegisterInput{Name: "Jane Doe", Email: "jane@example.com", Password: "secret1"},
			wantValid: true,
		},
		{
			name:      "missing name",
			input:     RegisterInput{Email: "jane@example.com", Password: "secret1"},
			wantField: "name",
		},
		{
			name:      "name too short",
			input:     RegisterInput{Name: "J", Email: "jane@example.com", Password: "secret1"},
			wantField: "name",
		},
		{
			name:      "name too long",
			input:     RegisterInput{Name: strings.Repeat("x", 31), Email: "jane@example.com", Password: "secret1"},
			wantField: "name",
		},
		{
			name:      "invalid email",
			input:     RegisterInput{Name: "Jane Doe", Email: "not-an-email", Password: "secret1"},
			wantField: "email",
		},
		{
			name:      "password too short",
			input:     RegisterInput{Name: "Jane Doe", Email: "jane@example.com", Password: "abc"},
			wantField: "password",
		},
		{
			name:      "whitespace-only name",
			input:     RegisterInput{Name: "   ", Email: "jane@example.com", Password: "secret1"},
			wantField: "name",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := ValidateRegister(tc.input)
			assert.Equal(t, tc.wantValid, res.IsValid)
			if tc.wantField != "" {
				assert.Contains(t, res.Errors, tc.wantField)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()

	res := ValidateLogin(LoginInput{Email: "jane@example.com", Password: "secret1"})
	assert.True(t, res.IsValid)

	res = ValidateLogin(LoginInput{Email: "bad", Password: "secret1"})
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors, "email")

	res = ValidateLogin(LoginInput{Email: "jane@example.com"})
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors, "password")
}

func TestValidateProfile(t *testing.T) {
	t.Parallel()

	valid := ProfileInput{Handle: "janedoe", Status: "Developer", Skills: "Go,SQL"}

	tests := []struct {
		name      string
		mutate    func(*ProfileInput)
		wantValid bool
		wantField string
	}{
		{name: "valid", mutate: func(*ProfileInput) {}, wantValid: true},
		{
			name:      "missing handle",
			mutate:    func(in *ProfileInput) { in.Handle = "" },
			wantField: "handle",
		},
		{
			name:      "handle too short",
			mutate:    func(in *ProfileInput) { in.Handle = "j" },
			wantField: "handle",
		},
		{
			name:      "handle too long",
			mutate:    func(in *ProfileInput) { in.Handle = strings.Repeat("x", 41) },
			wantField: "handle",
		},
		{
			name:      "missing status",
			mutate:    func(in *ProfileInput) { in.Status = "" },
			wantField: "status",
		},
		{
			name:      "missing skills",
			mutate:    func(in *ProfileInput) { in.Skills = "" },
			wantField: "skills",
		},
		{
			name:      "bad website",
			mutate:    func(in *ProfileInput) { in.Website = "not a url" },
			wantField: "website",
		},
		{
			name:      "bad twitter url",
			mutate:    func(in *ProfileInput) { in.Twitter = "ftp://twitter.com/jane" },
			wantField: "twitter",
		},
		{
			name:      "good urls pass",
			mutate:    func(in *ProfileInput) { in.Website = "https://jane.dev"; in.Linkedin = "https://linkedin.com/in/jane" },
			wantValid: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			in := valid
			tc.mutate(&in)
			res := ValidateProfile(in)
			assert.Equal(t, tc.wantValid, res.IsValid)
			if tc.wantField != "" {
				assert.Contains(t, res.Errors, tc.wantField)
			}
		})
	}
}

func TestValidateExperience(t *testing.T) {
	t.Parallel()

	res := ValidateExperience(ExperienceInput{Title: "Engineer", Company: "Acme", From: "2020-01-01"})
	assert.True(t, res.IsValid)

	res = ValidateExperience(ExperienceInput{})
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors, "title")
	assert.Contains(t, res.Errors, "company")
	assert.Contains(t, res.Errors, "from")
}

func TestValidateEducation(t *testing.T) {
	t.Parallel()

	res := ValidateEducation(EducationInput{
		School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2014-09-01",
	})
	assert.True(t, res.IsValid)

	res = ValidateEducation(EducationInput{School: "MIT"})
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors, "degree")
	assert.Contains(t, res.Errors, "fieldofstudy")
	assert.Contains(t, res.Errors, "from")
}

func TestValidatePost(t *testing.T) {
	t.Parallel()

	res := ValidatePost(PostInput{Text: "this is a sufficiently long post"})
	assert.True(t, res.IsValid)

	res = ValidatePost(PostInput{})
	assert.False(t, res.IsValid)
	assert.Equal(t, "Text field is required", res.Errors["text"])

	res = ValidatePost(PostInput{Text: "too short"})
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors["text"], "between 10 and 300")

	res = ValidatePost(PostInput{Text: strings.Repeat("x", 301)})
	assert.False(t, res.IsValid)
}
