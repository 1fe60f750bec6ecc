package models

import (
	"time"

	"gorm.io/gorm"
)

// Profile is the owning document for a user's experience and education
// lists. The embedded lists are stored as JSON columns and are always
// loaded and re-persisted with the profile as a whole, so list edits
// follow a read-modify-write cycle on the single owning row.
type Profile struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	UserID         uint              `gorm:"not null;uniqueIndex" json:"user"`
	Handle         string            `gorm:"uniqueIndex;not null" json:"handle"`
	Company        string            `json:"company,omitempty"`
	Website        string            `json:"website,omitempty"`
	Location       string            `json:"location,omitempty"`
	Status         string            `gorm:"not null" json:"status"`
	Bio            string            `json:"bio,omitempty"`
	GithubUsername string            `json:"githubusername,omitempty"`
	Skills         []string          `gorm:"serializer:json" json:"skills"`
	Social         map[string]string `gorm:"serializer:json" json:"social,omitempty"`
	Experience     []Experience      `gorm:"serializer:json" json:"experience"`
	Education      []Education       `gorm:"serializer:json" json:"education"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	DeletedAt      gorm.DeletedAt    `gorm:"index" json:"-"`
}

// Experience is an entry in a profile's work history. It has no life of
// its own outside the owning profile; its ID is unique within that
// profile's list only.
type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	From        string `json:"from"`
	To          string `json:"to,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// EntryID returns the identifier used to address this entry inside its
// owning list.
func (e Experience) EntryID() string { return e.ID }

// Education is an entry in a profile's education history, owned
// exclusively by the profile the same way Experience is.
type Education struct {
	ID           string `json:"id"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

// EntryID returns the identifier used to address this entry inside its
// owning list.
func (e Education) EntryID() string { return e.ID }
