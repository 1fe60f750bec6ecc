package models

import (
	"strconv"
	"time"

	"gorm.io/gorm"
)

// Post is the owning document for likes and comments. Author name and
// avatar are denormalized snapshots taken at creation time so posts stay
// renderable even if the author later changes their profile.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	Name      string         `json:"name"`
	Avatar    string         `json:"avatar"`
	UserID    uint           `gorm:"not null;index" json:"user"`
	Likes     []Like         `gorm:"serializer:json" json:"likes"`
	Comments  []Comment      `gorm:"serializer:json" json:"comments"`
	CreatedAt time.Time      `json:"date"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Like marks that a user liked the owning post. A given user appears at
// most once in a post's likes list.
type Like struct {
	ID     string `json:"id"`
	UserID uint   `json:"user"`
}

// EntryID keys likes by the liking user, which is also the de-dup key.
func (l Like) EntryID() string { return strconv.FormatUint(uint64(l.UserID), 10) }

// Comment is owned exclusively by its post. Author name and avatar are
// snapshots, same as on Post.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	UserID    uint      `json:"user"`
	CreatedAt time.Time `json:"date"`
}

// EntryID returns the identifier used to address this comment inside
// the owning post's list.
func (c Comment) EntryID() string { return c.ID }
