package seed

import (
	"fmt"
	"log"
	"math/rand"

	"devconnect/internal/models"

	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// DefaultOptions returns a small but representative development dataset.
func DefaultOptions() Options {
	return Options{NumUsers: 10, NumPosts: 25}
}

// Run populates the database with fake users, profiles, and posts. Likes
// and comments are scattered across the posts so list endpoints have
// realistic payloads.
func Run(db *gorm.DB, opts Options) error {
	if opts.ShouldClean {
		if err := Clean(db); err != nil {
			return err
		}
	}

	factory := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return err
		}
		if _, err := factory.CreateProfile(user); err != nil {
			return err
		}
		users = append(users, user)
	}

	for i := 0; i < opts.NumPosts; i++ {
		author := users[rand.Intn(len(users))]
		post, err := factory.CreatePost(author)
		if err != nil {
			return err
		}

		for _, u := range users {
			if u.ID != author.ID && rand.Intn(3) == 0 {
				if err := factory.AddLike(post, u); err != nil {
					return err
				}
			}
		}
		for c := rand.Intn(3); c > 0; c-- {
			commenter := users[rand.Intn(len(users))]
			if err := factory.AddComment(post, commenter); err != nil {
				return err
			}
		}
	}

	log.Printf("Seeded %d users with profiles and %d posts", opts.NumUsers, opts.NumPosts)
	return nil
}

// Clean removes all seeded data. Hard-deletes so unique indexes on email
// and handle free up for the next run.
func Clean(db *gorm.DB) error {
	for _, model := range []interface{}{&models.Post{}, &models.Profile{}, &models.User{}} {
		if err := db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clean table: %w", err)
		}
	}
	return nil
}
