package service

import (
	"context"
	"strconv"
	"time"

	"devconnect/internal/collection"
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/validation"
)

// PostService orchestrates post mutations and the like/comment lists
// embedded in each post.
type PostService struct {
	postRepo repository.PostRepository
}

// CreatePostInput carries the post payload plus the acting user. Name
// and avatar are the author snapshot supplied by the client.
type CreatePostInput struct {
	UserID uint
	Text   string
	Name   string
	Avatar string
}

// CommentInput carries the comment payload plus the acting user and
// target post.
type CommentInput struct {
	UserID uint
	PostID uint
	Text   string
	Name   string
	Avatar string
}

// NewPostService returns a PostService backed by the given repository.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost validates and persists a new post stamped with the acting
// user's id and author snapshot.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if res := validation.ValidatePost(validation.PostInput{Text: in.Text}); !res.IsValid {
		return nil, models.NewFieldValidationError(res.Errors)
	}

	post := &models.Post{
		Text:     in.Text,
		Name:     in.Name,
		Avatar:   in.Avatar,
		UserID:   in.UserID,
		Likes:    []models.Like{},
		Comments: []models.Comment{},
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns all posts, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

// GetPost returns one post by id.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// DeletePost removes a post. Only the owning user may delete it; the
// ownership check is a hard guard.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError("Not authorized to delete this post")
	}
	return s.postRepo.Delete(ctx, postID)
}

// Like records the acting user's like on a post. A duplicate like is
// rejected as a conflict and leaves the list unchanged.
func (s *PostService) Like(ctx context.Context, userID, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	userKey := strconv.FormatUint(uint64(userID), 10)
	if collection.ContainsID(post.Likes, userKey) {
		return nil, models.NewConflictError("User already liked this post")
	}

	like := models.Like{ID: collection.NewID(), UserID: userID}
	post.Likes = collection.Prepend(post.Likes, like)

	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Unlike removes the acting user's like. Unliking a post the user never
// liked is rejected as a conflict and leaves the list unchanged.
func (s *PostService) Unlike(ctx context.Context, userID, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	userKey := strconv.FormatUint(uint64(userID), 10)
	trimmed, ok := collection.RemoveByID(post.Likes, userKey)
	if !ok {
		return nil, models.NewConflictError("You have not liked this post")
	}
	post.Likes = trimmed

	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// AddComment validates and prepends a comment stamped with the acting
// user's id and author snapshot, then returns the whole updated post.
func (s *PostService) AddComment(ctx context.Context, in CommentInput) (*models.Post, error) {
	if res := validation.ValidatePost(validation.PostInput{Text: in.Text}); !res.IsValid {
		return nil, models.NewFieldValidationError(res.Errors)
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:        collection.NewID(),
		Text:      in.Text,
		Name:      in.Name,
		Avatar:    in.Avatar,
		UserID:    in.UserID,
		CreatedAt: time.Now().UTC(),
	}
	post.Comments = collection.Prepend(post.Comments, comment)

	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// RemoveComment removes one comment by id. Only the comment author or
// the post owner may remove it; an unknown id is a not-found outcome
// that leaves the list untouched.
func (s *PostService) RemoveComment(ctx context.Context, userID, postID uint, commentID string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	idx := collection.IndexByID(post.Comments, commentID)
	if idx < 0 {
		return nil, models.NewNotFoundError("Comment", commentID)
	}
	if comment := post.Comments[idx]; comment.UserID != userID && post.UserID != userID {
		return nil, models.NewUnauthorizedError("Not authorized to delete this comment")
	}

	trimmed, _ := collection.RemoveByID(post.Comments, commentID)
	post.Comments = trimmed

	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}
