// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
// @Summary Create a post
// @Description Stamps the post with the acting user's id and name/avatar snapshot
// @Tags posts
// @Accept json
// @Produce json
// @Param request body validation.PostInput true "Post payload"
// @Success 201 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := actingUserID(c)

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Current(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID: userID,
		Text:   req.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts
// @Summary List all posts, newest first
// @Tags posts
// @Produce json
// @Success 200 {array} models.Post
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
// @Summary Post by id
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
// @Summary Delete a post
// @Description Only the owning user may delete a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} object{message=string}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), actingUserID(c), postID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post removed"})
}

// LikePost handles POST /api/posts/like/:id
// @Summary Like a post
// @Description A duplicate like is rejected with a conflict
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts/like/{id} [post]
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.Like(c.Context(), actingUserID(c), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// UnlikePost handles POST /api/posts/unlike/:id
// @Summary Remove a like from a post
// @Description Unliking a post the user never liked is rejected with a conflict
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts/unlike/{id} [post]
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.Unlike(c.Context(), actingUserID(c), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// AddComment handles POST /api/posts/comment/:id
// @Summary Comment on a post
// @Description Prepends the comment and returns the whole updated post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body validation.PostInput true "Comment payload"
// @Success 200 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts/comment/{id} [post]
func (s *Server) AddComment(c *fiber.Ctx) error {
	userID := actingUserID(c)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Current(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	post, err := s.postService.AddComment(c.Context(), service.CommentInput{
		UserID: userID,
		PostID: postID,
		Text:   req.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// DeleteComment handles DELETE /api/posts/comment/:post_id/:comment_id
// @Summary Remove a comment
// @Description Only the comment author or the post owner may remove a comment
// @Tags posts
// @Produce json
// @Param post_id path int true "Post ID"
// @Param comment_id path string true "Comment ID"
// @Success 200 {object} models.Post
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts/comment/{post_id}/{comment_id} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "post_id")
	if err != nil {
		return nil
	}
	commentID := c.Params("comment_id")
	if commentID == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid comment ID"))
	}

	post, err := s.postService.RemoveComment(c.Context(), actingUserID(c), postID, commentID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}
