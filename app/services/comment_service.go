package services

import (
	"fmt"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment attaches a new comment by author to the given post. Comment
// authorship is tied to a logged-in user; there is no anonymous path.
func (s *CommentService) AddComment(postID uint, author *models.User, text string) (*models.Comment, error) {
	if author == nil {
		return nil, fmt.Errorf("comment author is required")
	}
	if err := validateComment(text); err != nil {
		return nil, fmt.Errorf("invalid comment: %w", err)
	}

	// Verify post exists
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:   text,
		UserID: author.ID,
		PostID: postID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListPostComments retrieves all comments for a post
func (s *CommentService) ListPostComments(postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(postID)
}

// validateComment validates a comment's text
func validateComment(text string) error {
	if text == "" {
		return fmt.Errorf("text is required")
	}
	if len(text) > 2000 {
		return fmt.Errorf("text is too long (maximum 2000 characters)")
	}
	return nil
}
