package services

import (
	"errors"
	"fmt"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// ErrDuplicateTitle is returned when a post title is already taken. Titles
// are unique across all posts, enforced by the store.
var ErrDuplicateTitle = errors.New("a post with that title already exists")

// PostService handles business logic for blog posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost creates a new blog post stamped with the author's display
// name and today's date.
func (s *PostService) CreatePost(post *models.Post, author *models.User) error {
	if author == nil {
		return fmt.Errorf("post author is required")
	}
	post.Author = author.Name
	post.UserID = author.ID
	post.Date = time.Now().Format(models.PublishDateFormat)

	if err := validatePost(post); err != nil {
		return fmt.Errorf("invalid post: %w", err)
	}

	if err := s.postRepo.Create(post); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrDuplicateTitle
		}
		return err
	}
	return nil
}

// GetPost retrieves a post by ID with its comments
func (s *PostService) GetPost(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	post.Comments = comments

	return post, nil
}

// ListPosts retrieves all posts in insertion order
func (s *PostService) ListPosts() ([]*models.Post, error) {
	return s.postRepo.List()
}

// UpdatePost mutates an existing post's title, subtitle, image and body in
// place. The author display name, publish date and owner are preserved.
func (s *PostService) UpdatePost(id uint, title, subtitle, imageURL, body string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	post.Title = title
	post.Subtitle = subtitle
	post.ImageURL = imageURL
	post.Body = body

	if err := validatePost(post); err != nil {
		return nil, fmt.Errorf("invalid post: %w", err)
	}

	if err := s.postRepo.Update(post); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrDuplicateTitle
		}
		return nil, err
	}
	return post, nil
}

// DeletePost deletes a post and all of its comments
func (s *PostService) DeletePost(id uint) error {
	return s.postRepo.Delete(id)
}

// validatePost validates a post's fields
func validatePost(post *models.Post) error {
	if post.Title == "" {
		return fmt.Errorf("title is required")
	}
	if len(post.Title) > 250 {
		return fmt.Errorf("title is too long (maximum 250 characters)")
	}
	if post.Body == "" {
		return fmt.Errorf("body is required")
	}
	return nil
}
