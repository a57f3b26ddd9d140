package repositories

import "inkwell/app/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id uint) error
}

// CommentRepository defines the interface for comment data access.
// Comments are immutable once written, so there is no update or delete.
type CommentRepository interface {
	Create(comment *models.Comment) error
	ListByPost(postID uint) ([]*models.Comment, error)
}
