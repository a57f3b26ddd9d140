package repositories

import (
	"inkwell/app/models"

	"gorm.io/gorm"
)

// GormCommentRepository implements CommentRepository on the SQLite store
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// Create persists a new comment
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// ListByPost retrieves all comments for a post in insertion order,
// with their authors preloaded
func (r *GormCommentRepository) ListByPost(postID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.Preload("User").
		Where("post_id = ?", postID).
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
