package repositories

import (
	"errors"

	"inkwell/app/models"

	"gorm.io/gorm"
)

// GormPostRepository implements PostRepository on the SQLite store
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// Create persists a new post. A duplicate title violates the unique index
// and yields ErrDuplicate.
func (r *GormPostRepository) Create(post *models.Post) error {
	post.BeforeSave()
	if err := r.db.Create(post).Error; err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByID retrieves a post by ID
func (r *GormPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// List retrieves all posts in insertion order
func (r *GormPostRepository) List() ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.db.Order("id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Update rewrites an existing post in place
func (r *GormPostRepository) Update(post *models.Post) error {
	var existing models.Post
	if err := r.db.First(&existing, post.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := r.db.Save(post).Error; err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Delete removes a post and all of its comments in one transaction
func (r *GormPostRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}
