package repositories

import (
	"path/filepath"
	"testing"

	"inkwell/app/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, name string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
	require.NoError(t, NewGormUserRepository(db).Create(user))
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, user *models.User, title string) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:  title,
		Body:   "Body text long enough to pass validation",
		Author: user.Name,
		UserID: user.ID,
	}
	require.NoError(t, NewGormPostRepository(db).Create(post))
	return post
}
