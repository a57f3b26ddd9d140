package repositories

import (
	"testing"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
)

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)

	t.Run("create assigns ids in order", func(t *testing.T) {
		first := createTestUser(t, db, "first@example.com", "First User")
		second := createTestUser(t, db, "second@example.com", "Second User")

		assert.Equal(t, models.AdminUserID, first.ID)
		assert.Greater(t, second.ID, first.ID)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		dup := &models.User{
			Email:        "first@example.com",
			Name:         "Impostor",
			PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		}
		err := repo.Create(dup)
		assert.ErrorIs(t, err, ErrDuplicate)

		// No second record was created.
		var count int64
		db.Model(&models.User{}).Where("email = ?", "first@example.com").Count(&count)
		assert.EqualValues(t, 1, count)
	})

	t.Run("get by id", func(t *testing.T) {
		user, err := repo.GetByID(models.AdminUserID)
		assert.NoError(t, err)
		assert.Equal(t, "first@example.com", user.Email)

		_, err = repo.GetByID(999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("get by email", func(t *testing.T) {
		user, err := repo.GetByEmail("second@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "Second User", user.Name)

		_, err = repo.GetByEmail("nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
