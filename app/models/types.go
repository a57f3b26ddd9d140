package models

import "github.com/go-playground/validator/v10"

// AdminUserID is the identifier of the only account allowed to create,
// edit or delete posts: the first user ever registered.
const AdminUserID uint = 1

var validate = validator.New()

// User is a registered account. Users are created at registration and are
// never edited or deleted.
type User struct {
	ID           uint       `gorm:"primaryKey" validate:"-"`
	Email        string     `gorm:"size:100;uniqueIndex;not null" validate:"required,email,max=100"`
	Name         string     `gorm:"size:100;not null" validate:"required,min=2,max=100"`
	PasswordHash string     `gorm:"size:100;not null" validate:"required"`
	Posts        []*Post    `gorm:"foreignKey:UserID" validate:"-"`
	Comments     []*Comment `gorm:"foreignKey:UserID" validate:"-"`
}

// Post is a blog post with comments. Date is the human-readable publish
// date, stamped once at creation.
type Post struct {
	ID       uint       `gorm:"primaryKey" validate:"-"`
	Title    string     `gorm:"size:250;uniqueIndex;not null" validate:"required,min=3,max=250"`
	Subtitle string     `gorm:"size:250" validate:"max=250"`
	Date     string     `gorm:"size:250;not null" validate:"required"`
	Body     string     `gorm:"type:text;not null" validate:"required,min=10"`
	Author   string     `gorm:"size:250;not null" validate:"required"`
	ImageURL string     `gorm:"size:250" validate:"max=250"`
	UserID   uint       `gorm:"not null" validate:"required"`
	User     *User      `gorm:"foreignKey:UserID" validate:"-"`
	Comments []*Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" validate:"-"`
}

// Comment is attached to exactly one post and one user. Comments are
// immutable once created; no edit or delete route exists.
type Comment struct {
	ID     uint   `gorm:"primaryKey" validate:"-"`
	Text   string `gorm:"type:text;not null" validate:"required,min=1,max=2000"`
	UserID uint   `gorm:"not null" validate:"required"`
	PostID uint   `gorm:"not null" validate:"required"`
	User   *User  `gorm:"foreignKey:UserID" validate:"-"`
	Post   *Post  `gorm:"foreignKey:PostID" validate:"-"`
}
