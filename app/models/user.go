package models

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	return validate.Struct(u)
}

// IsAdmin reports whether this user satisfies the admin predicate. The
// policy is a single hard-coded admin account, not a role system: only the
// first-ever registered user may mutate posts.
func (u *User) IsAdmin() bool {
	return u != nil && u.ID == AdminUserID
}
