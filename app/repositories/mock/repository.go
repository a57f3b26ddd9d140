package mock

import (
	"sync"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

type UserRepository struct {
	users  map[uint]*models.User
	nextID uint
	mutex  sync.RWMutex
}

type PostRepository struct {
	posts  map[uint]*models.Post
	nextID uint
	mutex  sync.RWMutex
}

type CommentRepository struct {
	comments map[uint]*models.Comment
	nextID   uint
	mutex    sync.RWMutex
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[uint]*models.User),
		nextID: 1,
	}
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[uint]*models.Post),
		nextID: 1,
	}
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		comments: make(map[uint]*models.Comment),
		nextID:   1,
	}
}

// UserRepository implementation

func (m *UserRepository) Create(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *UserRepository) GetByID(id uint) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *UserRepository) GetByEmail(email string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, p := range m.posts {
		if p.Title == post.Title {
			return repositories.ErrDuplicate
		}
	}
	post.BeforeSave()
	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) GetByID(id uint) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for id := uint(1); id < m.nextID; id++ {
		if post, exists := m.posts[id]; exists {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	for _, p := range m.posts {
		if p.ID != post.ID && p.Title == post.Title {
			return repositories.ErrDuplicate
		}
	}
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) Delete(id uint) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

// CommentRepository implementation

func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.ID = m.nextID
	m.nextID++
	m.comments[comment.ID] = comment
	return nil
}

func (m *CommentRepository) ListByPost(postID uint) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for id := uint(1); id < m.nextID; id++ {
		if c, exists := m.comments[id]; exists && c.PostID == postID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}
