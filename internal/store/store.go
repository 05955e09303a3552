package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sujalbistaa/blogapi/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Store is the persistence gateway for posts and comments.
type Store interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id uint) (*models.Post, error)
	PostExists(ctx context.Context, id uint) (bool, error)
	FindPostByTitleAndContent(ctx context.Context, title, content string) (*models.Post, error)
	FindComment(ctx context.Context, postID uint, content string) (*models.Comment, error)
	CreatePost(ctx context.Context, post *models.Post) error
	CreateComment(ctx context.Context, comment *models.Comment) error
}

// GormStore implements Store on top of gorm.
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore returns a Store backed by db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func orderedComments(tx *gorm.DB) *gorm.DB {
	return tx.Order("comments.id")
}

// ListPosts returns every post with its comments attached.
func (s *GormStore) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := s.DB.WithContext(ctx).Preload("Comments", orderedComments).Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].EnsureComments()
	}
	return posts, nil
}

// GetPost returns the post with the given id and its comments.
func (s *GormStore) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := s.DB.WithContext(ctx).Preload("Comments", orderedComments).First(&post, id).Error
	if err != nil {
		return nil, translate(err)
	}
	post.EnsureComments()
	return &post, nil
}

// PostExists reports whether a post with the given id exists. Comments are
// not loaded.
func (s *GormStore) PostExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindPostByTitleAndContent returns the first post whose title and content
// both match exactly.
func (s *GormStore) FindPostByTitleAndContent(ctx context.Context, title, content string) (*models.Post, error) {
	var posts []models.Post
	err := s.DB.WithContext(ctx).
		Where("title = ? AND content = ?", title, content).
		Order("id").Limit(1).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, ErrNotFound
	}
	return &posts[0], nil
}

// FindComment returns the first comment on postID with exactly this content.
func (s *GormStore) FindComment(ctx context.Context, postID uint, content string) (*models.Comment, error) {
	var comments []models.Comment
	err := s.DB.WithContext(ctx).
		Where("post_id = ? AND content = ?", postID, content).
		Order("id").Limit(1).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, ErrNotFound
	}
	return &comments[0], nil
}

// CreatePost inserts post together with any comments it carries. The ids
// assigned by the database are written back into post.
func (s *GormStore) CreatePost(ctx context.Context, post *models.Post) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(post).Error
	})
	if err != nil {
		return err
	}
	post.EnsureComments()
	return nil
}

// CreateComment inserts comment. comment.PostID must already be set.
func (s *GormStore) CreateComment(ctx context.Context, comment *models.Comment) error {
	return s.DB.WithContext(ctx).Create(comment).Error
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
