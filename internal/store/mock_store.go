package store

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sujalbistaa/blogapi/internal/models"
)

// MockStore is a testify mock of Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListPosts(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	posts, _ := args.Get(0).([]models.Post)
	return posts, args.Error(1)
}

func (m *MockStore) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*models.Post)
	return post, args.Error(1)
}

func (m *MockStore) PostExists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) FindPostByTitleAndContent(ctx context.Context, title, content string) (*models.Post, error) {
	args := m.Called(ctx, title, content)
	post, _ := args.Get(0).(*models.Post)
	return post, args.Error(1)
}

func (m *MockStore) FindComment(ctx context.Context, postID uint, content string) (*models.Comment, error) {
	args := m.Called(ctx, postID, content)
	comment, _ := args.Get(0).(*models.Comment)
	return comment, args.Error(1)
}

func (m *MockStore) CreatePost(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockStore) CreateComment(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}
