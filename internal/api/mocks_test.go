package api

import (
	"context"

	"github.com/phrazzld/directory-api/internal/domain"
)

// MockUserStore is a mock implementation of store.UserStore for testing
type MockUserStore struct {
	CountFn  func(ctx context.Context) (int, error)
	ListFn   func(ctx context.Context, pageNumber, pageSize int) ([]domain.User, error)
	ExistsFn func(ctx context.Context, id string) (bool, error)
}

// Count implements store.UserStore
func (m *MockUserStore) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

// List implements store.UserStore
func (m *MockUserStore) List(ctx context.Context, pageNumber, pageSize int) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, pageNumber, pageSize)
	}
	return []domain.User{}, nil
}

// Exists implements store.UserStore
func (m *MockUserStore) Exists(ctx context.Context, id string) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}
	return false, nil
}

// MockPostStore is a mock implementation of store.PostStore for testing
type MockPostStore struct {
	ListByUserFn func(ctx context.Context, userID string) ([]domain.Post, error)
	CreateFn     func(ctx context.Context, post *domain.Post) error
	DeleteFn     func(ctx context.Context, id string) (bool, error)
}

// ListByUser implements store.PostStore
func (m *MockPostStore) ListByUser(ctx context.Context, userID string) ([]domain.Post, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return []domain.Post{}, nil
}

// Create implements store.PostStore
func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}
	return nil
}

// Delete implements store.PostStore
func (m *MockPostStore) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return false, nil
}
