package main

import (
	"context"
	"net/url"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jnises/bitte/internal/services"
)

// MockObjectStore implements services.ObjectStore for testing
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) ListPage(ctx context.Context, prefix, continuationToken string) (services.Page, error) {
	args := m.Called(ctx, prefix, continuationToken)
	return args.Get(0).(services.Page), args.Error(1)
}

func (m *MockObjectStore) SignGet(ctx context.Context, key string, ttl time.Duration) (*url.URL, error) {
	args := m.Called(ctx, key, ttl)
	if u := args.Get(0); u != nil {
		return u.(*url.URL), args.Error(1)
	}
	return nil, args.Error(1)
}
