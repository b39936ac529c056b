package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"quickcal/internal/storage"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Put(ctx context.Context, f storage.CalendarFile) (storage.StoredFile, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(storage.StoredFile), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}
