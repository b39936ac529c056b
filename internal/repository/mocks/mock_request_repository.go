package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"quickcal/internal/model"
	"quickcal/internal/repository"
)

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Save(ctx context.Context, rec *model.RequestRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRequestRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.RequestRecord], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.RequestRecord]), args.Error(1)
}
