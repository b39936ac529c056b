package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"quickcal/internal/service"
)

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) Process(ctx context.Context, in service.ProcessInput) (*service.EventResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EventResult), args.Error(1)
}

func (m *MockEventService) ProcessICS(ctx context.Context, in service.ProcessInput) ([]byte, *service.EventResult, error) {
	args := m.Called(ctx, in)
	var ics []byte
	if b, ok := args.Get(0).([]byte); ok {
		ics = b
	}
	var res *service.EventResult
	if r, ok := args.Get(1).(*service.EventResult); ok {
		res = r
	}
	return ics, res, args.Error(2)
}

func (m *MockEventService) RecentRequests(ctx context.Context, limit, offset int) (*service.RequestListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RequestListResult), args.Error(1)
}
