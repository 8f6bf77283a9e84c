package game

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) CreateSession(ctx context.Context) (*Session, error) {
	args := m.Called(ctx)
	sess, _ := args.Get(0).(*Session)
	return sess, args.Error(1)
}

func (m *MockGameService) Current(ctx context.Context, sessionID string) (*SnapshotResponse, error) {
	args := m.Called(ctx, sessionID)
	snap, _ := args.Get(0).(*SnapshotResponse)
	return snap, args.Error(1)
}

func (m *MockGameService) Start(ctx context.Context, sessionID string) (*SnapshotResponse, error) {
	args := m.Called(ctx, sessionID)
	snap, _ := args.Get(0).(*SnapshotResponse)
	return snap, args.Error(1)
}

func (m *MockGameService) SubmitAnswer(ctx context.Context, sessionID, choice string) (*SnapshotResponse, error) {
	args := m.Called(ctx, sessionID, choice)
	snap, _ := args.Get(0).(*SnapshotResponse)
	return snap, args.Error(1)
}

func (m *MockGameService) Advance(ctx context.Context, sessionID string) (*SnapshotResponse, error) {
	args := m.Called(ctx, sessionID)
	snap, _ := args.Get(0).(*SnapshotResponse)
	return snap, args.Error(1)
}

func (m *MockGameService) Retry(ctx context.Context, sessionID string) (*SnapshotResponse, error) {
	args := m.Called(ctx, sessionID)
	snap, _ := args.Get(0).(*SnapshotResponse)
	return snap, args.Error(1)
}

func (m *MockGameService) Abandon(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
