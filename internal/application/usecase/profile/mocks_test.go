package profile

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/khoahotran/dev-network/adapters/event"
	"github.com/khoahotran/dev-network/internal/domain/profile"
	"github.com/khoahotran/dev-network/pkg/logger"
)

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func (m *MockProfileRepo) ListAll(ctx context.Context) ([]*profile.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profile.Profile), args.Error(1)
}

func (m *MockProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProfileRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	return m.Called(ctx, ownerID).Error(0)
}

// stubPublisher swallows events; publishing is fire-and-forget so tests never
// assert on it.
type stubPublisher struct{}

func (stubPublisher) PublishProfileEvent(ctx context.Context, payload event.ProfileEventPayload) error {
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(msg string, fields ...zap.Field)             {}
func (nopLogger) Warn(msg string, fields ...zap.Field)             {}
func (nopLogger) Error(msg string, err error, fields ...zap.Field) {}
func (nopLogger) Fatal(msg string, err error, fields ...zap.Field) {}
func (l nopLogger) With(fields ...zap.Field) logger.Logger         { return l }
