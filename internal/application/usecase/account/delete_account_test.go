package account

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/khoahotran/dev-network/adapters/event"
	"github.com/khoahotran/dev-network/internal/domain/post"
	"github.com/khoahotran/dev-network/internal/domain/profile"
	"github.com/khoahotran/dev-network/internal/domain/user"
	"github.com/khoahotran/dev-network/pkg/logger"
)

// The cascade's contract is about ordering, so the fakes share one recorder
// instead of asserting calls independently.
type callRecorder struct {
	calls []string
}

type fakePostRepo struct {
	rec *callRecorder
	err error
}

func (f *fakePostRepo) Save(ctx context.Context, p *post.Post) error             { return nil }
func (f *fakePostRepo) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	return nil, post.ErrPostNotFound
}
func (f *fakePostRepo) ListAll(ctx context.Context) ([]*post.Post, error) { return nil, nil }
func (f *fakePostRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	return nil
}
func (f *fakePostRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	f.rec.calls = append(f.rec.calls, "posts")
	return f.err
}

type fakeProfileRepo struct {
	rec *callRecorder
	err error
}

func (f *fakeProfileRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	return nil, profile.ErrProfileNotFound
}
func (f *fakeProfileRepo) ListAll(ctx context.Context) ([]*profile.Profile, error) { return nil, nil }
func (f *fakeProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error    { return nil }
func (f *fakeProfileRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	f.rec.calls = append(f.rec.calls, "profile")
	return f.err
}

type fakeUserRepo struct {
	rec *callRecorder
	err error
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.rec.calls = append(f.rec.calls, "user")
	return f.err
}

type stubPublisher struct{}

func (stubPublisher) PublishAccountEvent(ctx context.Context, payload event.AccountEventPayload) error {
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(msg string, fields ...zap.Field)             {}
func (nopLogger) Warn(msg string, fields ...zap.Field)             {}
func (nopLogger) Error(msg string, err error, fields ...zap.Field) {}
func (nopLogger) Fatal(msg string, err error, fields ...zap.Field) {}
func (l nopLogger) With(fields ...zap.Field) logger.Logger         { return l }

func TestDeleteAccount_DeletesPostsThenProfileThenUser(t *testing.T) {
	rec := &callRecorder{}
	uc := NewDeleteAccountUseCase(
		&fakePostRepo{rec: rec},
		&fakeProfileRepo{rec: rec},
		&fakeUserRepo{rec: rec},
		stubPublisher{},
		nopLogger{},
	)

	err := uc.Execute(context.Background(), DeleteAccountInput{UserID: uuid.New()})

	require.NoError(t, err)
	assert.Equal(t, []string{"posts", "profile", "user"}, rec.calls)
}

func TestDeleteAccount_PostFailureAbortsRemainingSteps(t *testing.T) {
	rec := &callRecorder{}
	uc := NewDeleteAccountUseCase(
		&fakePostRepo{rec: rec, err: errors.New("connection reset")},
		&fakeProfileRepo{rec: rec},
		&fakeUserRepo{rec: rec},
		stubPublisher{},
		nopLogger{},
	)

	err := uc.Execute(context.Background(), DeleteAccountInput{UserID: uuid.New()})

	require.Error(t, err)
	assert.Equal(t, []string{"posts"}, rec.calls)
}

func TestDeleteAccount_UserFailureLeavesEarlierStepsDone(t *testing.T) {
	// No rollback: posts and profile stay deleted when the final step fails.
	rec := &callRecorder{}
	uc := NewDeleteAccountUseCase(
		&fakePostRepo{rec: rec},
		&fakeProfileRepo{rec: rec},
		&fakeUserRepo{rec: rec, err: errors.New("connection reset")},
		stubPublisher{},
		nopLogger{},
	)

	err := uc.Execute(context.Background(), DeleteAccountInput{UserID: uuid.New()})

	require.Error(t, err)
	assert.Equal(t, []string{"posts", "profile", "user"}, rec.calls)
}
