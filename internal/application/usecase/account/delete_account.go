package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/khoahotran/dev-network/adapters/event"
	"github.com/khoahotran/dev-network/internal/domain/post"
	"github.com/khoahotran/dev-network/internal/domain/profile"
	"github.com/khoahotran/dev-network/internal/domain/user"
	"github.com/khoahotran/dev-network/pkg/logger"
)

var tracer = otel.Tracer("account_usecase")

type EventPublisher interface {
	PublishAccountEvent(ctx context.Context, payload event.AccountEventPayload) error
}

type DeleteAccountUseCase struct {
	postRepo    post.Repository
	profileRepo profile.Repository
	userRepo    user.Repository
	publisher   EventPublisher
	logger      logger.Logger
}

func NewDeleteAccountUseCase(pRepo post.Repository, profRepo profile.Repository, uRepo user.Repository, publisher EventPublisher, log logger.Logger) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		postRepo:    pRepo,
		profileRepo: profRepo,
		userRepo:    uRepo,
		publisher:   publisher,
		logger:      log,
	}
}

type DeleteAccountInput struct {
	UserID uuid.UUID
}

// Execute removes everything tied to the account: posts first, then the
// profile, then the account row itself, so a failure partway through never
// leaves records pointing at an already-deleted owner. The three deletes are
// independent single-document operations; there is no rollback, and a
// failure at any step surfaces once and aborts the rest. The caller may
// retry the whole delete.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	ctx, span := tracer.Start(ctx, "DeleteAccount")
	defer span.End()

	if err := uc.postRepo.DeleteByOwner(ctx, input.UserID); err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete posts failed: %w", err)
	}

	if err := uc.profileRepo.DeleteByOwner(ctx, input.UserID); err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete profile failed: %w", err)
	}

	if err := uc.userRepo.Delete(ctx, input.UserID); err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete user failed: %w", err)
	}

	go func() {
		err := uc.publisher.PublishAccountEvent(context.Background(), event.AccountEventPayload{
			EventType: event.AccountEventTypeDeleted,
			UserID:    input.UserID,
		})
		if err != nil {
			uc.logger.Warn("failed to publish account deleted event",
				zap.String("user_id", input.UserID.String()),
				zap.Error(err))
		}
	}()

	return nil
}
