package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/dev-network/adapters/event"
	"github.com/khoahotran/dev-network/internal/domain/profile"
	"github.com/khoahotran/dev-network/pkg/logger"
)

var tracer = otel.Tracer("profile_usecase")

type UpsertProfileUseCase struct {
	profileRepo profile.Repository
	publisher   EventPublisher
	logger      logger.Logger
}

func NewUpsertProfileUseCase(repo profile.Repository, publisher EventPublisher, log logger.Logger) *UpsertProfileUseCase {
	return &UpsertProfileUseCase{
		profileRepo: repo,
		publisher:   publisher,
		logger:      log,
	}
}

type UpsertProfileInput struct {
	OwnerID uuid.UUID
	Fields  profile.UpdateFields
}

type UpsertProfileOutput struct {
	Profile *profile.Profile
}

// Execute creates the owner's profile if absent, otherwise merges the
// supplied fields into the existing one. Either way the whole document is
// written back and returned. Experience and education are never touched here.
func (uc *UpsertProfileUseCase) Execute(ctx context.Context, input UpsertProfileInput) (*UpsertProfileOutput, error) {
	ctx, span := tracer.Start(ctx, "UpsertProfile")
	defer span.End()
	span.SetAttributes(attribute.String("owner_id", input.OwnerID.String()))

	p, err := uc.profileRepo.GetByOwnerID(ctx, input.OwnerID)
	switch {
	case errors.Is(err, profile.ErrProfileNotFound):
		p = profile.New(input.OwnerID, input.Fields)
	case err != nil:
		span.RecordError(err)
		return nil, fmt.Errorf("load profile failed: %w", err)
	default:
		p.ApplyUpdate(input.Fields)
	}
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("upsert profile failed: %w", err)
	}

	publishProfileEvent(uc.publisher, uc.logger, event.ProfileEventTypeUpserted, input.OwnerID)

	return &UpsertProfileOutput{Profile: p}, nil
}
