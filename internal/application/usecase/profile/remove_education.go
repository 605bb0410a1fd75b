package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/dev-network/adapters/event"
	"github.com/khoahotran/dev-network/internal/domain/profile"
	"github.com/khoahotran/dev-network/pkg/apperror"
	"github.com/khoahotran/dev-network/pkg/logger"
)

type RemoveEducationUseCase struct {
	profileRepo profile.Repository
	publisher   EventPublisher
	logger      logger.Logger
}

func NewRemoveEducationUseCase(repo profile.Repository, publisher EventPublisher, log logger.Logger) *RemoveEducationUseCase {
	return &RemoveEducationUseCase{
		profileRepo: repo,
		publisher:   publisher,
		logger:      log,
	}
}

type RemoveEducationInput struct {
	OwnerID     uuid.UUID
	EducationID uuid.UUID
}

type RemoveEducationOutput struct {
	Profile *profile.Profile
}

func (uc *RemoveEducationUseCase) Execute(ctx context.Context, input RemoveEducationInput) (*RemoveEducationOutput, error) {
	ctx, span := tracer.Start(ctx, "RemoveEducation")
	defer span.End()

	p, err := uc.profileRepo.GetByOwnerID(ctx, input.OwnerID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.OwnerID.String())
		}
		span.RecordError(err)
		return nil, fmt.Errorf("load profile failed: %w", err)
	}

	if !p.RemoveEducation(input.EducationID) {
		uc.logger.Warn("education id not found on profile, nothing removed",
			zap.String("owner_id", input.OwnerID.String()),
			zap.String("education_id", input.EducationID.String()))
	}
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("save profile failed: %w", err)
	}

	publishProfileEvent(uc.publisher, uc.logger, event.ProfileEventTypeEducationRemoved, input.OwnerID)

	return &RemoveEducationOutput{Profile: p}, nil
}
