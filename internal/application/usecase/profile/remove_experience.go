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

type RemoveExperienceUseCase struct {
	profileRepo profile.Repository
	publisher   EventPublisher
	logger      logger.Logger
}

func NewRemoveExperienceUseCase(repo profile.Repository, publisher EventPublisher, log logger.Logger) *RemoveExperienceUseCase {
	return &RemoveExperienceUseCase{
		profileRepo: repo,
		publisher:   publisher,
		logger:      log,
	}
}

type RemoveExperienceInput struct {
	OwnerID      uuid.UUID
	ExperienceID uuid.UUID
}

type RemoveExperienceOutput struct {
	Profile *profile.Profile
}

// Execute removes the matching experience record if one exists. An unknown id
// is tolerated: the profile is persisted and returned unchanged instead of
// failing the request.
func (uc *RemoveExperienceUseCase) Execute(ctx context.Context, input RemoveExperienceInput) (*RemoveExperienceOutput, error) {
	ctx, span := tracer.Start(ctx, "RemoveExperience")
	defer span.End()

	p, err := uc.profileRepo.GetByOwnerID(ctx, input.OwnerID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.OwnerID.String())
		}
		span.RecordError(err)
		return nil, fmt.Errorf("load profile failed: %w", err)
	}

	if !p.RemoveExperience(input.ExperienceID) {
		uc.logger.Warn("experience id not found on profile, nothing removed",
			zap.String("owner_id", input.OwnerID.String()),
			zap.String("experience_id", input.ExperienceID.String()))
	}
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("save profile failed: %w", err)
	}

	publishProfileEvent(uc.publisher, uc.logger, event.ProfileEventTypeExperienceRemoved, input.OwnerID)

	return &RemoveExperienceOutput{Profile: p}, nil
}
