package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/dev-network/adapters/event"
	"github.com/khoahotran/dev-network/internal/domain/profile"
	"github.com/khoahotran/dev-network/pkg/apperror"
	"github.com/khoahotran/dev-network/pkg/logger"
)

type AddExperienceUseCase struct {
	profileRepo profile.Repository
	publisher   EventPublisher
	logger      logger.Logger
}

func NewAddExperienceUseCase(repo profile.Repository, publisher EventPublisher, log logger.Logger) *AddExperienceUseCase {
	return &AddExperienceUseCase{
		profileRepo: repo,
		publisher:   publisher,
		logger:      log,
	}
}

type AddExperienceInput struct {
	OwnerID    uuid.UUID
	Experience profile.Experience
}

type AddExperienceOutput struct {
	Profile *profile.Profile
}

// Execute prepends a new experience record to the owner's profile. The
// profile must already exist: a sub-record insert never creates one.
func (uc *AddExperienceUseCase) Execute(ctx context.Context, input AddExperienceInput) (*AddExperienceOutput, error) {
	ctx, span := tracer.Start(ctx, "AddExperience")
	defer span.End()

	p, err := uc.profileRepo.GetByOwnerID(ctx, input.OwnerID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.OwnerID.String())
		}
		span.RecordError(err)
		return nil, fmt.Errorf("load profile failed: %w", err)
	}

	p.AddExperience(input.Experience)
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("save profile failed: %w", err)
	}

	publishProfileEvent(uc.publisher, uc.logger, event.ProfileEventTypeExperienceAdded, input.OwnerID)

	return &AddExperienceOutput{Profile: p}, nil
}
