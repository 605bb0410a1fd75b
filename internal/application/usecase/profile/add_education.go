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

type AddEducationUseCase struct {
	profileRepo profile.Repository
	publisher   EventPublisher
	logger      logger.Logger
}

func NewAddEducationUseCase(repo profile.Repository, publisher EventPublisher, log logger.Logger) *AddEducationUseCase {
	return &AddEducationUseCase{
		profileRepo: repo,
		publisher:   publisher,
		logger:      log,
	}
}

type AddEducationInput struct {
	OwnerID   uuid.UUID
	Education profile.Education
}

type AddEducationOutput struct {
	Profile *profile.Profile
}

func (uc *AddEducationUseCase) Execute(ctx context.Context, input AddEducationInput) (*AddEducationOutput, error) {
	ctx, span := tracer.Start(ctx, "AddEducation")
	defer span.End()

	p, err := uc.profileRepo.GetByOwnerID(ctx, input.OwnerID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.OwnerID.String())
		}
		span.RecordError(err)
		return nil, fmt.Errorf("load profile failed: %w", err)
	}

	p.AddEducation(input.Education)
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("save profile failed: %w", err)
	}

	publishProfileEvent(uc.publisher, uc.logger, event.ProfileEventTypeEducationAdded, input.OwnerID)

	return &AddEducationOutput{Profile: p}, nil
}
