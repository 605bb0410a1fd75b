package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/dev-network/internal/domain/profile"
)

func TestUpsertProfile_CreatesWhenAbsent(t *testing.T) {
	repo := new(MockProfileRepo)
	uc := NewUpsertProfileUseCase(repo, stubPublisher{}, nopLogger{})

	ownerID := uuid.New()
	repo.On("GetByOwnerID", mock.Anything, ownerID).Return(nil, profile.ErrProfileNotFound)
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*profile.Profile")).Return(nil)

	output, err := uc.Execute(context.Background(), UpsertProfileInput{
		OwnerID: ownerID,
		Fields:  profile.UpdateFields{Status: "Developer", Skills: "a, b ,c"},
	})

	require.NoError(t, err)
	assert.Equal(t, ownerID, output.Profile.OwnerID)
	assert.Equal(t, "Developer", output.Profile.Status)
	assert.Equal(t, []string{"a", "b", "c"}, output.Profile.Skills)
	repo.AssertCalled(t, "Upsert", mock.Anything, mock.AnythingOfType("*profile.Profile"))
}

func TestUpsertProfile_UpdatesInPlaceWhenPresent(t *testing.T) {
	repo := new(MockProfileRepo)
	uc := NewUpsertProfileUseCase(repo, stubPublisher{}, nopLogger{})

	ownerID := uuid.New()
	existing := profile.New(ownerID, profile.UpdateFields{
		Status:  "Developer",
		Skills:  "go",
		Company: "Acme",
		Social:  map[string]string{"twitter": "https://twitter.com/dev"},
	})
	existing.AddExperience(profile.Experience{Title: "Engineer", Company: "Acme", From: time.Now()})

	repo.On("GetByOwnerID", mock.Anything, ownerID).Return(existing, nil)
	repo.On("Upsert", mock.Anything, existing).Return(nil)

	output, err := uc.Execute(context.Background(), UpsertProfileInput{
		OwnerID: ownerID,
		Fields:  profile.UpdateFields{Status: "Lead", Skills: "go,sql", Website: "https://dev.example.com"},
	})

	require.NoError(t, err)
	// Same aggregate mutated, not a second one.
	assert.Same(t, existing, output.Profile)
	assert.Equal(t, "Lead", output.Profile.Status)
	assert.Equal(t, []string{"go", "sql"}, output.Profile.Skills)
	// Omitted fields survive; sub-collections untouched.
	assert.Equal(t, "Acme", output.Profile.Company)
	assert.Equal(t, "https://twitter.com/dev", output.Profile.Social["twitter"])
	assert.Len(t, output.Profile.Experience, 1)
}

func TestUpsertProfile_SecondIdenticalCallIsIdempotent(t *testing.T) {
	repo := new(MockProfileRepo)
	uc := NewUpsertProfileUseCase(repo, stubPublisher{}, nopLogger{})

	ownerID := uuid.New()
	fields := profile.UpdateFields{Status: "Developer", Skills: "go,sql", Company: "Acme"}

	var stored *profile.Profile
	repo.On("GetByOwnerID", mock.Anything, ownerID).Return(nil, profile.ErrProfileNotFound).Once()
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*profile.Profile")).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*profile.Profile)
	}).Return(nil)

	first, err := uc.Execute(context.Background(), UpsertProfileInput{OwnerID: ownerID, Fields: fields})
	require.NoError(t, err)

	repo.On("GetByOwnerID", mock.Anything, ownerID).Return(stored, nil)

	second, err := uc.Execute(context.Background(), UpsertProfileInput{OwnerID: ownerID, Fields: fields})
	require.NoError(t, err)

	assert.Equal(t, first.Profile.Status, second.Profile.Status)
	assert.Equal(t, first.Profile.Skills, second.Profile.Skills)
	assert.Equal(t, first.Profile.Company, second.Profile.Company)
	assert.Equal(t, first.Profile.OwnerID, second.Profile.OwnerID)
}

func TestUpsertProfile_StorageFailureSurfacesOnce(t *testing.T) {
	repo := new(MockProfileRepo)
	uc := NewUpsertProfileUseCase(repo, stubPublisher{}, nopLogger{})

	ownerID := uuid.New()
	repo.On("GetByOwnerID", mock.Anything, ownerID).Return(nil, profile.ErrProfileNotFound)
	repo.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := uc.Execute(context.Background(), UpsertProfileInput{
		OwnerID: ownerID,
		Fields:  profile.UpdateFields{Status: "Developer", Skills: "go"},
	})

	require.Error(t, err)
}
