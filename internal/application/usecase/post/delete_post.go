package post

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/khoahotran/dev-network/internal/domain/post"
	"github.com/khoahotran/dev-network/pkg/apperror"
)

type DeletePostUseCase struct {
	postRepo post.Repository
}

func NewDeletePostUseCase(repo post.Repository) *DeletePostUseCase {
	return &DeletePostUseCase{postRepo: repo}
}

type DeletePostInput struct {
	PostID  uuid.UUID
	OwnerID uuid.UUID
}

// Execute deletes the post only when it belongs to the caller; the repository
// enforces the ownership check in the delete predicate.
func (uc *DeletePostUseCase) Execute(ctx context.Context, input DeletePostInput) error {
	err := uc.postRepo.Delete(ctx, input.PostID, input.OwnerID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return apperror.NewNotFound("post", input.PostID.String())
		}
		return fmt.Errorf("delete post failed: %w", err)
	}
	return nil
}
