package post

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/khoahotran/dev-network/internal/domain/post"
	"github.com/khoahotran/dev-network/pkg/apperror"
)

type GetPostUseCase struct {
	postRepo post.Repository
}

func NewGetPostUseCase(repo post.Repository) *GetPostUseCase {
	return &GetPostUseCase{postRepo: repo}
}

type GetPostInput struct {
	PostID uuid.UUID
}

type GetPostOutput struct {
	Post *post.Post
}

func (uc *GetPostUseCase) Execute(ctx context.Context, input GetPostInput) (*GetPostOutput, error) {
	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return nil, apperror.NewNotFound("post", input.PostID.String())
		}
		return nil, fmt.Errorf("find post failed: %w", err)
	}
	return &GetPostOutput{Post: p}, nil
}
