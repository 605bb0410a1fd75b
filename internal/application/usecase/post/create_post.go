package post

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/dev-network/internal/domain/post"
	"github.com/khoahotran/dev-network/internal/domain/user"
	"github.com/khoahotran/dev-network/pkg/apperror"
)

type CreatePostUseCase struct {
	postRepo post.Repository
	userRepo user.Repository
}

func NewCreatePostUseCase(pRepo post.Repository, uRepo user.Repository) *CreatePostUseCase {
	return &CreatePostUseCase{
		postRepo: pRepo,
		userRepo: uRepo,
	}
}

type CreatePostInput struct {
	OwnerID uuid.UUID
	Text    string
}

type CreatePostOutput struct {
	Post *post.Post
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, input CreatePostInput) (*CreatePostOutput, error) {
	u, err := uc.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewNotFound("user", input.OwnerID.String())
		}
		return nil, fmt.Errorf("find user failed: %w", err)
	}

	p := &post.Post{
		ID:        uuid.New(),
		OwnerID:   u.ID,
		Text:      input.Text,
		Name:      u.Name,
		Avatar:    u.Avatar,
		Likes:     []post.Like{},
		Comments:  []post.Comment{},
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.postRepo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save post failed: %w", err)
	}

	return &CreatePostOutput{Post: p}, nil
}
