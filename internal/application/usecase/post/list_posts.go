package post

import (
	"context"
	"fmt"

	"github.com/khoahotran/dev-network/internal/domain/post"
)

type ListPostsUseCase struct {
	postRepo post.Repository
}

func NewListPostsUseCase(repo post.Repository) *ListPostsUseCase {
	return &ListPostsUseCase{postRepo: repo}
}

type ListPostsOutput struct {
	Posts []*post.Post
}

func (uc *ListPostsUseCase) Execute(ctx context.Context) (*ListPostsOutput, error) {
	posts, err := uc.postRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts failed: %w", err)
	}
	return &ListPostsOutput{Posts: posts}, nil
}
