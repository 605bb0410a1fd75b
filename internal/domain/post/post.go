package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrPostNotFound = errors.New("post not found")

type Like struct {
	UserID uuid.UUID `json:"user_id"`
}

type Comment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"text"`
	Name      string    `json:"name,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Post is owned by a user account. Name and avatar are denormalized from the
// owner at creation time so deleted accounts don't blank out old feeds.
type Post struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Text      string    `json:"text"`
	Name      string    `json:"name,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

type Repository interface {
	Save(ctx context.Context, p *Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)
	ListAll(ctx context.Context) ([]*Post, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}
