package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/dev-network/internal/domain/post"
	"github.com/khoahotran/dev-network/pkg/apperror"
)

type postgresPostRepo struct {
	db *pgxpool.Pool
}

func NewPostgresPostRepo(db *pgxpool.Pool) post.Repository {
	return &postgresPostRepo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresPostRepo) Save(ctx context.Context, p *post.Post) error {
	likesBytes, err := json.Marshal(p.Likes)
	if err != nil {
		return apperror.NewInternal("failed to marshal likes", err)
	}
	commentsBytes, err := json.Marshal(p.Comments)
	if err != nil {
		return apperror.NewInternal("failed to marshal comments", err)
	}

	query, args, err := psql.Insert("posts").
		Columns("id", "owner_id", "text", "name", "avatar", "likes", "comments", "created_at").
		Values(p.ID, p.OwnerID, p.Text, p.Name, p.Avatar, likesBytes, commentsBytes, p.CreatedAt).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build insert query", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return apperror.NewInternal("failed to insert post", err)
	}
	return nil
}

func (r *postgresPostRepo) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	query, args, err := psql.Select("id", "owner_id", "text", "name", "avatar", "likes", "comments", "created_at").
		From("posts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build select query", err)
	}

	p, err := scanPost(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, apperror.NewInternal("failed to query post", err)
	}
	return p, nil
}

func (r *postgresPostRepo) ListAll(ctx context.Context) ([]*post.Post, error) {
	query, args, err := psql.Select("id", "owner_id", "text", "name", "avatar", "likes", "comments", "created_at").
		From("posts").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query posts", err)
	}
	defer rows.Close()

	posts := make([]*post.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan post row", err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// Delete removes a single post, but only when the caller owns it. A delete
// that matches no row reports not-found so the handler can answer 404.
func (r *postgresPostRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query, args, err := psql.Delete("posts").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build delete query", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return apperror.NewInternal("failed to delete post", err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

func (r *postgresPostRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	query, args, err := psql.Delete("posts").
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build delete query", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return apperror.NewInternal("failed to delete posts by owner", err)
	}
	return nil
}

func scanPost(row pgx.Row) (*post.Post, error) {
	p := &post.Post{}
	var likesBytes, commentsBytes []byte

	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Text,
		&p.Name,
		&p.Avatar,
		&likesBytes,
		&commentsBytes,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(likesBytes, &p.Likes); err != nil {
		p.Likes = []post.Like{}
	}
	if err := json.Unmarshal(commentsBytes, &p.Comments); err != nil {
		p.Comments = []post.Comment{}
	}
	return p, nil
}
