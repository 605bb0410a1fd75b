package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/dev-network/internal/domain/profile"
	"github.com/khoahotran/dev-network/pkg/apperror"
	"github.com/khoahotran/dev-network/pkg/logger"
)

// postgresProfileRepo stores each profile as a single row: scalar columns for
// the flat fields, JSONB for skills, social links and the two embedded
// history collections. Upsert replaces the whole document, which is what
// keeps a profile a one-owner aggregate rather than a set of joined tables.
type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, log logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: log}
}

func (r *postgresProfileRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	query := `
		SELECT owner_id, company, website, location, bio, status, github_username,
		       skills, social, experience, education, updated_at
		FROM profiles
		WHERE owner_id = $1
	`
	p, err := r.scanProfile(r.db.QueryRow(ctx, query, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) ListAll(ctx context.Context) ([]*profile.Profile, error) {
	query := `
		SELECT owner_id, company, website, location, bio, status, github_username,
		       skills, social, experience, education, updated_at
		FROM profiles
		ORDER BY updated_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewInternal("failed to query profiles", err)
	}
	defer rows.Close()

	profiles := make([]*profile.Profile, 0)
	for rows.Next() {
		p, err := r.scanProfile(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan profile row", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	skillsBytes, err := json.Marshal(p.Skills)
	if err != nil {
		return apperror.NewInternal("failed to marshal skills", err)
	}
	socialBytes, err := json.Marshal(p.Social)
	if err != nil {
		return apperror.NewInternal("failed to marshal social", err)
	}
	experienceBytes, err := json.Marshal(p.Experience)
	if err != nil {
		return apperror.NewInternal("failed to marshal experience", err)
	}
	educationBytes, err := json.Marshal(p.Education)
	if err != nil {
		return apperror.NewInternal("failed to marshal education", err)
	}

	query := `
		INSERT INTO profiles (owner_id, company, website, location, bio, status,
		                      github_username, skills, social, experience, education, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (owner_id) DO UPDATE SET
			company = EXCLUDED.company,
			website = EXCLUDED.website,
			location = EXCLUDED.location,
			bio = EXCLUDED.bio,
			status = EXCLUDED.status,
			github_username = EXCLUDED.github_username,
			skills = EXCLUDED.skills,
			social = EXCLUDED.social,
			experience = EXCLUDED.experience,
			education = EXCLUDED.education,
			updated_at = EXCLUDED.updated_at
	`
	_, err = r.db.Exec(ctx, query,
		p.OwnerID,
		p.Company,
		p.Website,
		p.Location,
		p.Bio,
		p.Status,
		p.GithubUsername,
		skillsBytes,
		socialBytes,
		experienceBytes,
		educationBytes,
		p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to upsert profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE owner_id = $1`, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	var skillsBytes, socialBytes, experienceBytes, educationBytes []byte

	err := row.Scan(
		&p.OwnerID,
		&p.Company,
		&p.Website,
		&p.Location,
		&p.Bio,
		&p.Status,
		&p.GithubUsername,
		&skillsBytes,
		&socialBytes,
		&experienceBytes,
		&educationBytes,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(skillsBytes, &p.Skills); err != nil {
		r.logger.Warn("Failed to unmarshal skills", zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		p.Skills = []string{}
	}
	if err := json.Unmarshal(socialBytes, &p.Social); err != nil {
		r.logger.Warn("Failed to unmarshal social", zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		p.Social = map[string]string{}
	}
	if err := json.Unmarshal(experienceBytes, &p.Experience); err != nil {
		r.logger.Warn("Failed to unmarshal experience", zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		p.Experience = []profile.Experience{}
	}
	if err := json.Unmarshal(educationBytes, &p.Education); err != nil {
		r.logger.Warn("Failed to unmarshal education", zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		p.Education = []profile.Education{}
	}

	return p, nil
}
