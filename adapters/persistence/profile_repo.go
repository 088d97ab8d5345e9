package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"devfolio/internal/domain/profile"
	"devfolio/pkg/apperror"
	"devfolio/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

const profileColumns = `owner_id, full_name, title, bio, avatar_url, phone, location, github_url, linkedin_url, email, created_at, updated_at`

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	err := row.Scan(
		&p.OwnerID,
		&p.FullName,
		&p.Title,
		&p.Bio,
		&p.AvatarURL,
		&p.Phone,
		&p.Location,
		&p.GitHubURL,
		&p.LinkedInURL,
		&p.Email,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresProfileRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE owner_id = $1`

	p, err := scanProfile(r.db.QueryRow(ctx, query, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No row yet: the profile is created on first save, so an
			// empty placeholder keyed to the owner is the right answer.
			return &profile.Profile{OwnerID: ownerID}, nil
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) GetFirst(ctx context.Context) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at ASC LIMIT 1`

	p, err := scanProfile(r.db.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "first")
		}
		return nil, apperror.NewInternal("failed to query first profile", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (owner_id, full_name, title, bio, avatar_url, phone, location, github_url, linkedin_url, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		ON CONFLICT (owner_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			title = EXCLUDED.title,
			bio = EXCLUDED.bio,
			avatar_url = EXCLUDED.avatar_url,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			github_url = EXCLUDED.github_url,
			linkedin_url = EXCLUDED.linkedin_url,
			email = EXCLUDED.email,
			updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query,
		p.OwnerID,
		p.FullName,
		p.Title,
		p.Bio,
		p.AvatarURL,
		p.Phone,
		p.Location,
		p.GitHubURL,
		p.LinkedInURL,
		p.Email,
	)

	if err != nil {
		return apperror.NewInternal("failed to upsert profile", err)
	}
	return nil
}
