package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"devfolio/internal/domain/certification"
	"devfolio/pkg/apperror"
	"devfolio/pkg/logger"
)

type postgresCertificationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresCertificationRepo(db *pgxpool.Pool, logger logger.Logger) certification.Repository {
	return &postgresCertificationRepo{db: db, logger: logger}
}

var psqlCertification = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const certificationColumns = "id, owner_id, title, issuer, issue_date, credential_url, created_at"

func scanCertification(row pgx.Row) (*certification.Certification, error) {
	c := &certification.Certification{}
	err := row.Scan(&c.ID, &c.OwnerID, &c.Title, &c.Issuer, &c.IssueDate, &c.CredentialURL, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("certification", "")
		}
		return nil, apperror.NewInternal("failed to scan certification row", err)
	}
	return c, nil
}

func scanCertifications(rows pgx.Rows) ([]*certification.Certification, error) {
	defer rows.Close()
	certs := make([]*certification.Certification, 0)

	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating certification rows", err)
	}
	return certs, nil
}

func (r *postgresCertificationRepo) Save(ctx context.Context, c *certification.Certification) error {
	query := `
		INSERT INTO certifications (id, owner_id, title, issuer, issue_date, credential_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, c.ID, c.OwnerID, c.Title, c.Issuer, c.IssueDate, c.CredentialURL, c.CreatedAt)
	if err != nil {
		return apperror.NewInternal("failed to save certification", err)
	}
	return nil
}

func (r *postgresCertificationRepo) Update(ctx context.Context, c *certification.Certification) error {
	query := `
		UPDATE certifications SET title = $2, issuer = $3, issue_date = $4, credential_url = $5
		WHERE id = $1 AND owner_id = $6
	`
	cmdTag, err := r.db.Exec(ctx, query, c.ID, c.Title, c.Issuer, c.IssueDate, c.CredentialURL, c.OwnerID)
	if err != nil {
		return apperror.NewInternal("failed to update certification", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("certification", c.ID.String())
	}
	return nil
}

func (r *postgresCertificationRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM certifications WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete certification", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("certification", id.String())
	}
	return nil
}

func (r *postgresCertificationRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*certification.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications WHERE id = $1 AND owner_id = $2`
	return scanCertification(r.db.QueryRow(ctx, query, id, ownerID))
}

func (r *postgresCertificationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*certification.Certification, error) {
	builder := psqlCertification.Select(certificationColumns).
		From("certifications").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("issue_date DESC NULLS LAST", "created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list certifications query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query certifications by owner", err)
	}

	return scanCertifications(rows)
}
