package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"devfolio/internal/domain/education"
	"devfolio/pkg/apperror"
	"devfolio/pkg/logger"
)

type postgresEducationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresEducationRepo(db *pgxpool.Pool, logger logger.Logger) education.Repository {
	return &postgresEducationRepo{db: db, logger: logger}
}

var psqlEducation = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const educationColumns = "id, owner_id, degree, institution, start_date, end_date, description, gpa, achievements, created_at"

func scanEducation(row pgx.Row) (*education.Education, error) {
	e := &education.Education{}
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.Degree, &e.Institution,
		&e.StartDate, &e.EndDate, &e.Description, &e.GPA,
		&e.Achievements, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("education", "")
		}
		return nil, apperror.NewInternal("failed to scan education row", err)
	}
	if e.Achievements == nil {
		e.Achievements = []string{}
	}
	return e, nil
}

func scanEducations(rows pgx.Rows) ([]*education.Education, error) {
	defer rows.Close()
	entries := make([]*education.Education, 0)

	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating education rows", err)
	}
	return entries, nil
}

func (r *postgresEducationRepo) Save(ctx context.Context, e *education.Education) error {
	query := `
		INSERT INTO education (id, owner_id, degree, institution, start_date, end_date, description, gpa, achievements, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.OwnerID, e.Degree, e.Institution, e.StartDate, e.EndDate,
		e.Description, e.GPA, e.Achievements, e.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save education", err)
	}
	return nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, e *education.Education) error {
	query := `
		UPDATE education SET
			degree = $2, institution = $3, start_date = $4, end_date = $5,
			description = $6, gpa = $7, achievements = $8
		WHERE id = $1 AND owner_id = $9
	`
	cmdTag, err := r.db.Exec(ctx, query,
		e.ID, e.Degree, e.Institution, e.StartDate, e.EndDate,
		e.Description, e.GPA, e.Achievements, e.OwnerID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", e.ID.String())
	}
	return nil
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM education WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", id.String())
	}
	return nil
}

func (r *postgresEducationRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*education.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM education WHERE id = $1 AND owner_id = $2`
	return scanEducation(r.db.QueryRow(ctx, query, id, ownerID))
}

func (r *postgresEducationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*education.Education, error) {
	builder := psqlEducation.Select(educationColumns).
		From("education").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("start_date DESC NULLS LAST", "created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list education query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query education by owner", err)
	}

	return scanEducations(rows)
}
