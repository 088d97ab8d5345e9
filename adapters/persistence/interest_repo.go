package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"devfolio/internal/domain/interest"
	"devfolio/pkg/apperror"
	"devfolio/pkg/logger"
)

type postgresInterestRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresInterestRepo(db *pgxpool.Pool, logger logger.Logger) interest.Repository {
	return &postgresInterestRepo{db: db, logger: logger}
}

var psqlInterest = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const interestColumns = "id, owner_id, title, description, icon, created_at"

func scanInterest(row pgx.Row) (*interest.Interest, error) {
	i := &interest.Interest{}
	err := row.Scan(&i.ID, &i.OwnerID, &i.Title, &i.Description, &i.Icon, &i.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("interest", "")
		}
		return nil, apperror.NewInternal("failed to scan interest row", err)
	}
	return i, nil
}

func scanInterests(rows pgx.Rows) ([]*interest.Interest, error) {
	defer rows.Close()
	interests := make([]*interest.Interest, 0)

	for rows.Next() {
		i, err := scanInterest(rows)
		if err != nil {
			return nil, err
		}
		interests = append(interests, i)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating interest rows", err)
	}
	return interests, nil
}

func (r *postgresInterestRepo) Save(ctx context.Context, i *interest.Interest) error {
	query := `
		INSERT INTO interests (id, owner_id, title, description, icon, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, i.ID, i.OwnerID, i.Title, i.Description, i.Icon, i.CreatedAt)
	if err != nil {
		return apperror.NewInternal("failed to save interest", err)
	}
	return nil
}

func (r *postgresInterestRepo) Update(ctx context.Context, i *interest.Interest) error {
	query := `
		UPDATE interests SET title = $2, description = $3, icon = $4
		WHERE id = $1 AND owner_id = $5
	`
	cmdTag, err := r.db.Exec(ctx, query, i.ID, i.Title, i.Description, i.Icon, i.OwnerID)
	if err != nil {
		return apperror.NewInternal("failed to update interest", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("interest", i.ID.String())
	}
	return nil
}

func (r *postgresInterestRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM interests WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete interest", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("interest", id.String())
	}
	return nil
}

func (r *postgresInterestRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*interest.Interest, error) {
	query := `SELECT ` + interestColumns + ` FROM interests WHERE id = $1 AND owner_id = $2`
	return scanInterest(r.db.QueryRow(ctx, query, id, ownerID))
}

func (r *postgresInterestRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*interest.Interest, error) {
	builder := psqlInterest.Select(interestColumns).
		From("interests").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list interests query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query interests by owner", err)
	}

	return scanInterests(rows)
}
