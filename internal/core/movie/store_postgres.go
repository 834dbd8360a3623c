// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package movie

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reelhub/reelhub/internal/platform/database/schema"
	"github.com/reelhub/reelhub/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// movieColumns is the canonical SELECT column list for movie rows.
func movieColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.CoreMovie.ID, schema.CoreMovie.Title, schema.CoreMovie.Slug,
		schema.CoreMovie.Description, schema.CoreMovie.Duration, schema.CoreMovie.Top,
		schema.CoreMovie.Genre, schema.CoreMovie.Image, schema.CoreMovie.ActorIDs,
		schema.CoreMovie.ReviewIDs, schema.CoreMovie.Status,
		schema.CoreMovie.CreatedAt, schema.CoreMovie.UpdatedAt,
	)
}

func scanMovie(row interface{ Scan(...any) error }) (*Movie, error) {
	m := &Movie{}
	err := row.Scan(
		&m.ID, &m.Title, &m.Slug, &m.Description, &m.Duration, &m.Top,
		&m.Genre, &m.Image, &m.ActorIDs, &m.ReviewIDs, &m.Status,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Movie, int, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = 'active'
	`, movieColumns(), schema.CoreMovie.Table, schema.CoreMovie.Status)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = 'active'`,
		schema.CoreMovie.Table, schema.CoreMovie.Status,
	)

	args := []any{}
	countArgs := []any{}

	if filter.Query != "" {
		searchTerm := "%" + filter.Query + "%"
		clause := fmt.Sprintf(" AND %s ILIKE $%d", schema.CoreMovie.Title, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	if filter.Genre != "" {
		clause := fmt.Sprintf(" AND %s = $%d", schema.CoreMovie.Genre, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, filter.Genre)
		countArgs = append(countArgs, filter.Genre)
	}

	query += fmt.Sprintf(" ORDER BY %s DESC, %s ASC LIMIT $%d OFFSET $%d",
		schema.CoreMovie.Top, schema.CoreMovie.Title, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_movies")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_movies")
	}
	defer rows.Close()

	var movies []*Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_movie")
		}
		movies = append(movies, m)
	}

	return movies, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = 'active'`,
		movieColumns(), schema.CoreMovie.Table, schema.CoreMovie.ID, schema.CoreMovie.Status,
	)

	m, err := scanMovie(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_movie")
	}
	return m, nil
}

func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = 'active'`,
		movieColumns(), schema.CoreMovie.Table, schema.CoreMovie.Slug, schema.CoreMovie.Status,
	)

	m, err := scanMovie(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_movie_by_slug")
	}
	return m, nil
}

func (repository *PostgresRepository) Create(context context.Context, movie *Movie) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'active', NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.CoreMovie.Table,
		schema.CoreMovie.ID, schema.CoreMovie.Title, schema.CoreMovie.Slug,
		schema.CoreMovie.Description, schema.CoreMovie.Duration, schema.CoreMovie.Top,
		schema.CoreMovie.Genre, schema.CoreMovie.Image, schema.CoreMovie.ActorIDs,
		schema.CoreMovie.ReviewIDs, schema.CoreMovie.Status,
		schema.CoreMovie.CreatedAt, schema.CoreMovie.UpdatedAt,
		schema.CoreMovie.Status, schema.CoreMovie.CreatedAt, schema.CoreMovie.UpdatedAt,
	)

	if movie.ActorIDs == nil {
		movie.ActorIDs = []string{}
	}
	if movie.ReviewIDs == nil {
		movie.ReviewIDs = []string{}
	}

	err := repository.db.QueryRow(context, query,
		movie.ID, movie.Title, movie.Slug, movie.Description, movie.Duration,
		movie.Top, movie.Genre, movie.Image, movie.ActorIDs, movie.ReviewIDs,
	).Scan(&movie.Status, &movie.CreatedAt, &movie.UpdatedAt)
	return dberr.Wrap(err, "create_movie")
}

func (repository *PostgresRepository) Update(context context.Context, movie *Movie) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1 AND %s = 'active'
		RETURNING %s
	`,
		schema.CoreMovie.Table,
		schema.CoreMovie.Title, schema.CoreMovie.Slug, schema.CoreMovie.Description,
		schema.CoreMovie.Duration, schema.CoreMovie.Top, schema.CoreMovie.Genre,
		schema.CoreMovie.Image, schema.CoreMovie.UpdatedAt,
		schema.CoreMovie.ID, schema.CoreMovie.Status,
		schema.CoreMovie.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		movie.ID, movie.Title, movie.Slug, movie.Description, movie.Duration,
		movie.Top, movie.Genre, movie.Image,
	).Scan(&movie.UpdatedAt)
	return dberr.Wrap(err, "update_movie")
}

// SoftDelete retires the movie row. Reviews of the movie stay active and
// actor filmographies keep their movieids entries.
func (repository *PostgresRepository) SoftDelete(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = 'disabled', %s = NOW() WHERE %s = $1 AND %s = 'active'`,
		schema.CoreMovie.Table, schema.CoreMovie.Status, schema.CoreMovie.UpdatedAt,
		schema.CoreMovie.ID, schema.CoreMovie.Status,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_movie")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Reference Array Maintenance

func (repository *PostgresRepository) PushActorID(context context.Context, movieID, actorID string) error {
	return repository.pushRef(context, schema.CoreMovie.ActorIDs, movieID, actorID, "push_movie_actor")
}

func (repository *PostgresRepository) PullActorID(context context.Context, movieID, actorID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = array_remove(%s, $2), %s = NOW() WHERE %s = $1 AND %s = 'active'`,
		schema.CoreMovie.Table, schema.CoreMovie.ActorIDs, schema.CoreMovie.ActorIDs,
		schema.CoreMovie.UpdatedAt, schema.CoreMovie.ID, schema.CoreMovie.Status,
	)

	cmd, err := repository.db.Exec(context, query, movieID, actorID)
	if err != nil {
		return dberr.Wrap(err, "pull_movie_actor")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) PushReviewID(context context.Context, movieID, reviewID string) error {
	return repository.pushRef(context, schema.CoreMovie.ReviewIDs, movieID, reviewID, "push_movie_review")
}

// pushRef appends refID to the named uuid[] column via array_append, so
// duplicate references accumulate.
func (repository *PostgresRepository) pushRef(context context.Context, column, movieID, refID, action string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = array_append(%s, $2), %s = NOW() WHERE %s = $1 AND %s = 'active'`,
		schema.CoreMovie.Table, column, column,
		schema.CoreMovie.UpdatedAt, schema.CoreMovie.ID, schema.CoreMovie.Status,
	)

	cmd, err := repository.db.Exec(context, query, movieID, refID)
	if err != nil {
		return dberr.Wrap(err, action)
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
