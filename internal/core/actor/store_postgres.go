// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package actor

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reelhub/reelhub/internal/platform/database/schema"
	"github.com/reelhub/reelhub/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListActors(context context.Context, f Filter, limit, offset int) ([]*Actor, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = 'active'
	`,
		schema.CoreActor.ID, schema.CoreActor.Name, schema.CoreActor.Country,
		schema.CoreActor.Age, schema.CoreActor.OscarsPrizes, schema.CoreActor.Genre,
		schema.CoreActor.Image, schema.CoreActor.MovieIDs, schema.CoreActor.Status,
		schema.CoreActor.CreatedAt, schema.CoreActor.UpdatedAt,
		schema.CoreActor.Table, schema.CoreActor.Status,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = 'active'`,
		schema.CoreActor.Table, schema.CoreActor.Status,
	)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		query += ` AND name ILIKE $1`
		countQuery += ` AND name ILIKE $1`
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", schema.CoreActor.Name, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_actors")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_actors")
	}
	defer rows.Close()

	var actors []*Actor
	for rows.Next() {
		a := &Actor{}
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Country, &a.Age, &a.OscarsPrizes, &a.Genre,
			&a.Image, &a.MovieIDs, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_actor")
		}
		actors = append(actors, a)
	}

	return actors, total, nil
}

func (repository *PostgresRepository) GetActor(context context.Context, id string) (*Actor, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = 'active'
	`,
		schema.CoreActor.ID, schema.CoreActor.Name, schema.CoreActor.Country,
		schema.CoreActor.Age, schema.CoreActor.OscarsPrizes, schema.CoreActor.Genre,
		schema.CoreActor.Image, schema.CoreActor.MovieIDs, schema.CoreActor.Status,
		schema.CoreActor.CreatedAt, schema.CoreActor.UpdatedAt,
		schema.CoreActor.Table, schema.CoreActor.ID, schema.CoreActor.Status,
	)
	a := &Actor{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.Name, &a.Country, &a.Age, &a.OscarsPrizes, &a.Genre,
		&a.Image, &a.MovieIDs, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_actor")
	}

	return a, nil
}

func (repository *PostgresRepository) CreateActor(context context.Context, a *Actor) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'active', NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.CoreActor.Table,
		schema.CoreActor.ID, schema.CoreActor.Name, schema.CoreActor.Country,
		schema.CoreActor.Age, schema.CoreActor.OscarsPrizes, schema.CoreActor.Genre,
		schema.CoreActor.Image, schema.CoreActor.MovieIDs, schema.CoreActor.Status,
		schema.CoreActor.CreatedAt, schema.CoreActor.UpdatedAt,
		schema.CoreActor.Status, schema.CoreActor.CreatedAt, schema.CoreActor.UpdatedAt,
	)

	if a.MovieIDs == nil {
		a.MovieIDs = []string{}
	}

	err := repository.db.QueryRow(context, query,
		a.ID, a.Name, a.Country, a.Age, a.OscarsPrizes, a.Genre, a.Image, a.MovieIDs,
	).Scan(&a.Status, &a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "create_actor")
}

func (repository *PostgresRepository) UpdateActor(context context.Context, a *Actor) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1 AND %s = 'active'
		RETURNING %s
	`,
		schema.CoreActor.Table,
		schema.CoreActor.Name, schema.CoreActor.Country, schema.CoreActor.Age,
		schema.CoreActor.OscarsPrizes, schema.CoreActor.Genre, schema.CoreActor.Image,
		schema.CoreActor.UpdatedAt,
		schema.CoreActor.ID, schema.CoreActor.Status,
		schema.CoreActor.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.Name, a.Country, a.Age, a.OscarsPrizes, a.Genre, a.Image,
	).Scan(&a.UpdatedAt)
	return dberr.Wrap(err, "update_actor")
}

// DeleteActor retires the actor row. Movies that reference the actor keep
// their actorids entries untouched; stale references are expected.
func (repository *PostgresRepository) DeleteActor(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = 'disabled', %s = NOW() WHERE %s = $1 AND %s = 'active'`,
		schema.CoreActor.Table, schema.CoreActor.Status, schema.CoreActor.UpdatedAt,
		schema.CoreActor.ID, schema.CoreActor.Status,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_actor")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) PushMovieID(context context.Context, actorID, movieID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = array_append(%s, $2), %s = NOW() WHERE %s = $1 AND %s = 'active'`,
		schema.CoreActor.Table, schema.CoreActor.MovieIDs, schema.CoreActor.MovieIDs,
		schema.CoreActor.UpdatedAt, schema.CoreActor.ID, schema.CoreActor.Status,
	)

	cmd, err := repository.db.Exec(context, query, actorID, movieID)
	if err != nil {
		return dberr.Wrap(err, "push_actor_movie")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) PullMovieID(context context.Context, actorID, movieID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = array_remove(%s, $2), %s = NOW() WHERE %s = $1 AND %s = 'active'`,
		schema.CoreActor.Table, schema.CoreActor.MovieIDs, schema.CoreActor.MovieIDs,
		schema.CoreActor.UpdatedAt, schema.CoreActor.ID, schema.CoreActor.Status,
	)

	cmd, err := repository.db.Exec(context, query, actorID, movieID)
	if err != nil {
		return dberr.Wrap(err, "pull_actor_movie")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
