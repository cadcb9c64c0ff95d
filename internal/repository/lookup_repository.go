package repository

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/ambrose/movie-catalog/internal/model"
)

// LookupRepo manages the lookup-style tables (actors, directors, genres,
// catalog). Movies never join against these; they exist for curation
// tooling and seed data.
type LookupRepo struct {
	db *sql.DB
}

func NewLookupRepo(db *sql.DB) *LookupRepo { return &LookupRepo{db: db} }

// ListGenres returns all genres ordered by name.
func (r *LookupRepo) ListGenres(ctx context.Context) ([]model.Genre, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT genre_id, name, created_at FROM genres ORDER BY name ASC")
	if err != nil {
		log.Printf("genres: list failed: %v", err)
		return nil, err
	}
	defer rows.Close()
	result := []model.Genre{}
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.GenreID, &g.Name, &g.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	return result, rows.Err()
}

// AddGenre inserts a genre by name; duplicate names are ignored so the
// call is idempotent.
func (r *LookupRepo) AddGenre(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNoFields
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT IGNORE INTO genres (name) VALUES (?)", name)
	if err != nil {
		log.Printf("genres: insert failed: %v", err)
	}
	return err
}

// ListActors returns all actors ordered by name.
func (r *LookupRepo) ListActors(ctx context.Context) ([]model.Actor, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT actor_id, name, birthdate, gender, nationality, created_at FROM actors ORDER BY name ASC")
	if err != nil {
		log.Printf("actors: list failed: %v", err)
		return nil, err
	}
	defer rows.Close()
	result := []model.Actor{}
	for rows.Next() {
		var a model.Actor
		if err := rows.Scan(&a.ActorID, &a.Name, &a.Birthdate, &a.Gender, &a.Nationality, &a.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// ListDirectors returns all directors ordered by name.
func (r *LookupRepo) ListDirectors(ctx context.Context) ([]model.Director, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT director_id, name, birthdate, nationality, created_at FROM directors ORDER BY name ASC")
	if err != nil {
		log.Printf("directors: list failed: %v", err)
		return nil, err
	}
	defer rows.Close()
	result := []model.Director{}
	for rows.Next() {
		var d model.Director
		if err := rows.Scan(&d.DirectorID, &d.Name, &d.Birthdate, &d.Nationality, &d.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

// ListCatalogs returns the catalog groupings in insertion order.
func (r *LookupRepo) ListCatalogs(ctx context.Context) ([]model.Catalog, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, catalog_id, name, created_at FROM catalog ORDER BY id ASC")
	if err != nil {
		log.Printf("catalog: list failed: %v", err)
		return nil, err
	}
	defer rows.Close()
	result := []model.Catalog{}
	for rows.Next() {
		var c model.Catalog
		if err := rows.Scan(&c.ID, &c.CatalogID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}
