// Movie persistence: parameterized CRUD with ownership checks left to
// the service layer, list queries in insertion order and writes wrapped
// so a failure rolls back cleanly.

package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"

	"github.com/ambrose/movie-catalog/internal/model"
)

// movieCols is the shared select list. `cast` is a reserved word in
// MySQL and must stay quoted; nullable text columns are coalesced so
// rows decode straight into plain strings.
const movieCols = "movie_id, user_id, catalog_id, title, COALESCE(description,''), runtime, " +
	"release_date, genres, `cast`, director, producer, keywords, images, " +
	"COALESCE(video_link,''), created_at"

// MoviePatch lists the whitelisted updatable fields. A nil pointer means
// "leave unchanged"; only non-nil fields reach the UPDATE statement.
type MoviePatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Runtime     *string `json:"runtime"`
	ReleaseDate *string `json:"release_date"`
	Genres      *string `json:"genres"`
	Cast        *string `json:"cast"`
	Director    *string `json:"director"`
	Producer    *string `json:"producer"`
	Keywords    *string `json:"keywords"`
	VideoLink   *string `json:"video_link"`
	Images      *string `json:"-"` // set only when a new file was uploaded
}

// IsEmpty reports whether no field of the patch is set.
func (p MoviePatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Runtime == nil &&
		p.ReleaseDate == nil && p.Genres == nil && p.Cast == nil &&
		p.Director == nil && p.Producer == nil && p.Keywords == nil &&
		p.VideoLink == nil && p.Images == nil
}

// MovieRepo manages persistence for movies.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the given DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// Create inserts a new movie and assigns the generated ID back to the
// struct. The insert runs in a transaction so a partial write is rolled
// back; DB-default fields (created_at) are read back on success.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO movies (user_id, catalog_id, title, description, runtime, release_date,"+
			" genres, `cast`, director, producer, keywords, images, video_link)"+
			" VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)",
		m.UserID, m.CatalogID, m.Title, m.Description, m.Runtime, m.ReleaseDate,
		m.Genres, m.Cast, m.Director, m.Producer, m.Keywords, m.Images, m.VideoLink)
	if err != nil {
		log.Printf("movies: insert failed: %v", err)
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.MovieID = id
	err = tx.QueryRowContext(ctx,
		"SELECT created_at FROM movies WHERE movie_id = ?", m.MovieID).Scan(&m.CreatedAt)
	return err
}

// GetByID retrieves a movie by its ID. It returns ErrMovieNotFound when
// there is no matching row.
func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	var m model.Movie
	err := r.db.QueryRowContext(ctx,
		"SELECT "+movieCols+" FROM movies WHERE movie_id = ?", id).Scan(
		&m.MovieID, &m.UserID, &m.CatalogID, &m.Title, &m.Description, &m.Runtime,
		&m.ReleaseDate, &m.Genres, &m.Cast, &m.Director, &m.Producer, &m.Keywords,
		&m.Images, &m.VideoLink, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		log.Printf("movies: select failed: %v", err)
		return nil, err
	}
	return &m, nil
}

// List returns a page of movies in insertion order. When ownerID is
// non-empty only that user's movies are returned. limit <= 0 disables
// paging.
func (r *MovieRepo) List(ctx context.Context, ownerID string, limit, offset int) ([]model.Movie, error) {
	q := "SELECT " + movieCols + " FROM movies"
	args := []any{}
	if ownerID != "" {
		q += " WHERE user_id = ?"
		args = append(args, ownerID)
	}
	q += " ORDER BY movie_id ASC"
	if limit > 0 {
		q += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		log.Printf("movies: list failed: %v", err)
		return nil, err
	}
	defer rows.Close()

	result := []model.Movie{}
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(
			&m.MovieID, &m.UserID, &m.CatalogID, &m.Title, &m.Description, &m.Runtime,
			&m.ReleaseDate, &m.Genres, &m.Cast, &m.Director, &m.Producer, &m.Keywords,
			&m.Images, &m.VideoLink, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Count returns the number of movies, optionally restricted to one owner.
func (r *MovieRepo) Count(ctx context.Context, ownerID string) (int, error) {
	q := "SELECT COUNT(*) FROM movies"
	args := []any{}
	if ownerID != "" {
		q += " WHERE user_id = ?"
		args = append(args, ownerID)
	}
	var n int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		log.Printf("movies: count failed: %v", err)
		return 0, err
	}
	return n, nil
}

// Update applies the non-nil fields of the patch to one movie. It
// returns ErrNoFields for an empty patch and ErrMovieNotFound when no
// row matched.
func (r *MovieRepo) Update(ctx context.Context, id int64, p MoviePatch) error {
	sets := make([]string, 0, 11)
	args := make([]any, 0, 12)
	add := func(col string, v *string) {
		if v != nil {
			sets = append(sets, col+" = ?")
			args = append(args, *v)
		}
	}
	add("title", p.Title)
	add("description", p.Description)
	add("runtime", p.Runtime)
	add("release_date", p.ReleaseDate)
	add("genres", p.Genres)
	add("`cast`", p.Cast)
	add("director", p.Director)
	add("producer", p.Producer)
	add("keywords", p.Keywords)
	add("video_link", p.VideoLink)
	add("images", p.Images)
	if len(sets) == 0 {
		return ErrNoFields
	}
	args = append(args, id)

	res, err := r.db.ExecContext(ctx,
		"UPDATE movies SET "+strings.Join(sets, ", ")+" WHERE movie_id = ?", args...)
	if err != nil {
		log.Printf("movies: update failed: %v", err)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Either the row is gone or the values were already identical;
		// confirm existence so callers can tell the difference.
		var one int
		if err := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM movies WHERE movie_id = ? LIMIT 1", id).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrMovieNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes one movie row. Missing rows are reported as
// ErrMovieNotFound.
func (r *MovieRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM movies WHERE movie_id = ?", id)
	if err != nil {
		log.Printf("movies: delete failed: %v", err)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMovieNotFound
	}
	return nil
}
