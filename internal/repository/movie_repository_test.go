package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambrose/movie-catalog/internal/model"
)

func newMovieMock(t *testing.T) (*MovieRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewMovieRepo(db), mock
}

func movieRows(ms ...model.Movie) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"movie_id", "user_id", "catalog_id", "title", "description", "runtime",
		"release_date", "genres", "cast", "director", "producer", "keywords",
		"images", "video_link", "created_at",
	})
	for _, m := range ms {
		rows.AddRow(m.MovieID, m.UserID, m.CatalogID, m.Title, m.Description, m.Runtime,
			m.ReleaseDate, m.Genres, m.Cast, m.Director, m.Producer, m.Keywords,
			m.Images, m.VideoLink, m.CreatedAt)
	}
	return rows
}

func sampleMovie() model.Movie {
	return model.Movie{
		MovieID:     1,
		UserID:      "uid-1",
		CatalogID:   "cat-1",
		Title:       "Arrival",
		Description: "A linguist decodes an alien language.",
		Runtime:     "116",
		ReleaseDate: "2016-11-11",
		Genres:      "Sci-Fi",
		Cast:        "Amy Adams",
		Director:    "Denis Villeneuve",
		CreatedAt:   time.Now(),
	}
}

func TestMovieCreate(t *testing.T) {
	repo, mock := newMovieMock(t)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO movies").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectQuery("SELECT created_at FROM movies").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectCommit()

	m := sampleMovie()
	m.MovieID = 0
	err := repo.Create(context.Background(), &m)
	require.NoError(t, err)
	assert.Equal(t, int64(42), m.MovieID)
	assert.WithinDuration(t, now, m.CreatedAt, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieGetByID(t *testing.T) {
	repo, mock := newMovieMock(t)

	mock.ExpectQuery("SELECT (.+) FROM movies WHERE movie_id").
		WithArgs(int64(1)).
		WillReturnRows(movieRows(sampleMovie()))

	m, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Arrival", m.Title)
	assert.Equal(t, "uid-1", m.UserID)
}

func TestMovieGetByIDNotFound(t *testing.T) {
	repo, mock := newMovieMock(t)

	mock.ExpectQuery("SELECT (.+) FROM movies WHERE movie_id").
		WithArgs(int64(99)).
		WillReturnRows(movieRows())

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMovieListPaged(t *testing.T) {
	repo, mock := newMovieMock(t)

	m1, m2 := sampleMovie(), sampleMovie()
	m2.MovieID = 2
	m2.Title = "Dune"
	mock.ExpectQuery("SELECT (.+) FROM movies ORDER BY movie_id ASC LIMIT").
		WithArgs(2, 0).
		WillReturnRows(movieRows(m1, m2))

	got, err := repo.List(context.Background(), "", 2, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Arrival", got[0].Title)
	assert.Equal(t, "Dune", got[1].Title)
}

func TestMovieListByOwner(t *testing.T) {
	repo, mock := newMovieMock(t)

	mock.ExpectQuery("SELECT (.+) FROM movies WHERE user_id").
		WithArgs("uid-1").
		WillReturnRows(movieRows(sampleMovie()))

	got, err := repo.List(context.Background(), "uid-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "uid-1", got[0].UserID)
}

func TestMovieCount(t *testing.T) {
	repo, mock := newMovieMock(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM movies`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	n, err := repo.Count(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestMovieUpdateBuildsOnlySetFields(t *testing.T) {
	repo, mock := newMovieMock(t)

	title := "Arrival (Remastered)"
	genres := "Sci-Fi, Drama"
	mock.ExpectExec(`UPDATE movies SET title = \?, genres = \? WHERE movie_id = \?`).
		WithArgs(title, genres, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), 1, MoviePatch{Title: &title, Genres: &genres})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieUpdateEmptyPatch(t *testing.T) {
	repo, _ := newMovieMock(t)

	err := repo.Update(context.Background(), 1, MoviePatch{})
	assert.ErrorIs(t, err, ErrNoFields)
}

func TestMovieUpdateMissingRow(t *testing.T) {
	repo, mock := newMovieMock(t)

	title := "Ghost"
	mock.ExpectExec(`UPDATE movies SET title = \? WHERE movie_id = \?`).
		WithArgs(title, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM movies WHERE movie_id").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	err := repo.Update(context.Background(), 99, MoviePatch{Title: &title})
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMovieUpdateNoChangeExistingRow(t *testing.T) {
	repo, mock := newMovieMock(t)

	title := "Arrival"
	mock.ExpectExec(`UPDATE movies SET title = \? WHERE movie_id = \?`).
		WithArgs(title, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM movies WHERE movie_id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	err := repo.Update(context.Background(), 1, MoviePatch{Title: &title})
	assert.NoError(t, err, "identical values are not an error")
}

func TestMovieDelete(t *testing.T) {
	repo, mock := newMovieMock(t)

	mock.ExpectExec("DELETE FROM movies WHERE movie_id").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 1)
	assert.NoError(t, err)
}

func TestMovieDeleteMissingRow(t *testing.T) {
	repo, mock := newMovieMock(t)

	mock.ExpectExec("DELETE FROM movies WHERE movie_id").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMoviePatchIsEmpty(t *testing.T) {
	assert.True(t, MoviePatch{}.IsEmpty())
	v := "x"
	assert.False(t, MoviePatch{Keywords: &v}.IsEmpty())
	assert.False(t, MoviePatch{Images: &v}.IsEmpty())
}
