package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambrose/movie-catalog/internal/repository"
	"github.com/ambrose/movie-catalog/internal/utils"
)

func postGenreForm(t *testing.T, h *WebMovieHandler, name string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"name": {name}}
	req := httptest.NewRequest(http.MethodPost, "/catalog/genres", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.AddGenre(c))
	return rec
}

func flashValue(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == utils.FlashCookie {
			raw, err := url.QueryUnescape(ck.Value)
			require.NoError(t, err)
			return raw
		}
	}
	return ""
}

func TestAddGenreRedirectsWithSuccessFlash(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectExec("INSERT IGNORE INTO genres").
		WithArgs("Thriller").
		WillReturnResult(sqlmock.NewResult(1, 1))

	h := NewWebMovieHandler(nil, repository.NewLookupRepo(db))
	rec := postGenreForm(t, h, "Thriller")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/catalog", rec.Header().Get("Location"))
	assert.Equal(t, "success|Genre added.", flashValue(t, rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddGenreBlankNameFlashesError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := NewWebMovieHandler(nil, repository.NewLookupRepo(db))
	rec := postGenreForm(t, h, "   ")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "error|Genre name is required.", flashValue(t, rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}
