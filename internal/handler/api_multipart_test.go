package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMovieMultipartWithImage(t *testing.T) {
	e := newTestServer(t)
	register(t, e, "owner@example.com")
	owner := login(t, e, "owner@example.com")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("data",
		`{"title":"Arrival","description":"Aliens arrive.","runtime":"116","release_date":"2016-11-11"}`))
	fw, err := w.CreateFormFile("image", "cover.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	req.AddCookie(owner)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	res := doJSON(t, e, http.MethodGet, "/api/v1/movies/1", "")
	movie := res.body["data"].(map[string]any)
	assert.Equal(t, "stored_cover.jpg", movie["images"])
}

func TestCreateMovieMultipartWithoutImage(t *testing.T) {
	e := newTestServer(t)
	register(t, e, "owner@example.com")
	owner := login(t, e, "owner@example.com")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("data",
		`{"title":"Dune","description":"Spice.","runtime":"155","release_date":"2021-10-22"}`))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	req.AddCookie(owner)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}
