package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ambrose/movie-catalog/internal/repository"
	"github.com/ambrose/movie-catalog/internal/service"
)

// MovieHandler bundles dependencies for the JSON movie endpoints.
type MovieHandler struct {
	Movies *service.MovieService
}

func NewMovieHandler(movies *service.MovieService) *MovieHandler {
	return &MovieHandler{Movies: movies}
}

// List handles GET /api/v1/movies. Public; supports page and limit query
// parameters.
func (h *MovieHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, pg, err := h.Movies.List(ctx, "", page, limit)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "Failed to fetch movies", "FETCH_FAILED")
	}
	return respondSuccess(c, http.StatusOK, "Movies fetched successfully", map[string]any{
		"movies":     movies,
		"pagination": pg,
	})
}

// Get handles GET /api/v1/movies/:id. Public.
func (h *MovieHandler) Get(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return respondError(c, http.StatusNotFound, "Movie not found", "MOVIE_NOT_FOUND")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Movies.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "Movie not found", "MOVIE_NOT_FOUND")
		}
		return respondError(c, http.StatusInternalServerError, "Failed to fetch movie", "FETCH_FAILED")
	}
	return respondSuccess(c, http.StatusOK, "Movie fetched successfully", m)
}

// Create handles POST /api/v1/movies (session required). The body is
// either plain JSON or multipart form data with a "data" field holding
// the JSON payload and an optional "image" file.
func (h *MovieHandler) Create(c echo.Context) error {
	in, upload, err := bindMovieCreate(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}
	in.Image = upload
	ownerID, _ := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	m, err := h.Movies.Create(ctx, in, ownerID)
	if err != nil {
		if ve, ok := service.AsValidation(err); ok {
			return respondError(c, http.StatusBadRequest, ve.Message, ve.Code)
		}
		return respondError(c, http.StatusInternalServerError, "Failed to create movie", "CREATE_FAILED")
	}
	return respondSuccess(c, http.StatusCreated, "Movie created successfully", map[string]any{
		"movie_id":   m.MovieID,
		"catalog_id": m.CatalogID,
		"title":      m.Title,
	})
}

// Update handles PUT /api/v1/movies/:id (session required, JSON body).
// Only the whitelisted fields present in the body are changed.
func (h *MovieHandler) Update(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return respondError(c, http.StatusNotFound, "Movie not found", "MOVIE_NOT_FOUND")
	}
	var patch repository.MoviePatch
	if err := c.Bind(&patch); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}
	requesterID, _ := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Movies.Update(ctx, id, patch, nil, requesterID); err != nil {
		return h.mutationError(c, err, "Failed to update movie", "UPDATE_FAILED")
	}
	return respondSuccess(c, http.StatusOK, "Movie updated successfully", map[string]any{
		"movie_id": id,
	})
}

// Delete handles DELETE /api/v1/movies/:id (session required).
func (h *MovieHandler) Delete(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return respondError(c, http.StatusNotFound, "Movie not found", "MOVIE_NOT_FOUND")
	}
	requesterID, _ := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Movies.Delete(ctx, id, requesterID); err != nil {
		return h.mutationError(c, err, "Failed to delete movie", "DELETE_FAILED")
	}
	return respondSuccess(c, http.StatusOK, "Movie deleted successfully", nil)
}

// Dashboard handles GET /api/v1/dashboard (session required):
// every movie owned by the caller plus the total count.
func (h *MovieHandler) Dashboard(c echo.Context) error {
	ownerID, _ := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, total, err := h.Movies.Dashboard(ctx, ownerID)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "Failed to fetch dashboard", "FETCH_FAILED")
	}
	return respondSuccess(c, http.StatusOK, "Dashboard fetched successfully", map[string]any{
		"movies":       movies,
		"total_movies": total,
		"user_id":      ownerID,
	})
}

// mutationError maps the shared update/delete failure modes onto the
// envelope.
func (h *MovieHandler) mutationError(c echo.Context, err error, failMsg, failCode string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return respondError(c, http.StatusNotFound, "Movie not found", "MOVIE_NOT_FOUND")
	case errors.Is(err, service.ErrAccessDenied):
		return respondError(c, http.StatusForbidden, "You do not have permission to modify this movie", "ACCESS_DENIED")
	case errors.Is(err, service.ErrNoUpdateFields):
		return respondError(c, http.StatusBadRequest, "No valid fields to update", "NO_UPDATE_FIELDS")
	default:
		return respondError(c, http.StatusInternalServerError, failMsg, failCode)
	}
}

func movieID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// bindMovieCreate decodes a movie creation request from either a JSON
// body or a multipart form whose "data" field carries the JSON and whose
// "image" file, if any, becomes the upload.
func bindMovieCreate(c echo.Context) (service.CreateMovieInput, *service.Upload, error) {
	var in service.CreateMovieInput
	ct := c.Request().Header.Get(echo.HeaderContentType)

	if strings.HasPrefix(ct, echo.MIMEMultipartForm) {
		raw := c.FormValue("data")
		if raw != "" {
			if err := json.Unmarshal([]byte(raw), &in); err != nil {
				return in, nil, err
			}
		}
		fh, err := c.FormFile("image")
		if err != nil {
			return in, nil, nil
		}
		f, err := fh.Open()
		if err != nil {
			return in, nil, err
		}
		return in, &service.Upload{Filename: fh.Filename, Content: f}, nil
	}

	if err := c.Bind(&in); err != nil {
		return in, nil, err
	}
	return in, nil, nil
}
