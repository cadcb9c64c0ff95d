package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ambrose/movie-catalog/internal/repository"
	"github.com/ambrose/movie-catalog/internal/service"
)

// homePageSize is the number of movies shown per page on the home grid.
const homePageSize = 12

// WebMovieHandler serves the server-rendered catalog pages.
type WebMovieHandler struct {
	Movies  *service.MovieService
	Lookups *repository.LookupRepo
}

func NewWebMovieHandler(movies *service.MovieService, lookups *repository.LookupRepo) *WebMovieHandler {
	return &WebMovieHandler{Movies: movies, Lookups: lookups}
}

// Home renders the public movie grid, 12 per page.
func (h *WebMovieHandler) Home(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, pg, err := h.Movies.List(ctx, "", page, homePageSize)
	if err != nil {
		setFlash(c, "error", "Could not load movies.")
		movies = nil
	}
	return c.Render(http.StatusOK, "index.html", map[string]any{
		"Flashes":    popFlash(c),
		"Movies":     movies,
		"Pagination": pg,
		"FullName":   fullName(c),
	})
}

// Dashboard renders the caller's own movies (session required).
func (h *WebMovieHandler) Dashboard(c echo.Context) error {
	ownerID, _ := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, total, err := h.Movies.Dashboard(ctx, ownerID)
	if err != nil {
		setFlash(c, "error", "Could not load your movies.")
	}
	return c.Render(http.StatusOK, "dashboard.html", map[string]any{
		"Flashes":     popFlash(c),
		"Movies":      movies,
		"TotalMovies": total,
		"FullName":    fullName(c),
	})
}

// Details renders one movie. Edit/delete controls appear only when the
// viewer owns it.
func (h *WebMovieHandler) Details(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		setFlash(c, "error", "Movie not found.")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Movies.Get(ctx, id)
	if err != nil {
		setFlash(c, "error", "Movie not found.")
		return c.Redirect(http.StatusSeeOther, "/")
	}
	viewerID, _ := c.Get("user_id").(string)
	return c.Render(http.StatusOK, "details.html", map[string]any{
		"Flashes":  popFlash(c),
		"Movie":    m,
		"IsOwner":  viewerID != "" && viewerID == m.UserID,
		"FullName": fullName(c),
	})
}

// AddMoviePage renders the creation form (session required).
func (h *WebMovieHandler) AddMoviePage(c echo.Context) error {
	return c.Render(http.StatusOK, "add_movie.html", map[string]any{
		"Flashes":  popFlash(c),
		"FullName": fullName(c),
	})
}

// AddMovie handles the creation form post, including the optional cover
// image upload.
func (h *WebMovieHandler) AddMovie(c echo.Context) error {
	in := service.CreateMovieInput{
		CatalogID:   c.FormValue("catalog_id"),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Runtime:     c.FormValue("runtime"),
		ReleaseDate: c.FormValue("release_date"),
		Genres:      c.FormValue("genres"),
		Cast:        c.FormValue("cast"),
		Director:    c.FormValue("director"),
		Producer:    c.FormValue("producer"),
		Keywords:    c.FormValue("keywords"),
		VideoLink:   c.FormValue("video_link"),
	}
	in.Image = formUpload(c)
	ownerID, _ := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	m, err := h.Movies.Create(ctx, in, ownerID)
	if err != nil {
		if ve, ok := service.AsValidation(err); ok {
			setFlash(c, "error", ve.Message)
		} else {
			setFlash(c, "error", "Could not add the movie. Please try again.")
		}
		return c.Redirect(http.StatusSeeOther, "/add_movie")
	}
	setFlash(c, "success", "Movie added successfully.")
	return c.Redirect(http.StatusSeeOther, "/details/"+strconv.FormatInt(m.MovieID, 10))
}

// EditMoviePage renders the edit form pre-filled with the movie, after
// verifying ownership.
func (h *WebMovieHandler) EditMoviePage(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		setFlash(c, "error", "Movie not found.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Movies.Get(ctx, id)
	if err != nil {
		setFlash(c, "error", "Movie not found.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	viewerID, _ := c.Get("user_id").(string)
	if m.UserID != viewerID {
		setFlash(c, "error", "You do not have permission to edit this movie.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return c.Render(http.StatusOK, "edit_movie.html", map[string]any{
		"Flashes":  popFlash(c),
		"Movie":    m,
		"FullName": fullName(c),
	})
}

// EditMovie applies the edit form post. Blank form fields leave the
// stored values untouched.
func (h *WebMovieHandler) EditMovie(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		setFlash(c, "error", "Movie not found.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	patch := formPatch(c)
	requesterID, _ := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	err = h.Movies.Update(ctx, id, patch, formUpload(c), requesterID)
	switch {
	case err == nil:
		setFlash(c, "success", "Movie updated successfully.")
		return c.Redirect(http.StatusSeeOther, "/details/"+c.Param("id"))
	case errors.Is(err, service.ErrNotFound):
		setFlash(c, "error", "Movie not found.")
	case errors.Is(err, service.ErrAccessDenied):
		setFlash(c, "error", "You do not have permission to edit this movie.")
	case errors.Is(err, service.ErrNoUpdateFields):
		setFlash(c, "error", "Nothing to update.")
		return c.Redirect(http.StatusSeeOther, "/edit/"+c.Param("id"))
	default:
		setFlash(c, "error", "Could not update the movie. Please try again.")
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// DeleteMovie removes a movie from the owner's dashboard.
func (h *WebMovieHandler) DeleteMovie(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		setFlash(c, "error", "Movie not found.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	requesterID, _ := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	switch err := h.Movies.Delete(ctx, id, requesterID); {
	case err == nil:
		setFlash(c, "success", "Movie deleted successfully.")
	case errors.Is(err, service.ErrNotFound):
		setFlash(c, "error", "Movie not found.")
	case errors.Is(err, service.ErrAccessDenied):
		setFlash(c, "error", "You do not have permission to delete this movie.")
	default:
		setFlash(c, "error", "Could not delete the movie. Please try again.")
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Catalog renders the curated lookup tables: genres, actors, directors
// and catalog groupings.
func (h *WebMovieHandler) Catalog(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	genres, err := h.Lookups.ListGenres(ctx)
	if err != nil {
		setFlash(c, "error", "Could not load the catalog.")
	}
	actors, _ := h.Lookups.ListActors(ctx)
	directors, _ := h.Lookups.ListDirectors(ctx)
	catalogs, _ := h.Lookups.ListCatalogs(ctx)
	return c.Render(http.StatusOK, "catalog.html", map[string]any{
		"Flashes":   popFlash(c),
		"Genres":    genres,
		"Actors":    actors,
		"Directors": directors,
		"Catalogs":  catalogs,
		"FullName":  fullName(c),
	})
}

// AddGenre handles the genre curation form on the catalog page (session
// required). Duplicate names are accepted silently since the insert is
// idempotent.
func (h *WebMovieHandler) AddGenre(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	switch err := h.Lookups.AddGenre(ctx, c.FormValue("name")); {
	case err == nil:
		setFlash(c, "success", "Genre added.")
	case errors.Is(err, repository.ErrNoFields):
		setFlash(c, "error", "Genre name is required.")
	default:
		setFlash(c, "error", "Could not add the genre. Please try again.")
	}
	return c.Redirect(http.StatusSeeOther, "/catalog")
}

// fullName returns the logged-in user's display name, or "" when
// anonymous.
func fullName(c echo.Context) string {
	name, _ := c.Get("full_name").(string)
	return name
}

// formPatch builds a movie patch from the edit form, treating blank
// fields as absent.
func formPatch(c echo.Context) repository.MoviePatch {
	field := func(name string) *string {
		if v := c.FormValue(name); v != "" {
			return &v
		}
		return nil
	}
	return repository.MoviePatch{
		Title:       field("title"),
		Description: field("description"),
		Runtime:     field("runtime"),
		ReleaseDate: field("release_date"),
		Genres:      field("genres"),
		Cast:        field("cast"),
		Director:    field("director"),
		Producer:    field("producer"),
		Keywords:    field("keywords"),
		VideoLink:   field("video_link"),
	}
}

// formUpload extracts the optional "image" file from a form post.
func formUpload(c echo.Context) *service.Upload {
	fh, err := c.FormFile("image")
	if err != nil || fh.Filename == "" {
		return nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil
	}
	return &service.Upload{Filename: fh.Filename, Content: f}
}
