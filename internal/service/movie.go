package service

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ambrose/movie-catalog/internal/model"
	"github.com/ambrose/movie-catalog/internal/queue"
	"github.com/ambrose/movie-catalog/internal/repository"
	"github.com/ambrose/movie-catalog/internal/storage"
	"github.com/ambrose/movie-catalog/internal/utils"
)

// MovieStore is the persistence surface the movie service depends on.
// *repository.MovieRepo satisfies it; tests supply fakes.
type MovieStore interface {
	Create(ctx context.Context, m *model.Movie) error
	GetByID(ctx context.Context, id int64) (*model.Movie, error)
	List(ctx context.Context, ownerID string, limit, offset int) ([]model.Movie, error)
	Count(ctx context.Context, ownerID string) (int, error)
	Update(ctx context.Context, id int64, p repository.MoviePatch) error
	Delete(ctx context.Context, id int64) error
}

// PublishFunc pushes a movie event to the broker. It may be nil (events
// disabled) and its error is ignored; publishing must never fail a
// request.
type PublishFunc func(ctx context.Context, ev queue.MovieEvent) error

// Upload is an image file attached to a create or update request.
type Upload struct {
	Filename string
	Content  io.Reader
}

// Pagination describes one page of a movie listing.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// MovieService enforces validation and per-user ownership around the
// movie repository.
type MovieService struct {
	movies  MovieStore
	images  storage.ImageStore
	publish PublishFunc
}

func NewMovieService(movies MovieStore, images storage.ImageStore, publish PublishFunc) *MovieService {
	return &MovieService{movies: movies, images: images, publish: publish}
}

// CreateMovieInput carries the submitted movie fields. Optional fields
// default to empty strings; CatalogID defaults to a fresh UUID.
type CreateMovieInput struct {
	CatalogID   string `json:"catalog_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Runtime     string `json:"runtime"`
	ReleaseDate string `json:"release_date"`
	Genres      string `json:"genres"`
	Cast        string `json:"cast"`
	Director    string `json:"director"`
	Producer    string `json:"producer"`
	Keywords    string `json:"keywords"`
	VideoLink   string `json:"video_link"`
	Image       *Upload `json:"-"`
}

// Create validates the input, stores an uploaded cover image when
// present and persists a movie owned by ownerID. A movie.created event
// is published on success (failures to publish are ignored).
func (s *MovieService) Create(ctx context.Context, in CreateMovieInput, ownerID string) (*model.Movie, error) {
	missing := utils.MissingFields(
		utils.Field{Name: "title", Value: in.Title},
		utils.Field{Name: "description", Value: in.Description},
		utils.Field{Name: "runtime", Value: in.Runtime},
		utils.Field{Name: "release_date", Value: in.ReleaseDate},
	)
	if len(missing) > 0 {
		return nil, NewMissingFieldsError(missing)
	}
	if in.CatalogID == "" {
		in.CatalogID = uuid.NewString()
	}

	imageName := ""
	if in.Image != nil && in.Image.Filename != "" {
		name, err := s.images.Save(ctx, in.Image.Filename, in.Image.Content)
		if err != nil {
			log.Printf("movies: image save failed: %v", err)
			return nil, ErrPersistence
		}
		imageName = name
	}

	m := &model.Movie{
		UserID:      ownerID,
		CatalogID:   in.CatalogID,
		Title:       in.Title,
		Description: in.Description,
		Runtime:     in.Runtime,
		ReleaseDate: in.ReleaseDate,
		Genres:      in.Genres,
		Cast:        in.Cast,
		Director:    in.Director,
		Producer:    in.Producer,
		Keywords:    in.Keywords,
		Images:      imageName,
		VideoLink:   in.VideoLink,
	}
	if err := s.movies.Create(ctx, m); err != nil {
		return nil, ErrPersistence
	}
	s.emit(ctx, "created", m)
	return m, nil
}

// List returns one page of movies in insertion order, optionally
// restricted to a single owner, along with pagination metadata.
func (s *MovieService) List(ctx context.Context, ownerID string, page, limit int) ([]model.Movie, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	movies, err := s.movies.List(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, Pagination{}, ErrPersistence
	}
	total, err := s.movies.Count(ctx, ownerID)
	if err != nil {
		return nil, Pagination{}, ErrPersistence
	}
	pg := Pagination{Page: page, Limit: limit, Total: total}
	if total > 0 {
		pg.TotalPages = (total + limit - 1) / limit
	}
	return movies, pg, nil
}

// Get returns one movie or ErrNotFound.
func (s *MovieService) Get(ctx context.Context, id int64) (*model.Movie, error) {
	m, err := s.movies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrPersistence
	}
	return m, nil
}

// Update merges the whitelisted non-empty patch fields into the movie
// after checking that requesterID owns it. An optional new cover image
// replaces the stored one. Failure modes: ErrNotFound, ErrAccessDenied,
// ErrNoUpdateFields, ErrPersistence.
func (s *MovieService) Update(ctx context.Context, id int64, patch repository.MoviePatch, image *Upload, requesterID string) error {
	existing, err := s.movies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return ErrNotFound
		}
		return ErrPersistence
	}
	if existing.UserID != requesterID {
		return ErrAccessDenied
	}

	dropEmpty(&patch)
	if image != nil && image.Filename != "" {
		name, err := s.images.Save(ctx, image.Filename, image.Content)
		if err != nil {
			log.Printf("movies: image save failed: %v", err)
			return ErrPersistence
		}
		patch.Images = &name
	}
	if patch.IsEmpty() {
		return ErrNoUpdateFields
	}

	if err := s.movies.Update(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return ErrNotFound
		}
		return ErrPersistence
	}
	return nil
}

// Delete removes a movie after the same ownership check as Update and
// publishes a movie.deleted event.
func (s *MovieService) Delete(ctx context.Context, id int64, requesterID string) error {
	existing, err := s.movies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return ErrNotFound
		}
		return ErrPersistence
	}
	if existing.UserID != requesterID {
		return ErrAccessDenied
	}
	if err := s.movies.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return ErrNotFound
		}
		return ErrPersistence
	}
	s.emit(ctx, "deleted", existing)
	return nil
}

// Dashboard returns all movies belonging to ownerID together with the
// total count.
func (s *MovieService) Dashboard(ctx context.Context, ownerID string) ([]model.Movie, int, error) {
	movies, err := s.movies.List(ctx, ownerID, 0, 0)
	if err != nil {
		return nil, 0, ErrPersistence
	}
	total, err := s.movies.Count(ctx, ownerID)
	if err != nil {
		return nil, 0, ErrPersistence
	}
	return movies, total, nil
}

func (s *MovieService) emit(ctx context.Context, action string, m *model.Movie) {
	if s.publish == nil {
		return
	}
	_ = s.publish(ctx, queue.MovieEvent{
		Action:     action,
		MovieID:    m.MovieID,
		UserID:     m.UserID,
		CatalogID:  m.CatalogID,
		Title:      m.Title,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// dropEmpty clears pointers whose values trim to the empty string, so a
// submitted-but-blank field never overwrites stored data.
func dropEmpty(p *repository.MoviePatch) {
	clear := func(v **string) {
		if *v != nil && strings.TrimSpace(**v) == "" {
			*v = nil
		}
	}
	clear(&p.Title)
	clear(&p.Description)
	clear(&p.Runtime)
	clear(&p.ReleaseDate)
	clear(&p.Genres)
	clear(&p.Cast)
	clear(&p.Director)
	clear(&p.Producer)
	clear(&p.Keywords)
	clear(&p.VideoLink)
}
