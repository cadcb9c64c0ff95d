package model

import "time"

// Movie represents a catalog entry owned by a single user. Genres, cast,
// director, producer and keywords are free-text strings following a
// comma-separated convention; they are not joined against the lookup
// tables. Runtime and ReleaseDate are string-typed on purpose (the
// canonical schema keeps them as free text).
type Movie struct {
	MovieID     int64     `json:"movie_id"`     // movies.movie_id
	UserID      string    `json:"user_id"`      // movies.user_id (owner)
	CatalogID   string    `json:"catalog_id"`   // opaque grouping token
	Title       string    `json:"title"`        // movies.title
	Description string    `json:"description"`  // movies.description
	Runtime     string    `json:"runtime"`      // movies.runtime
	ReleaseDate string    `json:"release_date"` // movies.release_date
	Genres      string    `json:"genres"`       // comma-separated free text
	Cast        string    `json:"cast"`         // comma-separated free text
	Director    string    `json:"director"`     // movies.director
	Producer    string    `json:"producer"`     // movies.producer
	Keywords    string    `json:"keywords"`     // movies.keywords
	Images      string    `json:"images"`       // stored cover image filename
	VideoLink   string    `json:"video_link"`   // external trailer link
	CreatedAt   time.Time `json:"created_at"`   // movies.created_at
}
