package model

import "time"

// Lookup-style entities. They are curated independently of movies; the
// movie rows keep denormalized text copies instead of foreign keys.

// Actor is a row in the `actors` table.
type Actor struct {
	ActorID     int64      `json:"actor_id"`
	Name        string     `json:"name"`
	Birthdate   *time.Time `json:"birthdate,omitempty"`
	Gender      string     `json:"gender"`
	Nationality string     `json:"nationality"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Director is a row in the `directors` table.
type Director struct {
	DirectorID  int64      `json:"director_id"`
	Name        string     `json:"name"`
	Birthdate   *time.Time `json:"birthdate,omitempty"`
	Nationality string     `json:"nationality"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Genre is a row in the `genres` table. Names are unique.
type Genre struct {
	GenreID   int64     `json:"genre_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Catalog is a row in the `catalog` table mapping an opaque catalog_id
// to a display name. Movie rows carry catalog_id values that are not
// validated against this table.
type Catalog struct {
	ID        int64     `json:"id"`
	CatalogID string    `json:"catalog_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
