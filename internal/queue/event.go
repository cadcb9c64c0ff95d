package queue

// MovieEvent is published to the movie.events queue when a catalog entry
// is created or deleted. It carries enough information for downstream
// consumers to log or trigger analytics without querying the primary
// database.
type MovieEvent struct {
	Action     string `json:"action"` // "created" | "deleted"
	MovieID    int64  `json:"movie_id"`
	UserID     string `json:"user_id"`
	CatalogID  string `json:"catalog_id"`
	Title      string `json:"title"`
	OccurredAt string `json:"occurred_at"`
}
