package models

// Movie represents a movie record held in the in-memory catalog.
type Movie struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Genre     []string `json:"genre"`
	Year      int      `json:"year"`
	Director  string   `json:"director"`
	Duration  int      `json:"duration"`
	Poster    string   `json:"poster"`
	Rate      float64  `json:"rate"`
	CreatedAt string   `json:"createdAt"`
}

// MovieInput is the validated payload of a create request. The server
// assigns ID and CreatedAt itself; client-supplied values for those two
// fields are never trusted.
type MovieInput struct {
	Title    string
	Genre    []string
	Year     int
	Director string
	Duration int
	Poster   string
	Rate     float64
}

// MovieUpdate is the validated payload of a partial update. Nil fields
// were absent from the request and leave the stored value unchanged.
type MovieUpdate struct {
	Title    *string
	Genre    []string
	Year     *int
	Director *string
	Duration *int
	Poster   *string
	Rate     *float64
}

// Genres is the closed set of accepted genre labels, matched case-sensitively.
var Genres = []string{
	"Action",
	"Comedy",
	"Crime",
	"Drama",
	"Horror",
	"Adventure",
	"Fantasy",
	"Thriller",
	"Sci-Fi",
	"Mystery",
	"Romance",
	"Animation",
	"Documentary",
	"Musical",
	"Western",
}

// ValidGenres indexes Genres for membership checks.
var ValidGenres = func() map[string]bool {
	m := make(map[string]bool, len(Genres))
	for _, g := range Genres {
		m[g] = true
	}
	return m
}()
