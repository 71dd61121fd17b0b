// Package store owns the in-memory movie collection. The collection is
// ordered (insertion order, oldest first) and is the single source of truth
// for the service; it is seeded once at startup and never persisted back.
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"movie-catalog-service/internal/models"
)

// ErrNotFound is returned when no movie matches the requested id.
var ErrNotFound = errors.New("movie not found")

// MovieStore guards the shared collection with an RWMutex so every
// operation is atomic with respect to concurrently served requests.
type MovieStore struct {
	mu     sync.RWMutex
	movies []models.Movie
}

// NewMovieStore constructs a store holding the given seed records.
func NewMovieStore(seed []models.Movie) *MovieStore {
	movies := make([]models.Movie, len(seed))
	copy(movies, seed)
	return &MovieStore{movies: movies}
}

// List returns the movies in insertion order. When genre is non-empty only
// movies with at least one genre entry matching it case-insensitively are
// returned. The result is always non-nil so it serializes as a JSON array.
func (s *MovieStore) List(genre string) []models.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		if genre == "" || hasGenre(m, genre) {
			out = append(out, m)
		}
	}
	return out
}

// GetByID returns a copy of the movie with the given id.
func (s *MovieStore) GetByID(id string) (models.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Movie{}, ErrNotFound
}

// Insert assigns a fresh id and creation timestamp to the validated input,
// appends the record to the end of the collection and returns it.
func (s *MovieStore) Insert(in models.MovieInput) models.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()

	movie := models.Movie{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Genre:     in.Genre,
		Year:      in.Year,
		Director:  in.Director,
		Duration:  in.Duration,
		Poster:    in.Poster,
		Rate:      in.Rate,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	s.movies = append(s.movies, movie)
	return movie
}

// UpdateByID overwrites the fields present in the update onto the stored
// record, in place. ID, CreatedAt and the record's position are preserved.
func (s *MovieStore) UpdateByID(id string, up models.MovieUpdate) (models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.movies {
		if s.movies[i].ID != id {
			continue
		}
		m := &s.movies[i]
		if up.Title != nil {
			m.Title = *up.Title
		}
		if up.Genre != nil {
			m.Genre = up.Genre
		}
		if up.Year != nil {
			m.Year = *up.Year
		}
		if up.Director != nil {
			m.Director = *up.Director
		}
		if up.Duration != nil {
			m.Duration = *up.Duration
		}
		if up.Poster != nil {
			m.Poster = *up.Poster
		}
		if up.Rate != nil {
			m.Rate = *up.Rate
		}
		return *m, nil
	}
	return models.Movie{}, ErrNotFound
}

// DeleteByID removes the movie with the given id from the collection.
func (s *MovieStore) DeleteByID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.movies {
		if s.movies[i].ID == id {
			s.movies = append(s.movies[:i], s.movies[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Len reports the current collection size.
func (s *MovieStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.movies)
}

func hasGenre(m models.Movie, genre string) bool {
	for _, g := range m.Genre {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}
