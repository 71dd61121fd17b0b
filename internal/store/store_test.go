package store

import (
	"testing"
	"time"

	"movie-catalog-service/internal/models"
)

func seedMovies() []models.Movie {
	return []models.Movie{
		{
			ID:        "a1",
			Title:     "X",
			Genre:     []string{"Action"},
			Year:      2000,
			Director:  "D",
			Duration:  100,
			Poster:    "http://x/p.png",
			Rate:      5,
			CreatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID:        "b2",
			Title:     "Y",
			Genre:     []string{"Comedy", "Drama"},
			Year:      2010,
			Director:  "E",
			Duration:  90,
			Poster:    "http://x/q.png",
			Rate:      7,
			CreatedAt: "2024-01-02T00:00:00Z",
		},
	}
}

func sampleInput() models.MovieInput {
	return models.MovieInput{
		Title:    "Z",
		Genre:    []string{"Horror"},
		Year:     2020,
		Director: "F",
		Duration: 110,
		Poster:   "http://x/r.png",
		Rate:     5,
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := NewMovieStore(seedMovies())

	movies := s.List("")
	if len(movies) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(movies))
	}
	if movies[0].ID != "a1" || movies[1].ID != "b2" {
		t.Fatalf("unexpected order: %v, %v", movies[0].ID, movies[1].ID)
	}
}

func TestListGenreFilterIsCaseInsensitive(t *testing.T) {
	s := NewMovieStore(seedMovies())

	movies := s.List("comedy")
	if len(movies) != 1 || movies[0].ID != "b2" {
		t.Fatalf("expected only b2, got %v", movies)
	}
	if movies := s.List("western"); len(movies) != 0 {
		t.Fatalf("expected no match, got %v", movies)
	}
}

func TestGetByID(t *testing.T) {
	s := NewMovieStore(seedMovies())

	m, err := s.GetByID("a1")
	if err != nil || m.Title != "X" {
		t.Fatalf("expected movie a1, got %v (%v)", m, err)
	}
	if _, err := s.GetByID("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInsertAssignsFreshIdentity(t *testing.T) {
	s := NewMovieStore(seedMovies())
	before := time.Now().UTC().Truncate(time.Second)

	first := s.Insert(sampleInput())
	second := s.Insert(sampleInput())

	if first.ID == "" || first.ID == second.ID || first.ID == "a1" {
		t.Fatalf("expected fresh unique ids, got %q and %q", first.ID, second.ID)
	}
	created, err := time.Parse(time.RFC3339, first.CreatedAt)
	if err != nil {
		t.Fatalf("createdAt is not RFC3339: %v", err)
	}
	if created.Before(before) {
		t.Fatalf("createdAt %v earlier than request time %v", created, before)
	}
	if s.Len() != 4 {
		t.Fatalf("expected 4 movies, got %d", s.Len())
	}
	// New records go to the end of the collection.
	movies := s.List("")
	if movies[2].ID != first.ID || movies[3].ID != second.ID {
		t.Fatalf("expected inserts appended in order")
	}
}

func TestUpdateByIDTouchesOnlyPresentFields(t *testing.T) {
	s := NewMovieStore(seedMovies())

	title := "Renamed"
	rate := 9.5
	updated, err := s.UpdateByID("a1", models.MovieUpdate{Title: &title, Rate: &rate})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "Renamed" || updated.Rate != 9.5 {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.ID != "a1" || updated.CreatedAt != "2024-01-01T00:00:00Z" {
		t.Fatalf("id or createdAt changed: %+v", updated)
	}
	if updated.Year != 2000 || updated.Director != "D" {
		t.Fatalf("absent fields were modified: %+v", updated)
	}
	// Position is preserved.
	if movies := s.List(""); movies[0].ID != "a1" {
		t.Fatalf("updated record moved: %v", movies)
	}
}

func TestUpdateByIDNotFound(t *testing.T) {
	s := NewMovieStore(seedMovies())
	if _, err := s.UpdateByID("missing", models.MovieUpdate{}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteByIDTwice(t *testing.T) {
	s := NewMovieStore(seedMovies())

	if err := s.DeleteByID("a1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected collection to shrink by one, got %d", s.Len())
	}
	if err := s.DeleteByID("a1"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
