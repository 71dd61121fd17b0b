package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"movie-catalog-service/internal/models"
	"movie-catalog-service/internal/store"
)

const (
	listCacheTTL   = 1 * time.Minute
	detailCacheTTL = 5 * time.Minute
)

// MovieService fronts the in-memory store with an optional fail-open Redis
// read cache. The store stays the source of truth; a nil Redis client
// disables caching without changing behavior.
type MovieService struct {
	store *store.MovieStore
	redis *redis.Client
}

// NewMovieService creates a new MovieService.
func NewMovieService(st *store.MovieStore, rdb *redis.Client) *MovieService {
	return &MovieService{store: st, redis: rdb}
}

// List returns movies, filtered by genre when one is given.
func (s *MovieService) List(genre string) []models.Movie {
	cacheKey := "movies:list:" + strings.ToLower(genre)

	if cached, err := s.getFromCache(cacheKey); err == nil {
		var movies []models.Movie
		if json.Unmarshal([]byte(cached), &movies) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return movies
		}
	}

	movies := s.store.List(genre)

	if data, err := json.Marshal(movies); err == nil {
		s.setCache(cacheKey, string(data), listCacheTTL)
	}
	return movies
}

// Get returns the movie with the given id.
func (s *MovieService) Get(id string) (models.Movie, error) {
	cacheKey := "movies:detail:" + id

	if cached, err := s.getFromCache(cacheKey); err == nil {
		var movie models.Movie
		if json.Unmarshal([]byte(cached), &movie) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return movie, nil
		}
	}

	movie, err := s.store.GetByID(id)
	if err != nil {
		return models.Movie{}, err
	}

	if data, err := json.Marshal(movie); err == nil {
		s.setCache(cacheKey, string(data), detailCacheTTL)
	}
	return movie, nil
}

// Create inserts a validated movie and returns the stored record.
func (s *MovieService) Create(in models.MovieInput) models.Movie {
	movie := s.store.Insert(in)
	s.invalidateCache()
	return movie
}

// Update merges a validated partial payload over the stored record.
func (s *MovieService) Update(id string, up models.MovieUpdate) (models.Movie, error) {
	movie, err := s.store.UpdateByID(id, up)
	if err != nil {
		return models.Movie{}, err
	}
	s.invalidateCache()
	return movie, nil
}

// Delete removes the movie with the given id.
func (s *MovieService) Delete(id string) error {
	if err := s.store.DeleteByID(id); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

// ---- Redis Helpers ----

func (s *MovieService) getFromCache(key string) (string, error) {
	if s.redis == nil {
		return "", fmt.Errorf("redis not available")
	}
	return s.redis.Get(context.Background(), key).Result()
}

func (s *MovieService) setCache(key, value string, ttl time.Duration) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(context.Background(), key, value, ttl).Err(); err != nil {
		slog.Error("failed to set cache", "key", key, "error", err)
	}
}

func (s *MovieService) invalidateCache() {
	if s.redis == nil {
		return
	}
	ctx := context.Background()
	iter := s.redis.Scan(ctx, 0, "movies:*", 0).Iterator()
	for iter.Next(ctx) {
		s.redis.Del(ctx, iter.Val())
	}
}
