package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"movie-catalog-service/internal/middleware"
	"movie-catalog-service/internal/service"
	"movie-catalog-service/internal/store"
	"movie-catalog-service/internal/validation"
)

// MovieHandler handles HTTP requests for the movie catalog.
type MovieHandler struct {
	svc  *service.MovieService
	cors *middleware.CORSGate
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(svc *service.MovieService, cors *middleware.CORSGate) *MovieHandler {
	return &MovieHandler{svc: svc, cors: cors}
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries the full issue list of a failed
// schema validation.
type ValidationErrorResponse struct {
	Error []validation.Issue `json:"error"`
}

// MessageResponse is the body of not-found and deletion responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListMovies returns all movies, optionally filtered by genre.
func (h *MovieHandler) ListMovies(c fiber.Ctx) error {
	h.cors.Echo(c)
	return c.JSON(h.svc.List(c.Query("genre")))
}

// GetMovie returns a single movie by id.
func (h *MovieHandler) GetMovie(c fiber.Ctx) error {
	movie, err := h.svc.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(MessageResponse{Message: "Movie not found"})
		}
		return err
	}
	return c.JSON(movie)
}

// CreateMovie validates the request body in full mode and inserts the movie.
func (h *MovieHandler) CreateMovie(c fiber.Ctx) error {
	var raw map[string]any
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	input, issues := validation.ValidateMovie(raw)
	if issues != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ValidationErrorResponse{Error: issues})
	}

	return c.Status(fiber.StatusCreated).JSON(h.svc.Create(*input))
}

// UpdateMovie validates the request body in partial mode and merges it over
// the stored record. Fields absent from the body keep their prior values.
func (h *MovieHandler) UpdateMovie(c fiber.Ctx) error {
	var raw map[string]any
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	update, issues := validation.ValidatePartialMovie(raw)
	if issues != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ValidationErrorResponse{Error: issues})
	}

	movie, err := h.svc.Update(c.Params("id"), *update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(MessageResponse{Message: "Movie not found"})
		}
		return err
	}
	return c.JSON(movie)
}

// DeleteMovie removes a movie by id.
func (h *MovieHandler) DeleteMovie(c fiber.Ctx) error {
	h.cors.Echo(c)

	if err := h.svc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(MessageResponse{Message: "Movie not found"})
		}
		return err
	}
	return c.JSON(MessageResponse{Message: "Movie deleted"})
}

// Preflight answers the OPTIONS probe browsers send before PATCH/DELETE.
func (h *MovieHandler) Preflight(c fiber.Ctx) error {
	return h.cors.Preflight(c)
}

// NotFound is the catch-all for unmatched routes.
func (h *MovieHandler) NotFound(c fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).SendString("Not Found")
}
