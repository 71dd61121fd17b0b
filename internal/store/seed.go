package store

import (
	"encoding/json"
	"fmt"
	"os"

	"movie-catalog-service/internal/models"
)

// LoadSeed reads the initial movie dataset from a JSON file. The file holds
// a plain array of movie records, ids and timestamps included.
func LoadSeed(path string) ([]models.Movie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var movies []models.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return movies, nil
}
