// Package validation checks candidate movie payloads against the catalog
// schema. It operates on generically decoded JSON so that a wrongly typed
// field is reported as a schema issue instead of failing the whole decode,
// and so that an absent field can be told apart from a zero value.
package validation

import (
	"fmt"
	"math"
	"net/url"
	"time"

	"movie-catalog-service/internal/models"
)

// Issue describes a single schema violation. Path locates the offending
// field; for array elements it includes the index.
type Issue struct {
	Path    []any  `json:"path"`
	Message string `json:"message"`
}

// MinYear is the earliest accepted release year. The upper bound is the
// current calendar year plus one, evaluated at validation time.
const MinYear = 1900

func maxYear() int {
	return time.Now().Year() + 1
}

// ValidateMovie validates a create payload. Every field is required except
// rate, which defaults to 5 when absent. All violations are collected and
// returned together; the input is valid only when the issue list is empty.
func ValidateMovie(raw map[string]any) (*models.MovieInput, []Issue) {
	var issues []Issue
	in := &models.MovieInput{Rate: 5}

	if v, ok := raw["title"]; !ok {
		issues = append(issues, Issue{Path: []any{"title"}, Message: "Title is required"})
	} else if s, ok := v.(string); !ok {
		issues = append(issues, Issue{Path: []any{"title"}, Message: "Title must be a string"})
	} else {
		in.Title = s
	}

	if v, ok := raw["genre"]; !ok {
		issues = append(issues, Issue{Path: []any{"genre"}, Message: "Genre is required"})
	} else {
		genre, genreIssues := checkGenre(v)
		issues = append(issues, genreIssues...)
		in.Genre = genre
	}

	if v, ok := raw["year"]; !ok {
		issues = append(issues, Issue{Path: []any{"year"}, Message: "Year is required"})
	} else if year, issue := checkYear(v); issue != nil {
		issues = append(issues, *issue)
	} else {
		in.Year = year
	}

	if v, ok := raw["director"]; !ok {
		issues = append(issues, Issue{Path: []any{"director"}, Message: "Director is required"})
	} else if s, ok := v.(string); !ok {
		issues = append(issues, Issue{Path: []any{"director"}, Message: "Director must be a string"})
	} else {
		in.Director = s
	}

	if v, ok := raw["duration"]; !ok {
		issues = append(issues, Issue{Path: []any{"duration"}, Message: "Duration is required"})
	} else if d, issue := checkDuration(v); issue != nil {
		issues = append(issues, *issue)
	} else {
		in.Duration = d
	}

	if v, ok := raw["poster"]; !ok {
		issues = append(issues, Issue{Path: []any{"poster"}, Message: "Poster is required"})
	} else if p, issue := checkPoster(v); issue != nil {
		issues = append(issues, *issue)
	} else {
		in.Poster = p
	}

	if v, ok := raw["rate"]; ok {
		if r, issue := checkRate(v); issue != nil {
			issues = append(issues, *issue)
		} else {
			in.Rate = r
		}
	}

	if len(issues) > 0 {
		return nil, issues
	}
	return in, nil
}

// ValidatePartialMovie validates an update payload. Every field is optional,
// but a present field must satisfy the same rule as in ValidateMovie. Absent
// fields are left nil on the result and are never defaulted.
func ValidatePartialMovie(raw map[string]any) (*models.MovieUpdate, []Issue) {
	var issues []Issue
	up := &models.MovieUpdate{}

	if v, ok := raw["title"]; ok {
		if s, ok := v.(string); !ok {
			issues = append(issues, Issue{Path: []any{"title"}, Message: "Title must be a string"})
		} else {
			up.Title = &s
		}
	}

	if v, ok := raw["genre"]; ok {
		genre, genreIssues := checkGenre(v)
		issues = append(issues, genreIssues...)
		up.Genre = genre
	}

	if v, ok := raw["year"]; ok {
		if year, issue := checkYear(v); issue != nil {
			issues = append(issues, *issue)
		} else {
			up.Year = &year
		}
	}

	if v, ok := raw["director"]; ok {
		if s, ok := v.(string); !ok {
			issues = append(issues, Issue{Path: []any{"director"}, Message: "Director must be a string"})
		} else {
			up.Director = &s
		}
	}

	if v, ok := raw["duration"]; ok {
		if d, issue := checkDuration(v); issue != nil {
			issues = append(issues, *issue)
		} else {
			up.Duration = &d
		}
	}

	if v, ok := raw["poster"]; ok {
		if p, issue := checkPoster(v); issue != nil {
			issues = append(issues, *issue)
		} else {
			up.Poster = &p
		}
	}

	if v, ok := raw["rate"]; ok {
		if r, issue := checkRate(v); issue != nil {
			issues = append(issues, *issue)
		} else {
			up.Rate = &r
		}
	}

	if len(issues) > 0 {
		return nil, issues
	}
	return up, nil
}

func checkGenre(v any) ([]string, []Issue) {
	arr, ok := v.([]any)
	if !ok {
		return nil, []Issue{{Path: []any{"genre"}, Message: "Genre must be an array of enum Genre"}}
	}
	if len(arr) == 0 {
		return nil, []Issue{{Path: []any{"genre"}, Message: "Genre must not be empty"}}
	}

	var issues []Issue
	genre := make([]string, 0, len(arr))
	for i, el := range arr {
		s, ok := el.(string)
		if !ok || !models.ValidGenres[s] {
			issues = append(issues, Issue{
				Path:    []any{"genre", i},
				Message: fmt.Sprintf("Invalid genre, expected one of %v", models.Genres),
			})
			continue
		}
		genre = append(genre, s)
	}
	if len(issues) > 0 {
		return nil, issues
	}
	return genre, nil
}

func checkYear(v any) (int, *Issue) {
	year, ok := asInt(v)
	if !ok {
		return 0, &Issue{Path: []any{"year"}, Message: "Year must be an integer"}
	}
	if year < MinYear || year > maxYear() {
		return 0, &Issue{
			Path:    []any{"year"},
			Message: fmt.Sprintf("Year must be between %d and %d", MinYear, maxYear()),
		}
	}
	return year, nil
}

func checkDuration(v any) (int, *Issue) {
	d, ok := asInt(v)
	if !ok || d <= 0 {
		return 0, &Issue{Path: []any{"duration"}, Message: "Duration must be a positive integer"}
	}
	return d, nil
}

func checkPoster(v any) (string, *Issue) {
	s, ok := v.(string)
	if !ok {
		return "", &Issue{Path: []any{"poster"}, Message: "Poster must be a string"}
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", &Issue{Path: []any{"poster"}, Message: "Poster must be a valid URL"}
	}
	return s, nil
}

func checkRate(v any) (float64, *Issue) {
	r, ok := v.(float64)
	if !ok {
		return 0, &Issue{Path: []any{"rate"}, Message: "Rate must be a number"}
	}
	if r < 0 || r > 10 {
		return 0, &Issue{Path: []any{"rate"}, Message: "Rate must be between 0 and 10"}
	}
	return r, nil
}

// asInt accepts the float64 that encoding/json produces for JSON numbers
// and requires it to carry an integral value.
func asInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || math.Trunc(f) != f {
		return 0, false
	}
	return int(f), true
}
