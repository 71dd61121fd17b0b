// Package middleware holds the cross-origin gate applied to catalog routes.
package middleware

import (
	"github.com/gofiber/fiber/v3"
)

const allowedMethods = "GET, POST, PATCH, DELETE"

// CORSGate decides whether a response may be exposed to the origin a
// browser declares on a cross-origin request.
type CORSGate struct {
	allowed map[string]bool
}

// NewCORSGate builds a gate from the configured origin allowlist.
func NewCORSGate(origins []string) *CORSGate {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return &CORSGate{allowed: allowed}
}

// Allowed reports whether a request carrying the given Origin header value
// may access the response. An absent origin (same-origin or non-browser
// client) is always allowed.
func (g *CORSGate) Allowed(origin string) bool {
	return origin == "" || g.allowed[origin]
}

// Echo reflects the request origin in Access-Control-Allow-Origin when the
// origin is allowed. A denied origin gets no header at all; the handler
// still runs and the browser withholds the response on its side.
func (g *CORSGate) Echo(c fiber.Ctx) {
	origin := c.Get("Origin")
	if origin != "" && g.allowed[origin] {
		c.Set("Access-Control-Allow-Origin", origin)
	}
}

// Preflight answers an OPTIONS probe for the non-simple verbs. Allowed
// origins get 200 with the origin echo and the permitted method list,
// denied origins get a bare 400. Both responses have an empty body.
func (g *CORSGate) Preflight(c fiber.Ctx) error {
	origin := c.Get("Origin")
	if !g.Allowed(origin) {
		return c.Status(fiber.StatusBadRequest).Send(nil)
	}
	if origin != "" {
		c.Set("Access-Control-Allow-Origin", origin)
	}
	c.Set("Access-Control-Allow-Methods", allowedMethods)
	return c.Status(fiber.StatusOK).Send(nil)
}
