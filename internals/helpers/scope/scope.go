// file: internals/helpers/scope/scope.go
package scope

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the auth middleware.
const (
	LocSchoolID = "school_id"
	LocUserID   = "user_id"
)

// Scope is the explicit per-request tenancy context. It is extracted once at
// the route boundary and passed by value into services; no package-level
// session state exists.
type Scope struct {
	SchoolID uuid.UUID
	UserID   uuid.UUID
}

// FromFiber reads the scope locals set by the JWT middleware.
func FromFiber(c *fiber.Ctx) (Scope, error) {
	var s Scope

	sid, err := localUUID(c, LocSchoolID)
	if err != nil {
		return s, fiber.NewError(fiber.StatusUnauthorized, "school scope missing from token")
	}
	s.SchoolID = sid

	// user_id is informational; tolerate its absence.
	if uid, err := localUUID(c, LocUserID); err == nil {
		s.UserID = uid
	}
	return s, nil
}

func localUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" missing")
	}
	return uuid.Parse(strings.TrimSpace(s))
}
