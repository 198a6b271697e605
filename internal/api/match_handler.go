package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/VinaySai005/SkillSwap-dt/internal/match"
)

type MatchHandler struct {
	engine *match.Engine
}

func NewMatchHandler(engine *match.Engine) *MatchHandler {
	return &MatchHandler{engine: engine}
}

// GetMatches returns compatibility matches for the caller, best first.
func (h *MatchHandler) GetMatches(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	matches, err := h.engine.MatchesFor(userID)
	if err != nil {
		return storeError(c, err)
	}
	if matches == nil {
		matches = []match.Match{}
	}
	return c.Status(fiber.StatusOK).JSON(matches)
}
