package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/VinaySai005/SkillSwap-dt/internal/model"
	"github.com/VinaySai005/SkillSwap-dt/internal/service"
	"github.com/VinaySai005/SkillSwap-dt/internal/store"
)

type SessionHandler struct {
	sessionService service.SessionService
	validate       *validator.Validate
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		validate:       validator.New(),
	}
}

type BookSessionRequest struct {
	TeacherID string    `json:"teacher_id" validate:"required"`
	SkillID   string    `json:"skill_id" validate:"required"`
	Date      time.Time `json:"date" validate:"required"`
	StartTime string    `json:"start_time" validate:"required"`
	EndTime   string    `json:"end_time" validate:"required"`
}

type UpdateSessionRequest struct {
	Date      *time.Time `json:"date,omitempty"`
	StartTime *string    `json:"start_time,omitempty"`
	EndTime   *string    `json:"end_time,omitempty"`
	Status    *string    `json:"status,omitempty" validate:"omitempty,oneof=Pending Confirmed Completed Cancelled"`
}

// BookSession books the caller as the student of the requested teacher.
func (h *SessionHandler) BookSession(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	var req BookSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	session, err := h.sessionService.BookSession(c.Context(), store.CreateSession{
		TeacherID: req.TeacherID,
		StudentID: userID,
		SkillID:   req.SkillID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *SessionHandler) GetSessionByID(c *fiber.Ctx) error {
	session, err := h.sessionService.GetSessionByID(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(session)
}

func (h *SessionHandler) ListMySessions(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	sessions := h.sessionService.ListSessionsForUser(c.Context(), userID)
	if sessions == nil {
		sessions = []model.Session{}
	}
	return c.Status(fiber.StatusOK).JSON(sessions)
}

func (h *SessionHandler) UpdateSession(c *fiber.Ctx) error {
	var req UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	upd := store.SessionUpdate{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if req.Status != nil {
		status := model.SessionStatus(*req.Status)
		upd.Status = &status
	}

	session, err := h.sessionService.UpdateSession(c.Context(), c.Params("id"), upd)
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(session)
}
