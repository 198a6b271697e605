package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/VinaySai005/SkillSwap-dt/internal/model"
	"github.com/VinaySai005/SkillSwap-dt/internal/service"
	"github.com/VinaySai005/SkillSwap-dt/internal/store"
)

type SkillHandler struct {
	skillService service.SkillService
	validate     *validator.Validate
}

func NewSkillHandler(skillService service.SkillService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
		validate:     validator.New(),
	}
}

type CreateSkillRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=100"`
	Description string   `json:"description" validate:"required,max=500"`
	Level       string   `json:"level" validate:"required,oneof=Beginner Intermediate Expert"`
	IsOnline    bool     `json:"is_online"`
	Location    *string  `json:"location,omitempty"`
	Tags        []string `json:"tags"`
}

type UpdateSkillRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	Level       *string  `json:"level,omitempty" validate:"omitempty,oneof=Beginner Intermediate Expert"`
	IsOnline    *bool    `json:"is_online,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func (h *SkillHandler) CreateSkill(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	var req CreateSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	skill, err := h.skillService.CreateSkill(c.Context(), store.CreateSkill{
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
		Level:       model.SkillLevel(req.Level),
		IsOnline:    req.IsOnline,
		Location:    req.Location,
		Tags:        req.Tags,
	})
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(skill)
}

func (h *SkillHandler) GetSkillByID(c *fiber.Ctx) error {
	skill, err := h.skillService.GetSkillByID(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(skill)
}

func (h *SkillHandler) ListAllSkills(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.skillService.ListAllSkills(c.Context()))
}

func (h *SkillHandler) ListSkillsByUser(c *fiber.Ctx) error {
	skills := h.skillService.ListSkillsByOwner(c.Context(), c.Params("id"))
	if skills == nil {
		skills = []model.Skill{}
	}
	return c.Status(fiber.StatusOK).JSON(skills)
}

func (h *SkillHandler) UpdateSkill(c *fiber.Ctx) error {
	var req UpdateSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	upd := store.SkillUpdate{
		Title:       req.Title,
		Description: req.Description,
		IsOnline:    req.IsOnline,
		Location:    req.Location,
		Tags:        req.Tags,
	}
	if req.Level != nil {
		level := model.SkillLevel(*req.Level)
		upd.Level = &level
	}

	skill, err := h.skillService.UpdateSkill(c.Context(), c.Params("id"), upd)
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(skill)
}

func (h *SkillHandler) DeleteSkill(c *fiber.Ctx) error {
	if err := h.skillService.DeleteSkill(c.Context(), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
