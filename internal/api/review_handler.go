package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/VinaySai005/SkillSwap-dt/internal/model"
	"github.com/VinaySai005/SkillSwap-dt/internal/service"
	"github.com/VinaySai005/SkillSwap-dt/internal/store"
)

type ReviewHandler struct {
	reviewService service.ReviewService
	validate      *validator.Validate
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validate:      validator.New(),
	}
}

type CreateReviewRequest struct {
	ToUserID string `json:"to_user_id" validate:"required"`
	SkillID  string `json:"skill_id" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"max=1000"`
}

func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	review, err := h.reviewService.CreateReview(c.Context(), store.CreateReview{
		FromUserID: userID,
		ToUserID:   req.ToUserID,
		SkillID:    req.SkillID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

func (h *ReviewHandler) ListReviewsByUser(c *fiber.Ctx) error {
	reviews := h.reviewService.ListReviewsForUser(c.Context(), c.Params("id"))
	if reviews == nil {
		reviews = []model.Review{}
	}
	return c.Status(fiber.StatusOK).JSON(reviews)
}
