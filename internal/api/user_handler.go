package api

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/VinaySai005/SkillSwap-dt/internal/model"
	"github.com/VinaySai005/SkillSwap-dt/internal/s3"
	"github.com/VinaySai005/SkillSwap-dt/internal/service"
)

type UserHandler struct {
	userService   service.UserService
	validate      *validator.Validate
	filePresigner *s3.FilePresigner
}

// NewUserHandler accepts a nil presigner; the avatar upload route is only
// registered when S3 is configured.
func NewUserHandler(userService service.UserService, presigner *s3.FilePresigner) *UserHandler {
	return &UserHandler{
		userService:   userService,
		validate:      validator.New(),
		filePresigner: presigner,
	}
}

type AvailabilitySlotRequest struct {
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type LearningInterestRequest struct {
	Title string   `json:"title" validate:"required"`
	Tags  []string `json:"tags"`
}

type UpdateProfileRequest struct {
	Name              *string                   `json:"name,omitempty" validate:"omitempty,min=2"`
	Password          *string                   `json:"password,omitempty" validate:"omitempty,min=8"`
	AvatarURL         *string                   `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Bio               *string                   `json:"bio,omitempty"`
	Location          *string                   `json:"location,omitempty"`
	LearningInterests []LearningInterestRequest `json:"learning_interests,omitempty" validate:"omitempty,dive"`
	Availability      []AvailabilitySlotRequest `json:"availability,omitempty" validate:"omitempty,dive"`
}

func (h *UserHandler) UpdateUserProfile(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	dto := service.UpdateProfileDTO{
		Name:      req.Name,
		Password:  req.Password,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
		Location:  req.Location,
	}
	if req.LearningInterests != nil {
		dto.LearningInterests = make([]model.Skill, 0, len(req.LearningInterests))
		for _, interest := range req.LearningInterests {
			dto.LearningInterests = append(dto.LearningInterests, model.Skill{
				Title: interest.Title,
				Tags:  interest.Tags,
			})
		}
	}
	if req.Availability != nil {
		dto.Availability = make([]model.Availability, 0, len(req.Availability))
		for _, slot := range req.Availability {
			dto.Availability = append(dto.Availability, model.Availability{
				Day:       slot.Day,
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
			})
		}
	}

	updatedUser, err := h.userService.UpdateUserProfile(c.Context(), userID, dto)
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(updatedUser)
}

func (h *UserHandler) GetUserProfileByID(c *fiber.Ctx) error {
	user, err := h.userService.GetUserProfileByID(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *UserHandler) GetAvatarUploadURL(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	objectKey := "user-avatars/" + userID + "/" + uuid.New().String() + ".jpg"

	uploadURL, err := h.filePresigner.GeneratePresignedUploadURL(objectKey)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not generate upload URL"})
	}

	finalImageURL := os.Getenv("S3_ENDPOINT") + "/" + h.filePresigner.BucketName + "/" + objectKey

	return c.JSON(fiber.Map{
		"upload_url":      uploadURL,
		"final_image_url": finalImageURL,
	})
}
