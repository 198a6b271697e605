package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/VinaySai005/SkillSwap-dt/internal/model"
	"github.com/VinaySai005/SkillSwap-dt/internal/service"
	"github.com/VinaySai005/SkillSwap-dt/internal/store"
)

type MessageHandler struct {
	messageService service.MessageService
	validate       *validator.Validate
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		validate:       validator.New(),
	}
}

type SendMessageRequest struct {
	ToUserID string `json:"to_user_id" validate:"required"`
	Text     string `json:"text" validate:"required,max=2000"`
}

func (h *MessageHandler) SendMessage(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	msg, err := h.messageService.SendMessage(c.Context(), store.CreateMessage{
		FromUserID: userID,
		ToUserID:   req.ToUserID,
		Text:       req.Text,
	})
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(msg)
}

// GetThread returns the conversation between the caller and :userId,
// oldest first.
func (h *MessageHandler) GetThread(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	thread := h.messageService.GetThread(c.Context(), userID, c.Params("userId"))
	if thread == nil {
		thread = []model.Message{}
	}
	return c.Status(fiber.StatusOK).JSON(thread)
}

// MarkThreadRead marks messages sent by :userId to the caller as read.
func (h *MessageHandler) MarkThreadRead(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	marked := h.messageService.MarkThreadRead(c.Context(), c.Params("userId"), userID)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "marked": marked})
}
