package controller

import (
	"arogya-chat-be/internal/dto"
	"arogya-chat-be/internal/pkg/apperrors"
	"arogya-chat-be/internal/pkg/serverutils"
	"arogya-chat-be/internal/service"
	"arogya-chat-be/pkg/advisor"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	ShowSession(ctx *fiber.Ctx) error
	UpdateSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	Assess(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Get("sessions", c.ListSessions)
	h.Post("sessions", c.CreateSession)
	h.Get("sessions/:id", c.ShowSession)
	h.Patch("sessions/:id", c.UpdateSession)
	h.Delete("sessions/:id", c.DeleteSession)
	h.Post("messages", c.SendMessage)
	h.Post("assessment", c.Assess)
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid request body")
	}
	req.UserId = serverutils.UserIdFrom(ctx, req.UserId)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.CreateSession(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).
		JSON(serverutils.CreatedResponse("Success create session", res))
}

func (c *chatController) ListSessions(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFrom(ctx, ctx.Query("userId"))
	if userId == "" {
		return apperrors.NewValidation("userId is required")
	}

	limit := ctx.QueryInt("limit", 0)
	offset := ctx.QueryInt("offset", 0)
	if limit < 0 || offset < 0 {
		return apperrors.NewValidation("limit and offset must not be negative")
	}

	res, err := c.chatService.GetAllSessions(ctx.Context(), userId, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list sessions", res))
}

func (c *chatController) ShowSession(ctx *fiber.Ctx) error {
	res, err := c.chatService.GetSession(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

// UpdateSession and DeleteSession address the session by id alone, like
// ShowSession. Ownership is claimed and checked only on the message path.
func (c *chatController) UpdateSession(ctx *fiber.Ctx) error {
	var req dto.UpdateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.UpdateSession(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update session", res))
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	if err := c.chatService.DeleteSession(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid request body")
	}
	req.UserId = serverutils.UserIdFrom(ctx, req.UserId)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

// Assess runs the symptom checker. The verdict is a pure function of the
// submitted symptom list, so no service round trip is involved.
func (c *chatController) Assess(ctx *fiber.Ctx) error {
	var req dto.AssessmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	assessment := advisor.Assess(req.Symptoms, req.Language)

	res := &dto.AssessmentResponse{
		Symptoms:                   assessment.Symptoms,
		Severity:                   string(assessment.Severity),
		Recommendations:            assessment.Recommendations,
		ShouldSeekMedicalAttention: assessment.ShouldSeekMedicalAttention,
	}

	return ctx.JSON(serverutils.SuccessResponse("Success assess symptoms", res))
}
