package controller

import (
	"arogya-chat-be/internal/pkg/serverutils"
	"arogya-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type healthController struct {
	healthService service.IHealthService
}

func NewHealthController(healthService service.IHealthService) IHealthController {
	return &healthController{
		healthService: healthService,
	}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
	r.Get("/status", c.Status)
}

// Health is the liveness probe: answering at all means alive.
func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("ok", fiber.Map{"alive": true}))
}

// Status reports per-dependency reachability for the client's status poller.
func (c *healthController) Status(ctx *fiber.Ctx) error {
	res := c.healthService.Status(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success fetch status", res))
}
