package serverutils

import (
	"errors"

	"arogya-chat-be/internal/pkg/apperrors"
	"arogya-chat-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates service errors into the response
// envelope. Store failures are logged here and surfaced as a generic 500
// without internal detail.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var ve *apperrors.ValidationError
		if errors.As(err, &ve) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, ve.Message))
		}

		var nf *apperrors.NotFoundError
		if errors.As(err, &nf) {
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, nf.Error()))
		}

		var le *apperrors.LimitExceededError
		if errors.As(err, &le) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"code":    fiber.StatusTooManyRequests,
				"message": le.Error(),
				"data":    le,
			})
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Code, fe.Message))
		}

		if log != nil {
			log.Error("HTTP", "Unhandled error", map[string]interface{}{
				"error":  err.Error(),
				"path":   ctx.Path(),
				"method": ctx.Method(),
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
