package generate

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sycord/server/internal/auth"
	resterrors "github.com/sycord/server/internal/errors"
	"github.com/sycord/server/internal/generator"
)

// Handler godoc
// @Summary Generate a plugin
// @Description Classify the chat turn (new request, detail fulfillment or follow-up) and generate Discord plugin code
// @Tags ai
// @Accept json
// @Produce json
// @Param request body Request true "Generation request"
// @Success 200 {object} generator.GenerateResponse
// @Failure 400 {object} resterrors.ErrorResponse
// @Failure 401 {object} resterrors.ErrorResponse
// @Failure 404 {object} resterrors.ErrorResponse
// @Failure 429 {object} resterrors.ErrorResponse
// @Failure 500 {object} resterrors.ErrorResponse
// @Router /api/v1/ai/generate [post]
// @Security BearerAuth
func Handler(gen *generator.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			resterrors.ValidationError(c, err)
			return
		}

		userID, exists := auth.GetUserID(c)
		if !exists {
			resterrors.Unauthorized(c, "")
			return
		}

		resp, err := gen.Generate(c.Request.Context(), generator.GenerateRequest{
			UserID:        userID,
			Message:       req.Message,
			ChatSessionID: req.ChatSessionID,
			FunctionID:    req.FunctionID,
			Details:       req.Details,
		})

		if err != nil {
			switch {
			case errors.Is(err, generator.ErrMissingMessage),
				errors.Is(err, generator.ErrFunctionIDRequired):
				resterrors.BadRequest(c, err.Error(), nil)
			case errors.Is(err, generator.ErrFunctionNotFound):
				resterrors.NotFound(c, "function")
			default:
				resterrors.InternalError(c, "failed to generate plugin", err)
			}

			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
