package functions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sycord/server/internal/auth"
	resterrors "github.com/sycord/server/internal/errors"
	"github.com/sycord/server/sycord/functions"
)

// ListHandler godoc
// @Summary List plugin functions
// @Description List the authenticated user's generated plugin functions
// @Tags functions
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 401 {object} resterrors.ErrorResponse
// @Router /api/v1/functions [get]
// @Security BearerAuth
func ListHandler(repo *functions.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			resterrors.Unauthorized(c, "")
			return
		}

		fns, err := repo.List(c.Request.Context(), userID)
		if err != nil {
			resterrors.InternalError(c, "failed to list functions", err)
			return
		}

		if fns == nil {
			fns = []functions.Function{}
		}

		c.JSON(http.StatusOK, ListResponse{
			Functions: fns,
			Total:     len(fns),
		})
	}
}

// GetHandler godoc
// @Summary Get a plugin function
// @Description Get one function with its latest code version
// @Tags functions
// @Produce json
// @Param id path string true "Function ID"
// @Success 200 {object} functions.Function
// @Failure 401 {object} resterrors.ErrorResponse
// @Failure 404 {object} resterrors.ErrorResponse
// @Router /api/v1/functions/{id} [get]
// @Security BearerAuth
func GetHandler(repo *functions.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			resterrors.Unauthorized(c, "")
			return
		}

		fn, err := repo.Get(c.Request.Context(), c.Param("id"), userID)
		if err != nil {
			if errors.Is(err, functions.ErrFunctionNotFound) {
				resterrors.NotFound(c, "function")
				return
			}

			resterrors.InternalError(c, "failed to load function", err)
			return
		}

		c.JSON(http.StatusOK, fn)
	}
}

// CreateHandler godoc
// @Summary Save a generated plugin
// @Description Save a newly generated plugin function with its first code version
// @Tags functions
// @Accept json
// @Produce json
// @Param request body functions.CreateFunctionRequest true "Function to save"
// @Success 201 {object} functions.Function
// @Failure 400 {object} resterrors.ErrorResponse
// @Failure 401 {object} resterrors.ErrorResponse
// @Router /api/v1/functions [post]
// @Security BearerAuth
func CreateHandler(repo *functions.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			resterrors.Unauthorized(c, "")
			return
		}

		var req functions.CreateFunctionRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			resterrors.ValidationError(c, err)
			return
		}

		fn, err := repo.Create(c.Request.Context(), userID, req)
		if err != nil {
			resterrors.InternalError(c, "failed to save function", err)
			return
		}

		c.JSON(http.StatusCreated, fn)
	}
}

// DeleteHandler godoc
// @Summary Delete a plugin function
// @Description Delete a function together with its versions and chat history
// @Tags functions
// @Param id path string true "Function ID"
// @Success 204 "No Content"
// @Failure 401 {object} resterrors.ErrorResponse
// @Failure 404 {object} resterrors.ErrorResponse
// @Router /api/v1/functions/{id} [delete]
// @Security BearerAuth
func DeleteHandler(repo *functions.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			resterrors.Unauthorized(c, "")
			return
		}

		err := repo.Delete(c.Request.Context(), c.Param("id"), userID)
		if err != nil {
			if errors.Is(err, functions.ErrFunctionNotFound) {
				resterrors.NotFound(c, "function")
				return
			}

			resterrors.InternalError(c, "failed to delete function", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// ListVersionsHandler godoc
// @Summary List code versions
// @Description List a function's code versions oldest-first
// @Tags functions
// @Produce json
// @Param id path string true "Function ID"
// @Success 200 {object} VersionsResponse
// @Failure 401 {object} resterrors.ErrorResponse
// @Router /api/v1/functions/{id}/versions [get]
// @Security BearerAuth
func ListVersionsHandler(repo *functions.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			resterrors.Unauthorized(c, "")
			return
		}

		versions, err := repo.ListVersions(c.Request.Context(), c.Param("id"), userID)
		if err != nil {
			resterrors.InternalError(c, "failed to list versions", err)
			return
		}

		if versions == nil {
			versions = []functions.CodeVersion{}
		}

		c.JSON(http.StatusOK, VersionsResponse{
			Versions: versions,
			Total:    len(versions),
		})
	}
}

// ListMessagesHandler godoc
// @Summary List chat messages
// @Description List a function's follow-up chat history in order
// @Tags functions
// @Produce json
// @Param id path string true "Function ID"
// @Success 200 {object} MessagesResponse
// @Failure 401 {object} resterrors.ErrorResponse
// @Router /api/v1/functions/{id}/messages [get]
// @Security BearerAuth
func ListMessagesHandler(repo *functions.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			resterrors.Unauthorized(c, "")
			return
		}

		msgs, err := repo.ListMessages(c.Request.Context(), c.Param("id"), userID)
		if err != nil {
			resterrors.InternalError(c, "failed to list messages", err)
			return
		}

		if msgs == nil {
			msgs = []functions.ChatMessage{}
		}

		c.JSON(http.StatusOK, MessagesResponse{
			Messages: msgs,
			Total:    len(msgs),
		})
	}
}
