package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taskhub/internal/application"
	"taskhub/internal/interface/middleware"
	"taskhub/pkg/response"
	"taskhub/pkg/validation"
)

type updateProfileRequest struct {
	Name     string `json:"name" binding:"max=100"`
	LastName string `json:"lastName" binding:"max=100"`
}

// UserHandler covers the authenticated profile surface.
type UserHandler struct {
	Service *application.UserService
	Logger  *logrus.Logger
}

func NewUserHandler(service *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Service: service, Logger: logger}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "profile")
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid request", validation.ToDetails(err))
		return
	}

	userID := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Service.UpdateProfile(c.Request.Context(), userID, req.Name, req.LastName)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "profile updated")
}

func (h *UserHandler) Deactivate(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	if err := h.Service.Deactivate(c.Request.Context(), userID); err != nil {
		writeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "account deactivated")
}

func (h *UserHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	hits, err := h.Service.Search(c.Request.Context(), q, size)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results")
}
