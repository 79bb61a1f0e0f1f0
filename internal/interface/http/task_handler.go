package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taskhub/internal/application"
	"taskhub/internal/interface/middleware"
	"taskhub/pkg/response"
	"taskhub/pkg/validation"
)

const maxAttachmentSize = 10 << 20 // 10 MiB

type createTaskRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
}

type updateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Completed   *bool   `json:"completed"`
}

// TaskHandler covers the per-user task CRUD surface plus attachment upload.
type TaskHandler struct {
	Service *application.TaskService
	Logger  *logrus.Logger
}

func NewTaskHandler(service *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Service: service, Logger: logger}
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid request", validation.ToDetails(err))
		return
	}

	userID := c.GetString(middleware.CtxUserIDKey)
	t, err := h.Service.Create(c.Request.Context(), userID, application.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, t, "task created")
}

func (h *TaskHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	tasks, err := h.Service.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, tasks, "tasks")
}

func (h *TaskHandler) Get(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	t, err := h.Service.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "task")
}

func (h *TaskHandler) Update(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid request", validation.ToDetails(err))
		return
	}

	userID := c.GetString(middleware.CtxUserIDKey)
	t, err := h.Service.Update(c.Request.Context(), userID, c.Param("id"), application.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "task updated")
}

func (h *TaskHandler) Delete(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	if err := h.Service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "task deleted")
}

// Attach uploads a multipart file (field "file") and stores its public URL on
// the task.
func (h *TaskHandler) Attach(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing file", nil)
		return
	}
	if fileHeader.Size > maxAttachmentSize {
		response.Error[any](c, http.StatusRequestEntityTooLarge, "file too large", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable file", nil)
		return
	}
	defer f.Close()

	userID := c.GetString(middleware.CtxUserIDKey)
	t, err := h.Service.AttachFile(c.Request.Context(), userID, c.Param("id"), f,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "attachment uploaded")
}
