package modules

import (
	"github.com/gin-gonic/gin"

	handlers "taskhub/internal/interface/http"
	"taskhub/internal/interface/middleware"
	"taskhub/pkg/helpers"
)

// TaskModule registers the authenticated task endpoints.
type TaskModule struct {
	handler *handlers.TaskHandler
	jwt     *helpers.JWTManager
}

func NewTaskModule(h *handlers.TaskHandler, jwt *helpers.JWTManager) *TaskModule {
	return &TaskModule{handler: h, jwt: jwt}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	tasks := rg.Group("/tasks", middleware.JWTAuth(m.jwt))
	tasks.POST("", m.handler.Create)
	tasks.GET("", m.handler.List)
	tasks.GET("/:id", m.handler.Get)
	tasks.PUT("/:id", m.handler.Update)
	tasks.DELETE("/:id", m.handler.Delete)
	tasks.POST("/:id/attachment", m.handler.Attach)
}
