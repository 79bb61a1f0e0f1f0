package modules

import (
	"github.com/gin-gonic/gin"

	handlers "taskhub/internal/interface/http"
	"taskhub/internal/interface/middleware"
	"taskhub/pkg/helpers"
)

// UserModule registers the authenticated profile endpoints.
type UserModule struct {
	handler *handlers.UserHandler
	jwt     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{handler: h, jwt: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("", middleware.JWTAuth(m.jwt))
	auth.GET("/profile", m.handler.GetProfile)
	auth.PUT("/profile", m.handler.UpdateProfile)
	auth.POST("/profile/deactivate", m.handler.Deactivate)
	auth.GET("/users/search", m.handler.Search)
}
