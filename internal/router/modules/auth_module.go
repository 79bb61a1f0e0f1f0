package modules

import (
	"github.com/gin-gonic/gin"

	handlers "taskhub/internal/interface/http"
)

// AuthModule registers the unauthenticated account endpoints.
type AuthModule struct {
	handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.handler.RegisterUser)
	rg.POST("/login", m.handler.LoginUser)
	rg.POST("/refresh", m.handler.RefreshToken)
	rg.POST("/logout", m.handler.LogoutUser)
}
