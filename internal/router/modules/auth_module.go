package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/ockidea/ockidea-server/internal/interface/http"
)

// AuthModule mounts the public registration/login surface.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", m.Handler.Register)
	rg.POST("/auth/login", m.Handler.Login)
	rg.POST("/auth/check-email", m.Handler.CheckEmail)
	rg.POST("/auth/check-nickname", m.Handler.CheckNickname)
}
