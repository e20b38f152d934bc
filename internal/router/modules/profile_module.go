package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/ockidea/ockidea-server/internal/interface/http"
)

// ProfileModule mounts profile fetch and the restricted profile update.
type ProfileModule struct {
	Handler *handlers.ProfileHandler
}

func NewProfileModule(h *handlers.ProfileHandler) *ProfileModule {
	return &ProfileModule{Handler: h}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	rg.GET("/profile/:id", m.Handler.Get)
	rg.PUT("/profile/:id", m.Handler.Update)
}
