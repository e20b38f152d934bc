package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/ockidea/ockidea-server/internal/interface/http"
)

// MaintenanceModule mounts the test-only seed and bulk-clear routes.
// Callers must gate its registration on the maintenance config toggle.
type MaintenanceModule struct {
	Handler *handlers.MaintenanceHandler
}

func NewMaintenanceModule(h *handlers.MaintenanceHandler) *MaintenanceModule {
	return &MaintenanceModule{Handler: h}
}

func (m *MaintenanceModule) Register(rg *gin.RouterGroup) {
	rg.POST("/test/create-user", m.Handler.CreateUser)
	rg.POST("/test/create-multiple-users", m.Handler.CreateMultipleUsers)
	rg.DELETE("/test/delete-all", m.Handler.DeleteAll)
}
