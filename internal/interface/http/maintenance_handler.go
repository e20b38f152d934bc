package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/ockidea/ockidea-server/internal/application"
	"github.com/ockidea/ockidea-server/pkg/response"
)

// MaintenanceHandler holds the test/maintenance endpoints: demo-user
// seeding and the administrative bulk clear. The router only mounts it
// when the maintenance toggle is on.
type MaintenanceHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewMaintenanceHandler(svc *userapp.Service, logger *logrus.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{Svc: svc, Logger: logger}
}

// demoUsers are the fixture accounts used for local smoke testing.
var demoUsers = []userapp.RegisterInput{
	{Email: "test@example.com", Password: "password123", Nickname: "테스트유저", BirthDate: "20030913", Gender: "F", Bio: "테스트용 사용자입니다"},
	{Email: "user1@example.com", Password: "password123", Nickname: "사용자1", BirthDate: "19950825", Gender: "M"},
	{Email: "user2@example.com", Password: "password123", Nickname: "사용자2", BirthDate: "20000101", Gender: "F"},
	{Email: "user3@example.com", Password: "password123", Nickname: "사용자3", BirthDate: "19881224", Gender: "N"},
}

// CreateUser POST /api/test/create-user
func (h *MaintenanceHandler) CreateUser(c *gin.Context) {
	view, err := h.Svc.Register(c.Request.Context(), demoUsers[0])
	if err != nil {
		response.Error(c, http.StatusBadRequest, "demo user creation failed", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, view, "demo user created")
}

// CreateMultipleUsers POST /api/test/create-multiple-users
func (h *MaintenanceHandler) CreateMultipleUsers(c *gin.Context) {
	created := make([]any, 0, len(demoUsers)-1)
	for _, in := range demoUsers[1:] {
		view, err := h.Svc.Register(c.Request.Context(), in)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "demo user creation failed", err.Error())
			return
		}
		created = append(created, view)
	}
	response.Success(c, http.StatusCreated, created, "demo users created")
}

// DeleteAll DELETE /api/test/delete-all
func (h *MaintenanceHandler) DeleteAll(c *gin.Context) {
	n, err := h.Svc.DeleteAllUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "bulk delete failed", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": n}, "all users deleted")
}
