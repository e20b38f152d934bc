package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ockidea/ockidea-server/config"
	userapp "github.com/ockidea/ockidea-server/internal/application"
	"github.com/ockidea/ockidea-server/pkg/response"
	"github.com/ockidea/ockidea-server/pkg/validation"
)

// ProfileHandler serves profile reads and the restricted profile
// update. Only nickname, bio and gender are mutable; anything else in
// the request body is ignored by the request type itself.
type ProfileHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
	Cfg    *config.Config
}

func NewProfileHandler(svc *userapp.Service, logger *logrus.Logger, cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger, Cfg: cfg}
}

type updateProfileRequest struct {
	Nickname *string `json:"nickname"`
	Bio      *string `json:"bio"`
	Gender   *string `json:"gender"`
}

// Get GET /api/profile/:id
func (h *ProfileHandler) Get(c *gin.Context) {
	view, err := h.Svc.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, userapp.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.serverError(c, err, "profile lookup failed")
		return
	}
	response.Success(c, http.StatusOK, view, "profile")
}

// Update PUT /api/profile/:id
func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	view, err := h.Svc.UpdateProfile(c.Request.Context(), c.Param("id"), userapp.UpdateProfileInput{
		Nickname: req.Nickname,
		Bio:      req.Bio,
		Gender:   req.Gender,
	})
	if err != nil {
		var verr *userapp.ValidationError
		switch {
		case errors.Is(err, userapp.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, userapp.ErrNicknameTaken):
			response.Error(c, http.StatusBadRequest, "nickname is already in use", nil)
		case errors.As(err, &verr):
			response.Error(c, http.StatusBadRequest, "profile update failed", verr.Details())
		default:
			h.serverError(c, err, "profile update failed")
		}
		return
	}
	response.Success(c, http.StatusOK, view, "profile updated")
}

func (h *ProfileHandler) serverError(c *gin.Context, err error, msg string) {
	if h.Logger != nil {
		h.Logger.WithError(err).Error(msg)
	}
	if h.Cfg != nil && h.Cfg.Env == "production" {
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Error(c, http.StatusInternalServerError, msg, err.Error())
}
