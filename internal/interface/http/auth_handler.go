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

// AuthHandler exposes registration, login and availability checks.
type AuthHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
	Cfg    *config.Config
}

func NewAuthHandler(svc *userapp.Service, logger *logrus.Logger, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cfg: cfg}
}

type registerRequest struct {
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Nickname     string `json:"nickname" binding:"required"`
	BirthDate    string `json:"birthDate" binding:"required"`
	Gender       string `json:"gender"`
	ProfileImage string `json:"profileImage"`
	Bio          string `json:"bio"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type checkEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

type checkNicknameRequest struct {
	Nickname string `json:"nickname" binding:"required"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}

	view, err := h.Svc.Register(c.Request.Context(), userapp.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		Nickname:     req.Nickname,
		BirthDate:    req.BirthDate,
		Gender:       req.Gender,
		ProfileImage: req.ProfileImage,
		Bio:          req.Bio,
	})
	if err != nil {
		h.serviceError(c, err, "registration failed")
		return
	}
	response.Success(c, http.StatusCreated, view, "registration complete")
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}

	view, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userapp.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "email or password is incorrect", nil)
			return
		}
		h.serverError(c, err, "login failed")
		return
	}
	response.Success(c, http.StatusOK, view, "login successful")
}

// CheckEmail POST /api/auth/check-email
func (h *AuthHandler) CheckEmail(c *gin.Context) {
	var req checkEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}
	available, err := h.Svc.CheckEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.serviceError(c, err, "email check failed")
		return
	}
	msg := "email is available"
	if !available {
		msg = "email is already in use"
	}
	response.Success(c, http.StatusOK, gin.H{"available": available}, msg)
}

// CheckNickname POST /api/auth/check-nickname
func (h *AuthHandler) CheckNickname(c *gin.Context) {
	var req checkNicknameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}
	available, err := h.Svc.CheckNickname(c.Request.Context(), req.Nickname)
	if err != nil {
		h.serviceError(c, err, "nickname check failed")
		return
	}
	msg := "nickname is available"
	if !available {
		msg = "nickname is already in use"
	}
	response.Success(c, http.StatusOK, gin.H{"available": available}, msg)
}

// bindingError reports malformed payloads; missing required fields are
// called out by name.
func (h *AuthHandler) bindingError(c *gin.Context, err error) {
	if missing := validation.RequiredFields(err); len(missing) > 0 {
		response.Error(c, http.StatusBadRequest, "required fields missing", gin.H{
			"required": missing,
		})
		return
	}
	response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}

// serviceError maps domain failures onto HTTP statuses.
func (h *AuthHandler) serviceError(c *gin.Context, err error, msg string) {
	var verr *userapp.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Error(c, http.StatusBadRequest, msg, verr.Details())
	case errors.Is(err, userapp.ErrEmailTaken):
		response.Error(c, http.StatusBadRequest, "email is already in use", nil)
	case errors.Is(err, userapp.ErrNicknameTaken):
		response.Error(c, http.StatusBadRequest, "nickname is already in use", nil)
	case errors.Is(err, userapp.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "user not found", nil)
	default:
		h.serverError(c, err, msg)
	}
}

// serverError hides diagnostic detail in production.
func (h *AuthHandler) serverError(c *gin.Context, err error, msg string) {
	if h.Logger != nil {
		h.Logger.WithError(err).Error(msg)
	}
	if h.Cfg != nil && h.Cfg.Env == "production" {
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Error(c, http.StatusInternalServerError, msg, err.Error())
}
