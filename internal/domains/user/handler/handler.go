package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/user/model"
	"library-backend/internal/domains/user/service"
	"library-backend/internal/shared/apperr"
	"library-backend/internal/shared/response"
	"library-backend/pkg/either"
	"library-backend/pkg/logger"
)

type UserHandler struct {
	service service.Service
}

func NewUserHandler(service service.Service) *UserHandler {
	return &UserHandler{service: service}
}

// ========================================
// ACCOUNTS
// ========================================

// CreateAccount handles POST /accounts
func (h *UserHandler) CreateAccount(c *gin.Context) {
	var req model.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	req = req.Normalized()
	role, _ := model.ParseRole(req.Role)

	result, err := h.service.CreateUser(c.Request.Context(), service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if !handleResult(c, "create account", result, err) {
		return
	}

	response.Success(c, http.StatusCreated, "Account created successfully", result.RightValue().ToResponse())
}

// ========================================
// SESSIONS
// ========================================

// Authenticate handles POST /sessions
func (h *UserHandler) Authenticate(c *gin.Context) {
	var req model.AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := h.service.Authenticate(c.Request.Context(), service.AuthenticateInput{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: req.Password,
	})
	if !handleResult(c, "authenticate", result, err) {
		return
	}

	session := result.RightValue()
	response.Success(c, http.StatusOK, "Authenticated", model.AuthenticateResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		UserRole:     session.Role.String(),
	})
}

// Refresh handles POST /sessions/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	req, ok := bindRefresh(c)
	if !ok {
		return
	}

	result, err := h.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if !handleResult(c, "refresh session", result, err) {
		return
	}

	session := result.RightValue()
	response.Success(c, http.StatusOK, "Session refreshed", model.RefreshResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
	})
}

// Logout handles POST /sessions/logout
func (h *UserHandler) Logout(c *gin.Context) {
	req, ok := bindRefresh(c)
	if !ok {
		return
	}

	result, err := h.service.Logout(c.Request.Context(), req.RefreshToken)
	if !handleResult(c, "logout", result, err) {
		return
	}

	response.NoContent(c)
}

func bindRefresh(c *gin.Context) (model.RefreshRequest, bool) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return req, false
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return req, false
	}
	return req, true
}

// handleResult writes the error response and reports false when the call
// did not produce a Right value
func handleResult[T any](c *gin.Context, op string, result either.Either[apperr.UseCaseError, T], err error) bool {
	if err != nil {
		logger.ErrorFields("user handler failed", err, map[string]interface{}{"op": op})
		response.InternalServerError(c)
		return false
	}
	if result.IsLeft() {
		response.UseCaseError(c, result.LeftValue())
		return false
	}
	return true
}
