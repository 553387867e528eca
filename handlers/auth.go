package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	userService "wayfarer/services/user"
	"wayfarer/utils"
)

// AuthHandler serves signup, login, logout and password changes.
type AuthHandler struct {
	Users userService.Service
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(users userService.Service) *AuthHandler {
	return &AuthHandler{Users: users}
}

// RegisterHandler handles POST /auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var input userService.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.NewBadRequest("invalid request body: %v", err))
		return
	}

	acct, err := h.Users.Register(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, acct)
}

// LoginHandler handles POST /auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var creds userService.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.RespondError(c, utils.NewBadRequest("invalid request body: %v", err))
		return
	}

	session, err := h.Users.Login(creds)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// LogoutHandler handles POST /auth/logout, revoking the presented token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		utils.RespondError(c, utils.NewBadRequest("no token to revoke"))
		return
	}
	if err := h.Users.Logout(token); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePasswordHandler handles PATCH /auth/password for the authenticated user.
func (h *AuthHandler) ChangePasswordHandler(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewBadRequest("invalid request body: %v", err))
		return
	}

	if err := h.Users.ChangePassword(currentUserID(c), req.CurrentPassword, req.NewPassword); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "password updated, please log in again"})
}
