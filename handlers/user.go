package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	userService "wayfarer/services/user"
	"wayfarer/utils"
)

// UserHandler serves the administrative account endpoints.
type UserHandler struct {
	Users userService.Service
}

// NewUserHandler creates the user handler.
func NewUserHandler(users userService.Service) *UserHandler {
	return &UserHandler{Users: users}
}

// GetMeHandler handles GET /users/me.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	acct, err := h.Users.GetByID(currentUserID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, acct)
}

func (h *UserHandler) GetUsersHandler(c *gin.Context) {
	filter, opts := parseListQuery(c)
	page, err := h.Users.Query(filter, opts)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *UserHandler) GetUserHandler(c *gin.Context) {
	acct, err := h.Users.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, acct)
}

// UpdateUserHandler handles PATCH /users/:id, including role assignment.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	var patch bson.M
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, utils.NewBadRequest("invalid request body: %v", err))
		return
	}

	updated, err := h.Users.Update(c.Param("id"), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	if _, err := h.Users.Delete(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
