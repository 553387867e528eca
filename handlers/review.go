package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/middleware"
	"wayfarer/models"
	reviewService "wayfarer/services/review"
	"wayfarer/utils"
)

// ReviewHandler serves the review endpoints, both the flat /reviews routes
// and the nested ones under a tour or attraction.
type ReviewHandler struct {
	Service reviewService.Service
}

// NewReviewHandler creates the review handler.
func NewReviewHandler(svc reviewService.Service) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

type createReviewRequest struct {
	Review string           `json:"review"`
	Rating float64          `json:"rating"`
	Parent models.ParentRef `json:"parent"`
}

// CreateReviewHandler handles POST /reviews with the parent in the body.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewBadRequest("invalid request body: %v", err))
		return
	}

	rev, err := h.Service.Create(currentUserID(c), req.Parent, req.Review, req.Rating)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rev)
}

// NestedCreateHandler serves POST .../{tours,attractions}/:id/reviews, where
// the route fixes the parent and the body carries only review and rating.
func (h *ReviewHandler) NestedCreateHandler(kind models.ParentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, utils.NewBadRequest("invalid request body: %v", err))
			return
		}

		parent := models.ParentRef{Kind: kind, ID: c.Param("id")}
		rev, err := h.Service.Create(currentUserID(c), parent, req.Review, req.Rating)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, rev)
	}
}

// GetReviewsHandler lists reviews with the usual filter parameters.
func (h *ReviewHandler) GetReviewsHandler(c *gin.Context) {
	filter, opts := parseListQuery(c)
	page, err := h.Service.Query(filter, opts)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// NestedListHandler serves GET .../{tours,attractions}/:id/reviews, scoping
// the listing to the parent in the path.
func (h *ReviewHandler) NestedListHandler(kind models.ParentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, opts := parseListQuery(c)
		filter["parent.kind"] = string(kind)
		filter["parent.id"] = c.Param("id")

		page, err := h.Service.Query(filter, opts)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

func (h *ReviewHandler) GetReviewHandler(c *gin.Context) {
	rev, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rev)
}

// reviewActor returns the user id the service should act as. Privileged
// moderators act as the review's owner so they can manage any review.
func (h *ReviewHandler) reviewActor(c *gin.Context, reviewID string) (string, error) {
	if !middleware.Elevated(c, "manageReviews") {
		return currentUserID(c), nil
	}
	rev, err := h.Service.GetByID(reviewID)
	if err != nil {
		return "", err
	}
	return rev.User, nil
}

// UpdateReviewHandler handles PATCH /reviews/:id.
func (h *ReviewHandler) UpdateReviewHandler(c *gin.Context) {
	var input reviewService.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.NewBadRequest("invalid request body: %v", err))
		return
	}

	actor, err := h.reviewActor(c, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	rev, err := h.Service.Update(actor, c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rev)
}

// DeleteReviewHandler handles DELETE /reviews/:id.
func (h *ReviewHandler) DeleteReviewHandler(c *gin.Context) {
	actor, err := h.reviewActor(c, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if err := h.Service.Delete(actor, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
