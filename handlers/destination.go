package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"wayfarer/models"
	"wayfarer/utils"
)

// CreateDestinationHandler handles POST /destinations. Accepts plain JSON or
// a multipart form carrying a cover image.
func (h *CatalogHandler) CreateDestinationHandler(c *gin.Context) {
	var dest models.Destination
	if err := bindBody(c, &dest); err != nil {
		utils.RespondError(c, err)
		return
	}

	if isMultipart(c) {
		cover, err := uploadFormImage(c, h.Storage, "cover", "destinations")
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if cover != nil {
			dest.Cover = *cover
		}
	}

	created, err := h.Service.CreateDestination(&dest)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) GetDestinationsHandler(c *gin.Context) {
	filter, opts := parseListQuery(c)
	page, err := h.Service.GetDestinations(filter, opts)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CatalogHandler) GetDestinationHandler(c *gin.Context) {
	dest, err := h.Service.GetDestinationByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dest)
}

func (h *CatalogHandler) GetDestinationBySlugHandler(c *gin.Context) {
	dest, err := h.Service.GetDestinationBySlug(c.Param("slug"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dest)
}

func (h *CatalogHandler) UpdateDestinationHandler(c *gin.Context) {
	var patch bson.M
	if err := bindBody(c, &patch); err != nil {
		utils.RespondError(c, err)
		return
	}

	if isMultipart(c) {
		cover, err := uploadFormImage(c, h.Storage, "cover", "destinations")
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if cover != nil {
			patch["cover"] = cover
		}
	}

	updated, err := h.Service.UpdateDestination(c.Param("id"), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CatalogHandler) DeleteDestinationHandler(c *gin.Context) {
	if _, err := h.Service.DeleteDestination(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
