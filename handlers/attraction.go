package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"wayfarer/models"
	"wayfarer/utils"
)

// attachAttractionImages uploads any multipart images and wires them into the
// given setters. Shared by create and update.
func (h *CatalogHandler) attachAttractionImages(c *gin.Context, setMain func(models.ImageRef), setGallery func([]models.ImageRef)) error {
	main, err := uploadFormImage(c, h.Storage, "mainImage", "attractions")
	if err != nil {
		return err
	}
	if main != nil {
		setMain(*main)
	}

	gallery, err := uploadFormImages(c, h.Storage, "images", "attractions")
	if err != nil {
		return err
	}
	if gallery != nil {
		setGallery(gallery)
	}
	return nil
}

// CreateAttractionHandler handles POST /attractions.
func (h *CatalogHandler) CreateAttractionHandler(c *gin.Context) {
	var attr models.Attraction
	if err := bindBody(c, &attr); err != nil {
		utils.RespondError(c, err)
		return
	}

	if isMultipart(c) {
		err := h.attachAttractionImages(c,
			func(ref models.ImageRef) { attr.MainImage = ref },
			func(refs []models.ImageRef) { attr.Images = refs })
		if err != nil {
			utils.RespondError(c, err)
			return
		}
	}

	created, err := h.Service.CreateAttraction(&attr)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) GetAttractionsHandler(c *gin.Context) {
	filter, opts := parseListQuery(c)
	page, err := h.Service.GetAttractions(filter, opts)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CatalogHandler) GetAttractionHandler(c *gin.Context) {
	attr, err := h.Service.GetAttractionByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attr)
}

func (h *CatalogHandler) GetAttractionBySlugHandler(c *gin.Context) {
	attr, err := h.Service.GetAttractionBySlug(c.Param("slug"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attr)
}

func (h *CatalogHandler) UpdateAttractionHandler(c *gin.Context) {
	var patch bson.M
	if err := bindBody(c, &patch); err != nil {
		utils.RespondError(c, err)
		return
	}

	if isMultipart(c) {
		err := h.attachAttractionImages(c,
			func(ref models.ImageRef) { patch["mainImage"] = ref },
			func(refs []models.ImageRef) { patch["images"] = refs })
		if err != nil {
			utils.RespondError(c, err)
			return
		}
	}

	updated, err := h.Service.UpdateAttraction(c.Param("id"), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CatalogHandler) DeleteAttractionHandler(c *gin.Context) {
	if _, err := h.Service.DeleteAttraction(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// AttractionStatsHandler handles GET /attractions/stats.
func (h *CatalogHandler) AttractionStatsHandler(c *gin.Context) {
	stats, err := h.Service.AttractionStats()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": stats})
}
