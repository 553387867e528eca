package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"wayfarer/models"
	"wayfarer/utils"
)

// AliasTopToursHandler rewrites the query string to the canned
// "top 5 best rated, cheapest first" listing and falls through to the
// regular tour listing.
func (h *CatalogHandler) AliasTopToursHandler(c *gin.Context) {
	query := url.Values{}
	query.Set("limit", "5")
	query.Set("sortBy", "ratingsAverage:desc,price:asc")
	c.Request.URL.RawQuery = query.Encode()
	h.GetToursHandler(c)
}

// CreateTourHandler handles POST /tours.
func (h *CatalogHandler) CreateTourHandler(c *gin.Context) {
	var tour models.Tour
	if err := bindBody(c, &tour); err != nil {
		utils.RespondError(c, err)
		return
	}

	if isMultipart(c) {
		main, err := uploadFormImage(c, h.Storage, "mainImage", "tours")
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if main != nil {
			tour.MainImage = *main
		}
		gallery, err := uploadFormImages(c, h.Storage, "images", "tours")
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if gallery != nil {
			tour.Images = gallery
		}
	}

	created, err := h.Service.CreateTour(&tour)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) GetToursHandler(c *gin.Context) {
	filter, opts := parseListQuery(c)
	page, err := h.Service.GetTours(filter, opts)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CatalogHandler) GetTourHandler(c *gin.Context) {
	tour, err := h.Service.GetTourByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tour)
}

func (h *CatalogHandler) GetTourBySlugHandler(c *gin.Context) {
	tour, err := h.Service.GetTourBySlug(c.Param("slug"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tour)
}

func (h *CatalogHandler) UpdateTourHandler(c *gin.Context) {
	var patch bson.M
	if err := bindBody(c, &patch); err != nil {
		utils.RespondError(c, err)
		return
	}

	if isMultipart(c) {
		main, err := uploadFormImage(c, h.Storage, "mainImage", "tours")
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if main != nil {
			patch["mainImage"] = main
		}
		gallery, err := uploadFormImages(c, h.Storage, "images", "tours")
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if gallery != nil {
			patch["images"] = gallery
		}
	}

	updated, err := h.Service.UpdateTour(c.Param("id"), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CatalogHandler) DeleteTourHandler(c *gin.Context) {
	if _, err := h.Service.DeleteTour(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// TourStatsHandler handles GET /tours/stats.
func (h *CatalogHandler) TourStatsHandler(c *gin.Context) {
	stats, err := h.Service.TourStats()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": stats})
}

// MonthlyPlanHandler handles GET /tours/monthly-plan/:year.
func (h *CatalogHandler) MonthlyPlanHandler(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1970 || year > time.Now().Year()+50 {
		utils.RespondError(c, utils.NewBadRequest("invalid year %q", c.Param("year")))
		return
	}

	plan, err := h.Service.MonthlyPlan(year)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": plan})
}
