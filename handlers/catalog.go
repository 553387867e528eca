package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/services/catalog"
	"wayfarer/services/storage"
	"wayfarer/utils"
)

// CatalogHandler serves the destination, attraction and tour endpoints.
type CatalogHandler struct {
	Service catalog.Service
	Storage storage.StorageService
}

// NewCatalogHandler creates the catalog handler.
func NewCatalogHandler(svc catalog.Service, store storage.StorageService) *CatalogHandler {
	return &CatalogHandler{Service: svc, Storage: store}
}

// PlacesWithinHandler handles GET .../:entity/places-within/:distance/center/:latLng/unit/:unit.
func (h *CatalogHandler) PlacesWithinHandler(entity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := h.Service.PlacesWithin(entity, c.Param("distance"), c.Param("latLng"), c.Param("unit"))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": results})
	}
}

// DistancesHandler handles GET .../:entity/distances/:latLng/unit/:unit.
func (h *CatalogHandler) DistancesHandler(entity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := h.Service.Distances(entity, c.Param("latLng"), c.Param("unit"))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": results})
	}
}
