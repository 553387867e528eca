package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfarer/database/repository/facade"
	"wayfarer/middleware"
)

// Query parameters reserved for pagination, never treated as filters.
var reservedParams = map[string]bool{"sortBy": true, "limit": true, "page": true}

// parseListQuery splits the request query string into a filter map and
// pagination options. Unknown filter keys are dropped later by the façade's
// per-entity allow-list.
func parseListQuery(c *gin.Context) (map[string]string, facade.QueryOptions) {
	filter := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] || len(values) == 0 {
			continue
		}
		filter[key] = values[0]
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	page, _ := strconv.Atoi(c.Query("page"))
	return filter, facade.QueryOptions{
		SortBy: c.Query("sortBy"),
		Limit:  limit,
		Page:   page,
	}
}

// currentUserID returns the authenticated user's id from the request context.
func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.CtxUserID)
}
