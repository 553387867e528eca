package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"wayfarer/handlers"
	"wayfarer/middleware"
	"wayfarer/models"
)

// RegisterAuthRoutes registers signup, login and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.UserService))
		api.POST("/logout", hb.Auth.LogoutHandler)
		api.PATCH("/password", hb.Auth.ChangePasswordHandler)
	}
}

// RegisterUserRoutes registers account endpoints. Listing and management
// require admin rights.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	api.Use(middleware.JWTAuthMiddleware(hb.UserService))
	{
		api.GET("/me", hb.Users.GetMeHandler)

		api.GET("", middleware.RequirePermission("getUsers"), hb.Users.GetUsersHandler)
		api.GET("/:id", middleware.RequirePermission("getUsers"), hb.Users.GetUserHandler)
		api.PATCH("/:id", middleware.RequirePermission("manageUsers"), hb.Users.UpdateUserHandler)
		api.DELETE("/:id", middleware.RequirePermission("manageUsers"), hb.Users.DeleteUserHandler)
	}
}

// RegisterDestinationRoutes registers destination endpoints. Reads are public.
func RegisterDestinationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/destinations")
	{
		api.GET("", hb.Catalog.GetDestinationsHandler)
		api.GET("/:id", hb.Catalog.GetDestinationHandler)
		api.GET("/slug/:slug", hb.Catalog.GetDestinationBySlugHandler)
		api.GET("/places-within/:distance/center/:latLng/unit/:unit", hb.Catalog.PlacesWithinHandler("destination"))
		api.GET("/distances/:latLng/unit/:unit", hb.Catalog.DistancesHandler("destination"))

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserService), middleware.RequirePermission("manageDestinations"))
		protected.POST("", hb.Catalog.CreateDestinationHandler)
		protected.PATCH("/:id", hb.Catalog.UpdateDestinationHandler)
		protected.DELETE("/:id", hb.Catalog.DeleteDestinationHandler)
	}
}

// RegisterAttractionRoutes registers attraction endpoints, including the
// nested review routes.
func RegisterAttractionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/attractions")
	{
		api.GET("", hb.Catalog.GetAttractionsHandler)
		api.GET("/stats", hb.Catalog.AttractionStatsHandler)
		api.GET("/:id", hb.Catalog.GetAttractionHandler)
		api.GET("/slug/:slug", hb.Catalog.GetAttractionBySlugHandler)
		api.GET("/places-within/:distance/center/:latLng/unit/:unit", hb.Catalog.PlacesWithinHandler("attraction"))
		api.GET("/distances/:latLng/unit/:unit", hb.Catalog.DistancesHandler("attraction"))

		api.GET("/:id/reviews", hb.Reviews.NestedListHandler(models.ParentAttraction))
		api.POST("/:id/reviews",
			middleware.JWTAuthMiddleware(hb.UserService),
			middleware.RequirePermission("createReview"),
			hb.Reviews.NestedCreateHandler(models.ParentAttraction))

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserService), middleware.RequirePermission("manageAttractions"))
		protected.POST("", hb.Catalog.CreateAttractionHandler)
		protected.PATCH("/:id", hb.Catalog.UpdateAttractionHandler)
		protected.DELETE("/:id", hb.Catalog.DeleteAttractionHandler)
	}
}

// RegisterTourRoutes registers tour endpoints, including the alias listing,
// statistics and the nested review routes.
func RegisterTourRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tours")
	{
		api.GET("", hb.Catalog.GetToursHandler)
		api.GET("/top-5", hb.Catalog.AliasTopToursHandler)
		api.GET("/stats", hb.Catalog.TourStatsHandler)
		api.GET("/:id", hb.Catalog.GetTourHandler)
		api.GET("/slug/:slug", hb.Catalog.GetTourBySlugHandler)
		api.GET("/places-within/:distance/center/:latLng/unit/:unit", hb.Catalog.PlacesWithinHandler("tour"))
		api.GET("/distances/:latLng/unit/:unit", hb.Catalog.DistancesHandler("tour"))

		api.GET("/:id/reviews", hb.Reviews.NestedListHandler(models.ParentTour))
		api.POST("/:id/reviews",
			middleware.JWTAuthMiddleware(hb.UserService),
			middleware.RequirePermission("createReview"),
			hb.Reviews.NestedCreateHandler(models.ParentTour))

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserService), middleware.RequirePermission("manageTours"))
		protected.GET("/monthly-plan/:year", hb.Catalog.MonthlyPlanHandler)
		protected.POST("", hb.Catalog.CreateTourHandler)
		protected.PATCH("/:id", hb.Catalog.UpdateTourHandler)
		protected.DELETE("/:id", hb.Catalog.DeleteTourHandler)
	}
}

// RegisterReviewRoutes registers the flat review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("", hb.Reviews.GetReviewsHandler)
		api.GET("/:id", hb.Reviews.GetReviewHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserService))
		protected.POST("", middleware.RequirePermission("createReview"), hb.Reviews.CreateReviewHandler)
		protected.PATCH("/:id", hb.Reviews.UpdateReviewHandler)
		protected.DELETE("/:id", hb.Reviews.DeleteReviewHandler)
	}
}

// RegisterProfileRoutes registers profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profiles")
	api.Use(middleware.JWTAuthMiddleware(hb.UserService))
	{
		api.POST("", hb.Profiles.CreateProfileHandler)
		api.GET("/me", hb.Profiles.GetMyProfileHandler)
		api.GET("", middleware.RequirePermission("manageProfiles"), hb.Profiles.GetProfilesHandler)
		api.GET("/:id", hb.Profiles.GetProfileHandler)
		api.PATCH("/:id", hb.Profiles.UpdateProfileHandler)
		api.PATCH("/:id/photo", hb.Profiles.UploadProfilePhotoHandler)
		api.DELETE("/:id", hb.Profiles.DeactivateProfileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDestinationRoutes(r, hb)
	RegisterAttractionRoutes(r, hb)
	RegisterTourRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
}
