package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Fred-Edwin/Taka-Tena/database"
	"github.com/Fred-Edwin/Taka-Tena/handlers"
	"github.com/Fred-Edwin/Taka-Tena/middleware"
)

// SetupRouter wires the middleware stack and every API route onto a Gin
// engine. The store and Cloudinary client are constructed once in main
// and injected here.
func SetupRouter(store *database.Store, jwtSecret string, cld *cloudinary.Cloudinary) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "https://takatena.co.ke"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.RateLimit(middleware.NewIPRateLimiter(60, time.Minute)))

	auth := &handlers.AuthHandler{Store: store, JWTSecret: jwtSecret}
	listings := &handlers.ListingHandler{Store: store}
	search := &handlers.SearchHandler{Store: store}
	users := &handlers.UserHandler{Store: store}
	impact := &handlers.ImpactHandler{Store: store}
	upload := &handlers.UploadHandler{Cloudinary: cld}

	// Public routes (no auth required)
	router.POST("/api/auth/signup", auth.Signup)
	router.POST("/api/auth/login", auth.Login)
	router.GET("/api/listings", listings.List)
	router.GET("/api/listings/:id", listings.Get)
	router.GET("/api/search", search.Search)
	router.GET("/api/users/:id", users.Get)
	router.GET("/api/impact", impact.Global)

	// Protected routes group
	protected := router.Group("/api")
	protected.Use(middleware.JWTAuth(jwtSecret))

	protected.POST("/listings", listings.Create)
	protected.PATCH("/listings/:id", listings.Update)
	protected.DELETE("/listings/:id", listings.Delete)

	protected.GET("/users/me", users.Me)
	protected.PATCH("/users/me", users.UpdateMe)

	protected.POST("/upload", upload.Upload)

	// JSON 404 for undefined API routes
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Endpoint not found",
				"path":    c.Request.URL.Path,
				"message": "Check the API documentation for available endpoints",
			})
			return
		}
		c.Next()
	})

	return router
}
