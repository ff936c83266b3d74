package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Fred-Edwin/Taka-Tena/database"
	"github.com/Fred-Edwin/Taka-Tena/routes"
)

func main() {
	log.Println("Starting TakaTena API server...")

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	mongoURI := os.Getenv("MONGODB_URI")
	if jwtSecret == "" || mongoURI == "" {
		log.Fatal("JWT_SECRET and MONGODB_URI must be set")
	}

	log.Println("Connecting to MongoDB...")

	var store *database.Store
	var dbErr error
	for i := 1; i <= 3; i++ {
		store, dbErr = database.Connect(mongoURI)
		if dbErr == nil {
			break
		}
		log.Printf("MongoDB connection attempt %d failed: %v", i, dbErr)
		time.Sleep(2 * time.Second)
	}
	if dbErr != nil {
		log.Fatal("Failed to connect to MongoDB: ", dbErr)
	}
	defer store.Disconnect()

	// Cloudinary is only needed for image uploads; the rest of the API
	// works without it.
	var cld *cloudinary.Cloudinary
	if url := os.Getenv("CLOUDINARY_URL"); url != "" {
		var err error
		cld, err = cloudinary.NewFromURL(url)
		if err != nil {
			log.Fatal("Invalid CLOUDINARY_URL: ", err)
		}
	} else {
		log.Println("CLOUDINARY_URL not set, image uploads disabled")
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRouter(store, jwtSecret, cld)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "TakaTena API running",
			"service": "healthy",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			c.String(http.StatusServiceUnavailable, "database unreachable")
			return
		}
		c.String(http.StatusOK, "OK")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown:", err)
	}

	log.Println("Server stopped gracefully")
}
