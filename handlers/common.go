package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// dbTimeout bounds every store call made from a handler.
const dbTimeout = 10 * time.Second

// FieldError is one entry of a validation error's per-field breakdown.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func validationFailed(c *gin.Context, details []FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Validation failed",
		"details": details,
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

func notFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
}

func forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"error": message})
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
}

// storeFailed logs the underlying store error and answers with a generic
// 500; internal detail never reaches the caller.
func storeFailed(c *gin.Context, op string, err error) {
	log.Printf("[%s] store error: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + op + ". Please try again."})
}

// currentUserID reads the authenticated user's id placed in the context by
// the JWT middleware. Identity is trusted; it was verified upstream.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	idStr := c.GetString("userId")
	if idStr == "" {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
