package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	Cloudinary *cloudinary.Cloudinary
}

const maxImageSize = 2 << 20 // 2MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// POST /api/upload
func (h *UploadHandler) Upload(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	if h.Cloudinary == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image uploads are not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "No file provided")
		return
	}

	if fileHeader.Size > maxImageSize {
		badRequest(c, "Image must be smaller than 2MB")
		return
	}

	if !allowedImageTypes[fileHeader.Header.Get("Content-Type")] {
		badRequest(c, "Only JPEG, PNG and WebP images are allowed")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		badRequest(c, "Failed to read file")
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := h.Cloudinary.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         "takatena/listings",
		PublicID:       userID.Hex() + "_" + time.Now().Format("20060102150405"),
		Transformation: "c_limit,w_800,q_auto",
	})
	if err != nil {
		storeFailed(c, "upload image", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": result.SecureURL})
}
