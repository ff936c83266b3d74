package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Fred-Edwin/Taka-Tena/database"
	"github.com/Fred-Edwin/Taka-Tena/models"
)

type ListingHandler struct {
	Store *database.Store
}

type CreateListingRequest struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	MaterialType models.MaterialType `json:"materialType"`
	Quantity     float64             `json:"quantity"`
	Unit         models.Unit         `json:"unit"`
	Location     string              `json:"location"`
	Images       []string            `json:"images"`
}

func validImageURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (r *CreateListingRequest) validate() []FieldError {
	var details []FieldError

	if r.Title == "" {
		details = append(details, FieldError{"title", "Title is required"})
	} else if len(r.Title) > models.MaxTitleLength {
		details = append(details, FieldError{"title", "Title must be less than 100 characters"})
	}
	if r.Description == "" {
		details = append(details, FieldError{"description", "Description is required"})
	} else if len(r.Description) > models.MaxDescriptionLength {
		details = append(details, FieldError{"description", "Description must be less than 500 characters"})
	}
	if !r.MaterialType.Valid() {
		details = append(details, FieldError{"materialType", "Material type is required"})
	}
	if r.Quantity <= 0 {
		details = append(details, FieldError{"quantity", "Quantity must be positive"})
	}
	if !r.Unit.Valid() {
		details = append(details, FieldError{"unit", "Unit is required"})
	}
	if r.Location == "" {
		details = append(details, FieldError{"location", "Location is required"})
	}
	if len(r.Images) > models.MaxImagesPerListing {
		details = append(details, FieldError{"images", "Maximum 2 images allowed"})
	}
	for _, img := range r.Images {
		if !validImageURL(img) {
			details = append(details, FieldError{"images", "Images must be valid URLs"})
			break
		}
	}

	return details
}

// POST /api/listings
func (h *ListingHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON format")
		return
	}

	if details := req.validate(); details != nil {
		validationFailed(c, details)
		return
	}

	images := req.Images
	if images == nil {
		images = []string{}
	}

	now := time.Now().UTC()
	listing := models.Listing{
		ID:           primitive.NewObjectID(),
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		MaterialType: req.MaterialType,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		Location:     req.Location,
		Images:       images,
		Status:       models.StatusAvailable,
		Views:        0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	if err := h.Store.InsertListing(ctx, &listing); err != nil {
		storeFailed(c, "create listing", err)
		return
	}

	owner, err := h.Store.FindUserByID(ctx, userID)
	if err != nil {
		storeFailed(c, "create listing", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Listing created successfully",
		"listing": database.ListingWithUser{Listing: listing, User: owner.Public()},
	})
}

// parseListQuery maps the browse query parameters onto a filter and a page
// request. Unknown or malformed filter values impose no constraint.
func parseListQuery(c *gin.Context) (database.ListingFilter, database.PageRequest, []FieldError) {
	filter := database.ListingFilter{}

	if v := models.MaterialType(c.Query("materialType")); v.Valid() {
		filter.MaterialType = v
	}
	if v := models.ListingStatus(c.Query("status")); v.Valid() {
		filter.Status = v
	}
	filter.Location = c.Query("location")
	filter.Search = c.Query("search")
	if v := c.Query("userId"); v != "" {
		if id, err := primitive.ObjectIDFromHex(v); err == nil {
			filter.UserID = &id
		}
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(database.DefaultPageSize)))
	if err != nil || limit <= 0 {
		return filter, database.PageRequest{}, []FieldError{{"limit", "limit must be a positive number"}}
	}

	return filter, database.PageRequest{Page: page, Limit: limit}, nil
}

// GET /api/listings
func (h *ListingHandler) List(c *gin.Context) {
	filter, page, details := parseListQuery(c)
	if details != nil {
		validationFailed(c, details)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	result, err := h.Store.FindListings(ctx, filter, page)
	if err != nil {
		storeFailed(c, "fetch listings", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GET /api/listings/:id
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		notFound(c, "Listing")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	listing, err := h.Store.FindListingByID(ctx, id)
	if err == database.ErrNotFound {
		notFound(c, "Listing")
		return
	}
	if err != nil {
		storeFailed(c, "fetch listing", err)
		return
	}

	if err := h.Store.IncrementViews(ctx, id); err != nil {
		storeFailed(c, "fetch listing", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

type UpdateListingRequest struct {
	Title        *string               `json:"title"`
	Description  *string               `json:"description"`
	MaterialType *models.MaterialType  `json:"materialType"`
	Quantity     *float64              `json:"quantity"`
	Unit         *models.Unit          `json:"unit"`
	Location     *string               `json:"location"`
	Images       []string              `json:"images"`
	Status       *models.ListingStatus `json:"status"`
}

func (r *UpdateListingRequest) validate(current models.ListingStatus) []FieldError {
	var details []FieldError

	if r.Title != nil {
		if *r.Title == "" {
			details = append(details, FieldError{"title", "Title is required"})
		} else if len(*r.Title) > models.MaxTitleLength {
			details = append(details, FieldError{"title", "Title must be less than 100 characters"})
		}
	}
	if r.Description != nil {
		if *r.Description == "" {
			details = append(details, FieldError{"description", "Description is required"})
		} else if len(*r.Description) > models.MaxDescriptionLength {
			details = append(details, FieldError{"description", "Description must be less than 500 characters"})
		}
	}
	if r.MaterialType != nil && !r.MaterialType.Valid() {
		details = append(details, FieldError{"materialType", "Invalid material type"})
	}
	if r.Quantity != nil && *r.Quantity <= 0 {
		details = append(details, FieldError{"quantity", "Quantity must be positive"})
	}
	if r.Unit != nil && !r.Unit.Valid() {
		details = append(details, FieldError{"unit", "Invalid unit"})
	}
	if r.Location != nil && *r.Location == "" {
		details = append(details, FieldError{"location", "Location is required"})
	}
	if len(r.Images) > models.MaxImagesPerListing {
		details = append(details, FieldError{"images", "Maximum 2 images allowed"})
	}
	for _, img := range r.Images {
		if !validImageURL(img) {
			details = append(details, FieldError{"images", "Images must be valid URLs"})
			break
		}
	}
	if r.Status != nil {
		if !r.Status.Valid() {
			details = append(details, FieldError{"status", "Invalid status"})
		} else if current == models.StatusCompleted && *r.Status == models.StatusAvailable {
			// Completion is one-way; a completed exchange cannot reopen.
			details = append(details, FieldError{"status", "A completed listing cannot be made available again"})
		}
	}

	return details
}

func (r *UpdateListingRequest) patch() database.ListingPatch {
	return database.ListingPatch{
		Title:        r.Title,
		Description:  r.Description,
		MaterialType: r.MaterialType,
		Quantity:     r.Quantity,
		Unit:         r.Unit,
		Location:     r.Location,
		Images:       r.Images,
		Status:       r.Status,
	}
}

// PATCH /api/listings/:id
func (h *ListingHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		notFound(c, "Listing")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	existing, err := h.Store.FindListingLean(ctx, id)
	if err == database.ErrNotFound {
		notFound(c, "Listing")
		return
	}
	if err != nil {
		storeFailed(c, "update listing", err)
		return
	}

	if existing.UserID != userID {
		forbidden(c, "You can only edit your own listings")
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON format")
		return
	}

	if details := req.validate(existing.Status); details != nil {
		validationFailed(c, details)
		return
	}

	updated, err := h.Store.UpdateListing(ctx, id, req.patch())
	if err == database.ErrNotFound {
		// Deleted between the ownership check and the write.
		notFound(c, "Listing")
		return
	}
	if err != nil {
		storeFailed(c, "update listing", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Listing updated successfully",
		"listing": updated,
	})
}

// DELETE /api/listings/:id
func (h *ListingHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		notFound(c, "Listing")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	existing, err := h.Store.FindListingLean(ctx, id)
	if err == database.ErrNotFound {
		notFound(c, "Listing")
		return
	}
	if err != nil {
		storeFailed(c, "delete listing", err)
		return
	}

	if existing.UserID != userID {
		forbidden(c, "You can only delete your own listings")
		return
	}

	if err := h.Store.DeleteListing(ctx, id); err != nil && err != database.ErrNotFound {
		storeFailed(c, "delete listing", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted successfully"})
}
