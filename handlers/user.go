package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Fred-Edwin/Taka-Tena/database"
	"github.com/Fred-Edwin/Taka-Tena/models"
)

type UserHandler struct {
	Store *database.Store
}

// publicListingLimit caps the listings shown on a public profile.
const publicListingLimit = 12

type userWithStats struct {
	models.User
	Stats *models.ListingStats `json:"stats"`
}

// GET /api/users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	user, err := h.Store.FindUserByID(ctx, userID)
	if err == database.ErrNotFound {
		notFound(c, "User")
		return
	}
	if err != nil {
		storeFailed(c, "fetch user data", err)
		return
	}

	stats, err := h.Store.UserListingStats(ctx, userID)
	if err != nil {
		storeFailed(c, "fetch user data", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": userWithStats{User: *user, Stats: stats},
	})
}

type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Phone    *string `json:"phone"`
	Whatsapp *string `json:"whatsapp"`
}

func (r *UpdateProfileRequest) validate() []FieldError {
	var details []FieldError

	if r.Name != nil {
		if *r.Name == "" {
			details = append(details, FieldError{"name", "Name is required"})
		} else if len(*r.Name) > 100 {
			details = append(details, FieldError{"name", "Name must be less than 100 characters"})
		}
	}
	if r.Location != nil {
		if *r.Location == "" {
			details = append(details, FieldError{"location", "Location is required"})
		} else if len(*r.Location) > 100 {
			details = append(details, FieldError{"location", "Location must be less than 100 characters"})
		}
	}
	if r.Phone != nil && len(*r.Phone) > 20 {
		details = append(details, FieldError{"phone", "Phone must be less than 20 characters"})
	}
	if r.Whatsapp != nil && len(*r.Whatsapp) > 20 {
		details = append(details, FieldError{"whatsapp", "WhatsApp must be less than 20 characters"})
	}

	return details
}

func (r *UpdateProfileRequest) patch() database.UserPatch {
	patch := database.UserPatch{
		Name:     r.Name,
		Location: r.Location,
	}
	// An empty string clears the contact field; absence leaves it alone.
	if r.Phone != nil {
		value := r.Phone
		if *value == "" {
			value = nil
		}
		patch.Phone = &value
	}
	if r.Whatsapp != nil {
		value := r.Whatsapp
		if *value == "" {
			value = nil
		}
		patch.Whatsapp = &value
	}
	return patch
}

// PATCH /api/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON format")
		return
	}

	if details := req.validate(); details != nil {
		validationFailed(c, details)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	updated, err := h.Store.UpdateUser(ctx, userID, req.patch())
	if err == database.ErrNotFound {
		notFound(c, "User")
		return
	}
	if err != nil {
		storeFailed(c, "update profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    updated,
	})
}

// publicProfile is a user as shown to everyone: contact details for
// arranging an exchange, but no email address.
type publicProfile struct {
	ID        primitive.ObjectID   `json:"id"`
	Name      string               `json:"name"`
	UserType  models.UserType      `json:"userType"`
	Location  string               `json:"location"`
	Phone     *string              `json:"phone,omitempty"`
	Whatsapp  *string              `json:"whatsapp,omitempty"`
	Verified  bool                 `json:"verified"`
	CreatedAt time.Time            `json:"createdAt"`
	Stats     *models.ListingStats `json:"stats"`
}

// GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		notFound(c, "User")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	user, err := h.Store.FindUserByID(ctx, id)
	if err == database.ErrNotFound {
		notFound(c, "User")
		return
	}
	if err != nil {
		storeFailed(c, "fetch user profile", err)
		return
	}

	listings, err := h.Store.FindUserListings(ctx, id, models.StatusAvailable, publicListingLimit)
	if err != nil {
		storeFailed(c, "fetch user profile", err)
		return
	}

	stats, err := h.Store.UserListingStats(ctx, id)
	if err != nil {
		storeFailed(c, "fetch user profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": publicProfile{
			ID:        user.ID,
			Name:      user.Name,
			UserType:  user.UserType,
			Location:  user.Location,
			Phone:     user.Phone,
			Whatsapp:  user.Whatsapp,
			Verified:  user.Verified,
			CreatedAt: user.CreatedAt,
			Stats:     stats,
		},
		"listings": listings,
	})
}
