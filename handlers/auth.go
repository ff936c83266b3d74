package handlers

import (
	"context"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Fred-Edwin/Taka-Tena/database"
	"github.com/Fred-Edwin/Taka-Tena/middleware"
	"github.com/Fred-Edwin/Taka-Tena/models"
)

type AuthHandler struct {
	Store     *database.Store
	JWTSecret string
}

type SignupRequest struct {
	Email           string          `json:"email"`
	Password        string          `json:"password"`
	ConfirmPassword string          `json:"confirmPassword"`
	Name            string          `json:"name"`
	UserType        models.UserType `json:"userType"`
	Location        string          `json:"location"`
	Phone           string          `json:"phone"`
	Whatsapp        string          `json:"whatsapp"`
}

func (r *SignupRequest) validate() []FieldError {
	var details []FieldError

	if _, err := mail.ParseAddress(r.Email); err != nil {
		details = append(details, FieldError{"email", "Please enter a valid email address"})
	}
	if len(r.Password) < 8 {
		details = append(details, FieldError{"password", "Password must be at least 8 characters"})
	}
	if r.Password != r.ConfirmPassword {
		details = append(details, FieldError{"confirmPassword", "Passwords don't match"})
	}
	if len(r.Name) < 2 {
		details = append(details, FieldError{"name", "Name must be at least 2 characters"})
	}
	if len(r.Name) > 100 {
		details = append(details, FieldError{"name", "Name must be less than 100 characters"})
	}
	if !r.UserType.Valid() {
		details = append(details, FieldError{"userType", "Please select a user type"})
	}
	if r.Location == "" {
		details = append(details, FieldError{"location", "Location is required"})
	}
	if len(r.Phone) > 20 {
		details = append(details, FieldError{"phone", "Phone must be less than 20 characters"})
	}
	if len(r.Whatsapp) > 20 {
		details = append(details, FieldError{"whatsapp", "WhatsApp must be less than 20 characters"})
	}

	return details
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
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

	email := strings.ToLower(req.Email)

	_, err := h.Store.FindUserByEmail(ctx, email)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
		return
	}
	if err != database.ErrNotFound {
		storeFailed(c, "create account", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		storeFailed(c, "create account", err)
		return
	}

	user := models.User{
		ID:           primitive.NewObjectID(),
		Email:        email,
		PasswordHash: string(hashed),
		Name:         req.Name,
		UserType:     req.UserType,
		Location:     req.Location,
		CreatedAt:    time.Now().UTC(),
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}
	if req.Whatsapp != "" {
		user.Whatsapp = &req.Whatsapp
	}

	if err := h.Store.InsertUser(ctx, &user); err != nil {
		storeFailed(c, "create account", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON format")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	user, err := h.Store.FindUserByEmail(ctx, strings.ToLower(req.Email))
	if err == database.ErrNotFound {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err != nil {
		storeFailed(c, "log in", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.issueToken(user.ID.Hex())
	if err != nil {
		storeFailed(c, "log in", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// issueToken signs a 24h HS256 session token carrying the user's id.
func (h *AuthHandler) issueToken(userID string) (string, error) {
	claims := &middleware.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.JWTSecret))
}
