package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserType describes who is posting or collecting materials.
type UserType string

const (
	UserIndividual   UserType = "INDIVIDUAL"
	UserBusiness     UserType = "BUSINESS"
	UserRecycler     UserType = "RECYCLER"
	UserArtisan      UserType = "ARTISAN"
	UserManufacturer UserType = "MANUFACTURER"
)

func (t UserType) Valid() bool {
	switch t {
	case UserIndividual, UserBusiness, UserRecycler, UserArtisan, UserManufacturer:
		return true
	}
	return false
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Name         string             `bson:"name" json:"name"`
	UserType     UserType           `bson:"userType" json:"userType"`
	Location     string             `bson:"location" json:"location"`
	Phone        *string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Whatsapp     *string            `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
	Verified     bool               `bson:"verified" json:"verified"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// PublicUser is the owner payload attached to listings: enough to contact
// the owner, nothing more. Email is included because exchange happens
// off-platform.
type PublicUser struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Name     string             `bson:"name" json:"name"`
	UserType UserType           `bson:"userType" json:"userType"`
	Location string             `bson:"location" json:"location"`
	Phone    *string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Whatsapp *string            `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
	Email    string             `bson:"email" json:"email"`
}

// Public strips the credential and audit fields from a full user record.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:       u.ID,
		Name:     u.Name,
		UserType: u.UserType,
		Location: u.Location,
		Phone:    u.Phone,
		Whatsapp: u.Whatsapp,
		Email:    u.Email,
	}
}

// ListingStats summarizes a user's posting activity.
type ListingStats struct {
	TotalListings     int64 `json:"totalListings"`
	CompletedListings int64 `json:"completedListings"`
}
