package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaterialType categorizes the kind of waste a listing offers.
type MaterialType string

const (
	MaterialPlastic      MaterialType = "PLASTIC"
	MaterialOrganic      MaterialType = "ORGANIC"
	MaterialConstruction MaterialType = "CONSTRUCTION"
	MaterialEwaste       MaterialType = "EWASTE"
)

func (m MaterialType) Valid() bool {
	switch m {
	case MaterialPlastic, MaterialOrganic, MaterialConstruction, MaterialEwaste:
		return true
	}
	return false
}

// MaterialTypes lists every material category in display order.
var MaterialTypes = []MaterialType{MaterialPlastic, MaterialOrganic, MaterialConstruction, MaterialEwaste}

// Unit is the quantity unit a listing is measured in.
type Unit string

const (
	UnitKG     Unit = "KG"
	UnitTonnes Unit = "TONNES"
	UnitPieces Unit = "PIECES"
	UnitLiters Unit = "LITERS"
	UnitBags   Unit = "BAGS"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitKG, UnitTonnes, UnitPieces, UnitLiters, UnitBags:
		return true
	}
	return false
}

// ListingStatus is the lifecycle state of a listing. Listings start
// AVAILABLE and may move to COMPLETED exactly once; there is no way back.
type ListingStatus string

const (
	StatusAvailable ListingStatus = "AVAILABLE"
	StatusCompleted ListingStatus = "COMPLETED"
)

func (s ListingStatus) Valid() bool {
	return s == StatusAvailable || s == StatusCompleted
}

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MaxImagesPerListing  = 2
)

type Listing struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	MaterialType MaterialType       `bson:"materialType" json:"materialType"`
	Quantity     float64            `bson:"quantity" json:"quantity"`
	Unit         Unit               `bson:"unit" json:"unit"`
	Location     string             `bson:"location" json:"location"`
	Images       []string           `bson:"images" json:"images"`
	Status       ListingStatus      `bson:"status" json:"status"`
	Views        int64              `bson:"views" json:"views"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
