package database

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Fred-Edwin/Taka-Tena/models"
)

// ListingFilter holds the optional browse criteria. Zero-valued fields
// impose no constraint; present fields are ANDed together. Search matches
// title OR description as a case-insensitive substring.
type ListingFilter struct {
	MaterialType models.MaterialType
	Status       models.ListingStatus
	Location     string
	Search       string
	UserID       *primitive.ObjectID
}

// containsPattern builds a case-insensitive substring match. The input is
// quoted so user text is never interpreted as a regular expression.
func containsPattern(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// equalsPattern builds a case-insensitive whole-string match.
func equalsPattern(s string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(s) + "$", Options: "i"}
}

// Predicate compiles the filter into a MongoDB query document.
func (f ListingFilter) Predicate() bson.M {
	query := bson.M{}

	if f.MaterialType != "" {
		query["materialType"] = f.MaterialType
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.Location != "" {
		query["location"] = containsPattern(f.Location)
	}
	if f.UserID != nil {
		query["userId"] = *f.UserID
	}
	if f.Search != "" {
		query["$or"] = bson.A{
			bson.M{"title": containsPattern(f.Search)},
			bson.M{"description": containsPattern(f.Search)},
		}
	}

	return query
}
