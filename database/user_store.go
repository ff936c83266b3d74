package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Fred-Edwin/Taka-Tena/models"
)

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.Users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) InsertUser(ctx context.Context, user *models.User) error {
	_, err := s.Users.InsertOne(ctx, user)
	return err
}

// UserPatch carries the profile fields a user may change. Phone and
// whatsapp distinguish "leave alone" (nil outer pointer) from "clear"
// (pointer to nil).
type UserPatch struct {
	Name     *string
	Location *string
	Phone    **string
	Whatsapp **string
}

func (p UserPatch) setFields() bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Location != nil {
		set["location"] = *p.Location
	}
	if p.Phone != nil {
		set["phone"] = *p.Phone
	}
	if p.Whatsapp != nil {
		set["whatsapp"] = *p.Whatsapp
	}
	return set
}

// UpdateUser applies a partial profile update and returns the new record.
func (s *Store) UpdateUser(ctx context.Context, id primitive.ObjectID, patch UserPatch) (*models.User, error) {
	set := patch.setFields()
	if len(set) == 0 {
		return s.FindUserByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.User
	err := s.Users.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		opts,
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UserListingStats counts a user's listings overall and completed.
func (s *Store) UserListingStats(ctx context.Context, userID primitive.ObjectID) (*models.ListingStats, error) {
	total, err := s.Listings.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	completed, err := s.Listings.CountDocuments(ctx, bson.M{
		"userId": userID,
		"status": models.StatusCompleted,
	})
	if err != nil {
		return nil, err
	}
	return &models.ListingStats{TotalListings: total, CompletedListings: completed}, nil
}

// CountActiveUsers counts distinct users holding at least one listing.
func (s *Store) CountActiveUsers(ctx context.Context) (int64, error) {
	ids, err := s.Listings.Distinct(ctx, "userId", bson.M{})
	if err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}
