package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Fred-Edwin/Taka-Tena/models"
)

// ListingWithUser is a listing joined with its owner's contact card.
type ListingWithUser struct {
	models.Listing `bson:",inline"`
	User           *models.PublicUser `bson:"user" json:"user,omitempty"`
}

// ownerLookupStages joins the owning user onto each listing, keeping
// listings whose owner record is missing.
func ownerLookupStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "userId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$user"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

// FindListings returns one page of listings matching the filter, most
// recent first, together with the full matching count.
func (s *Store) FindListings(ctx context.Context, filter ListingFilter, page PageRequest) (*ListingPage, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	predicate := filter.Predicate()

	total, err := s.Listings.CountDocuments(ctx, predicate)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: predicate}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: page.Skip()}},
		{{Key: "$limit", Value: int64(page.Limit)}},
	}
	pipeline = append(pipeline, ownerLookupStages()...)

	cursor, err := s.Listings.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	listings := []ListingWithUser{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, err
	}

	return &ListingPage{
		Listings:   listings,
		Total:      total,
		Page:       page.page(),
		TotalPages: TotalPages(total, page.Limit),
	}, nil
}

// FindListingByID fetches a single listing with its owner attached.
func (s *Store) FindListingByID(ctx context.Context, id primitive.ObjectID) (*ListingWithUser, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
	}
	pipeline = append(pipeline, ownerLookupStages()...)

	cursor, err := s.Listings.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []ListingWithUser
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}
	return &results[0], nil
}

// IncrementViews bumps the view counter by one in a single atomic update.
func (s *Store) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.Listings.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}},
	)
	return err
}

// InsertListing persists a new listing.
func (s *Store) InsertListing(ctx context.Context, listing *models.Listing) error {
	_, err := s.Listings.InsertOne(ctx, listing)
	return err
}

// ListingPatch carries the mutable listing fields of a partial update.
// Nil fields are left untouched.
type ListingPatch struct {
	Title        *string
	Description  *string
	MaterialType *models.MaterialType
	Quantity     *float64
	Unit         *models.Unit
	Location     *string
	Images       []string
	Status       *models.ListingStatus
}

func (p ListingPatch) setFields(now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.MaterialType != nil {
		set["materialType"] = *p.MaterialType
	}
	if p.Quantity != nil {
		set["quantity"] = *p.Quantity
	}
	if p.Unit != nil {
		set["unit"] = *p.Unit
	}
	if p.Location != nil {
		set["location"] = *p.Location
	}
	if p.Images != nil {
		set["images"] = p.Images
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	return set
}

// UpdateListing applies a partial update and returns the updated record.
// updatedAt is always refreshed, even for an empty patch.
func (s *Store) UpdateListing(ctx context.Context, id primitive.ObjectID, patch ListingPatch) (*models.Listing, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Listing
	err := s.Listings.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": patch.setFields(time.Now().UTC())},
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

// DeleteListing removes a listing permanently.
func (s *Store) DeleteListing(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.Listings.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindListingLean fetches a listing without the owner join, for ownership
// checks before a mutation.
func (s *Store) FindListingLean(ctx context.Context, id primitive.ObjectID) (*models.Listing, error) {
	var listing models.Listing
	err := s.Listings.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// CountListings counts listings matching the filter, ignoring pagination.
func (s *Store) CountListings(ctx context.Context, filter ListingFilter) (int64, error) {
	return s.Listings.CountDocuments(ctx, filter.Predicate())
}

// FindUserListings returns a user's most recent listings, optionally
// restricted by status, without the owner join.
func (s *Store) FindUserListings(ctx context.Context, userID primitive.ObjectID, status models.ListingStatus, limit int64) ([]models.Listing, error) {
	filter := ListingFilter{UserID: &userID, Status: status}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.Listings.Find(ctx, filter.Predicate(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	listings := []models.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}
