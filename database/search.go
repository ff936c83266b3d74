package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Fred-Edwin/Taka-Tena/models"
)

// Search result caps: exact title matches rank first, then partial
// matches across title, description, and location.
const (
	exactMatchLimit   = 5
	partialMatchLimit = 15
	maxSearchResults  = 20
)

// SearchListings runs the two-tier relevance search for a trimmed,
// non-empty query. Only AVAILABLE listings are considered; completed
// listings never appear in search no matter how well they match.
func (s *Store) SearchListings(ctx context.Context, query string) ([]ListingWithUser, error) {
	exact, err := s.searchTier(ctx, bson.M{
		"status": models.StatusAvailable,
		"title":  equalsPattern(query),
	}, exactMatchLimit)
	if err != nil {
		return nil, err
	}

	partial, err := s.searchTier(ctx, bson.M{
		"status": models.StatusAvailable,
		"$or": bson.A{
			bson.M{"title": containsPattern(query)},
			bson.M{"description": containsPattern(query)},
			bson.M{"location": containsPattern(query)},
		},
	}, partialMatchLimit)
	if err != nil {
		return nil, err
	}

	return mergeSearchResults(exact, partial), nil
}

func (s *Store) searchTier(ctx context.Context, predicate bson.M, limit int64) ([]ListingWithUser, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: predicate}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}
	pipeline = append(pipeline, ownerLookupStages()...)

	cursor, err := s.Listings.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []ListingWithUser{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// mergeSearchResults concatenates the tiers exact-first, drops duplicate
// ids keeping the first occurrence, and caps the combined list. A listing
// matching both tiers therefore appears once, in its tier-1 position.
func mergeSearchResults(exact, partial []ListingWithUser) []ListingWithUser {
	merged := []ListingWithUser{}
	seen := make(map[string]bool, len(exact)+len(partial))

	for _, tier := range [][]ListingWithUser{exact, partial} {
		for _, listing := range tier {
			id := listing.ID.Hex()
			if seen[id] {
				continue
			}
			seen[id] = true
			merged = append(merged, listing)
			if len(merged) == maxSearchResults {
				return merged
			}
		}
	}
	return merged
}
