package database

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Fred-Edwin/Taka-Tena/models"
)

func searchResult(id primitive.ObjectID, title string) ListingWithUser {
	return ListingWithUser{Listing: models.Listing{ID: id, Title: title}}
}

// TestMergeSearchResultsExactFirst ensures tier order is preserved: exact
// title matches come before partial matches.
func TestMergeSearchResultsExactFirst(t *testing.T) {
	exactID := primitive.NewObjectID()
	partialA := primitive.NewObjectID()
	partialB := primitive.NewObjectID()

	merged := mergeSearchResults(
		[]ListingWithUser{searchResult(exactID, "bottles")},
		[]ListingWithUser{searchResult(partialA, "plastic bottles"), searchResult(partialB, "bottle caps")},
	)

	if len(merged) != 3 {
		t.Fatalf("expected 3 results, got %d", len(merged))
	}
	if merged[0].ID != exactID {
		t.Fatalf("expected exact match first, got %v", merged[0].ID)
	}
	if merged[1].ID != partialA || merged[2].ID != partialB {
		t.Fatalf("partial matches out of order: %v", merged)
	}
}

// TestMergeSearchResultsDeduplicates ensures a listing matching both tiers
// appears once, in its tier-1 position.
func TestMergeSearchResultsDeduplicates(t *testing.T) {
	shared := primitive.NewObjectID()
	other := primitive.NewObjectID()

	merged := mergeSearchResults(
		[]ListingWithUser{searchResult(shared, "bottles")},
		[]ListingWithUser{searchResult(shared, "bottles"), searchResult(other, "glass bottles")},
	)

	if len(merged) != 2 {
		t.Fatalf("expected 2 unique results, got %d", len(merged))
	}
	if merged[0].ID != shared {
		t.Fatalf("expected duplicated listing in first position, got %v", merged[0].ID)
	}
	if merged[1].ID != other {
		t.Fatalf("expected other listing second, got %v", merged[1].ID)
	}
}

// TestMergeSearchResultsCap ensures the combined list never exceeds the
// overall result cap.
func TestMergeSearchResultsCap(t *testing.T) {
	exact := make([]ListingWithUser, exactMatchLimit)
	for i := range exact {
		exact[i] = searchResult(primitive.NewObjectID(), "exact")
	}
	partial := make([]ListingWithUser, partialMatchLimit+10)
	for i := range partial {
		partial[i] = searchResult(primitive.NewObjectID(), "partial")
	}

	merged := mergeSearchResults(exact, partial)
	if len(merged) != maxSearchResults {
		t.Fatalf("expected %d results, got %d", maxSearchResults, len(merged))
	}
	for i, want := range exact {
		if merged[i].ID != want.ID {
			t.Fatalf("exact match %d displaced: got %v", i, merged[i].ID)
		}
	}
}

// TestMergeSearchResultsEmptyTiers ensures empty input yields an empty,
// non-nil slice.
func TestMergeSearchResultsEmptyTiers(t *testing.T) {
	merged := mergeSearchResults(nil, nil)
	if merged == nil {
		t.Fatal("expected non-nil slice")
	}
	if len(merged) != 0 {
		t.Fatalf("expected no results, got %d", len(merged))
	}
}
