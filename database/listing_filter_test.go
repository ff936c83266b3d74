package database

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Fred-Edwin/Taka-Tena/models"
)

// TestPredicateEmptyFilter ensures an empty filter imposes no constraint.
func TestPredicateEmptyFilter(t *testing.T) {
	got := ListingFilter{}.Predicate()
	if len(got) != 0 {
		t.Fatalf("expected empty predicate, got %v", got)
	}
}

// TestPredicateSingleCriteria checks each criterion compiles on its own.
func TestPredicateSingleCriteria(t *testing.T) {
	userID := primitive.NewObjectID()

	tcs := []struct {
		name   string
		filter ListingFilter
		want   bson.M
	}{
		{
			name:   "material type equality",
			filter: ListingFilter{MaterialType: models.MaterialPlastic},
			want:   bson.M{"materialType": models.MaterialPlastic},
		},
		{
			name:   "status equality",
			filter: ListingFilter{Status: models.StatusAvailable},
			want:   bson.M{"status": models.StatusAvailable},
		},
		{
			name:   "location case-insensitive contains",
			filter: ListingFilter{Location: "Westlands"},
			want:   bson.M{"location": primitive.Regex{Pattern: "Westlands", Options: "i"}},
		},
		{
			name:   "owner equality",
			filter: ListingFilter{UserID: &userID},
			want:   bson.M{"userId": userID},
		},
		{
			name:   "search over title or description",
			filter: ListingFilter{Search: "bottles"},
			want: bson.M{"$or": bson.A{
				bson.M{"title": primitive.Regex{Pattern: "bottles", Options: "i"}},
				bson.M{"description": primitive.Regex{Pattern: "bottles", Options: "i"}},
			}},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.filter.Predicate()
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Predicate() = %v, want %v", got, tc.want)
			}
		})
	}
}

// TestPredicateCombinesWithAnd ensures every present criterion lands in
// the same top-level document, which MongoDB treats as a conjunction.
func TestPredicateCombinesWithAnd(t *testing.T) {
	userID := primitive.NewObjectID()
	filter := ListingFilter{
		MaterialType: models.MaterialOrganic,
		Status:       models.StatusAvailable,
		Location:     "Nairobi",
		Search:       "compost",
		UserID:       &userID,
	}

	got := filter.Predicate()
	if len(got) != 5 {
		t.Fatalf("expected 5 top-level criteria, got %d: %v", len(got), got)
	}
	for _, key := range []string{"materialType", "status", "location", "userId", "$or"} {
		if _, ok := got[key]; !ok {
			t.Fatalf("predicate missing %q: %v", key, got)
		}
	}
}

// TestPredicateQuotesRegexMetacharacters ensures user text is matched
// literally, never interpreted as a regular expression.
func TestPredicateQuotesRegexMetacharacters(t *testing.T) {
	got := ListingFilter{Location: "a.b*c"}.Predicate()
	regex, ok := got["location"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected regex predicate, got %T", got["location"])
	}
	if regex.Pattern != `a\.b\*c` {
		t.Fatalf("expected quoted pattern, got %q", regex.Pattern)
	}
}

// TestEqualsPatternAnchors ensures exact matching is whole-string.
func TestEqualsPatternAnchors(t *testing.T) {
	regex := equalsPattern("Plastic bottles")
	if regex.Pattern != "^Plastic bottles$" {
		t.Fatalf("expected anchored pattern, got %q", regex.Pattern)
	}
	if regex.Options != "i" {
		t.Fatalf("expected case-insensitive options, got %q", regex.Options)
	}
}
