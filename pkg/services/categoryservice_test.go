package services

import (
	"testing"

	"lumora-io/api/pkg/models"

	"go.mongodb.org/mongo-driver/mongo"
)

func mapLookup(stored map[string]*models.Category) func(id string) (*models.Category, error) {
	return func(id string) (*models.Category, error) {
		if c, ok := stored[id]; ok {
			return c, nil
		}
		return nil, mongo.ErrNoDocuments
	}
}

func TestValidateParentChain(t *testing.T) {
	t.Parallel()

	stored := map[string]*models.Category{
		"a": cat("a", "A", "", 0),
		"b": cat("b", "B", "a", 0),
		"c": cat("c", "C", "b", 0),
	}

	tests := []struct {
		name       string
		categoryID string
		parentID   string
		wantErr    error
	}{
		{"root parent is fine", "x", "", nil},
		{"valid deep parent", "x", "c", nil},
		{"direct self reference", "a", "a", ErrSelfParent},
		{"one hop cycle", "a", "b", ErrParentCycle},
		{"multi hop cycle", "a", "c", ErrParentCycle},
		{"unknown parent", "x", "ghost", ErrParentNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateParentChain(tt.categoryID, tt.parentID, mapLookup(stored))
			if err != tt.wantErr {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateParentChain_preexistingLoopHitsDepthBound(t *testing.T) {
	t.Parallel()

	// b and c already loop in the store; assigning either as a parent of an
	// unrelated category must fail instead of spinning.
	stored := map[string]*models.Category{
		"b": cat("b", "B", "c", 0),
		"c": cat("c", "C", "b", 0),
	}

	err := ValidateParentChain("x", "b", mapLookup(stored))
	if err != ErrParentDepth {
		t.Errorf("got error %v, want %v", err, ErrParentDepth)
	}
}

func TestSlugifyCategoryID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"Electronics", "electronics"},
		{"Home & Living", "home-and-living"},
		{"Kid's Toys", "kids-toys"},
	}

	for _, tt := range tests {
		if got := SlugifyCategoryID(tt.name); got != tt.want {
			t.Errorf("SlugifyCategoryID(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
