package services

import (
	"reflect"
	"strconv"
	"testing"

	"lumora-io/api/internal/common"
	"lumora-io/api/pkg/models"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestSearchQueryTooShort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{" ", true},
		{"a", true},
		{" a ", true},
		{"ab", false},
		{"日本", false},
		{"  tv  ", false},
	}

	for _, tt := range tests {
		if got := SearchQueryTooShort(tt.query); got != tt.want {
			t.Errorf("SearchQueryTooShort(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestScopedCategoryNames_resolvesIDToNames(t *testing.T) {
	t.Parallel()

	flat := []*models.Category{
		cat("electronics", "Electronics", "", 0),
		cat("phones", "Phones", "electronics", 0),
		cat("smartphones", "Smartphones", "phones", 0),
		cat("tools", "Tools", "", 1),
	}

	tests := []struct {
		id         string
		includeSub bool
		want       []string
	}{
		{"electronics", false, []string{"Electronics"}},
		{"electronics", true, []string{"Electronics", "Phones", "Smartphones"}},
		{"phones", true, []string{"Phones", "Smartphones"}},
		{"tools", true, []string{"Tools"}},
	}

	for _, tt := range tests {
		got, err := ScopedCategoryNames(flat, tt.id, tt.includeSub)
		if err != nil {
			t.Fatalf("ScopedCategoryNames(%q, %v): unexpected error: %v", tt.id, tt.includeSub, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ScopedCategoryNames(%q, %v) = %v, want %v", tt.id, tt.includeSub, got, tt.want)
		}
	}
}

func TestScopedCategoryNames_wideScopeCoversNarrowScope(t *testing.T) {
	t.Parallel()

	flat := []*models.Category{
		cat("electronics", "Electronics", "", 0),
		cat("phones", "Phones", "electronics", 0),
		cat("smartphones", "Smartphones", "phones", 0),
		cat("tools", "Tools", "", 1),
	}

	for _, c := range flat {
		narrow, err := ScopedCategoryNames(flat, c.ID, false)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.ID, err)
		}
		wide, err := ScopedCategoryNames(flat, c.ID, true)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.ID, err)
		}

		wideSet := make(map[string]struct{}, len(wide))
		for _, name := range wide {
			wideSet[name] = struct{}{}
		}
		for _, name := range narrow {
			if _, ok := wideSet[name]; !ok {
				t.Errorf("%s: includeSubcategories dropped %q from the match set", c.ID, name)
			}
		}
	}
}

func TestScopedCategoryNames_unknownID(t *testing.T) {
	t.Parallel()

	flat := []*models.Category{cat("tools", "Tools", "", 0)}

	if _, err := ScopedCategoryNames(flat, "ghost", true); err != mongo.ErrNoDocuments {
		t.Errorf("got error %v, want %v", err, mongo.ErrNoDocuments)
	}
}

func TestRemovedImages(t *testing.T) {
	t.Parallel()

	previous := []string{"a.jpg", "b.jpg", "c.jpg"}
	current := []string{"b.jpg", "d.jpg"}

	if got, want := RemovedImages(previous, current), []string{"a.jpg", "c.jpg"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := RemovedImages(previous, previous); got != nil {
		t.Errorf("unchanged list produced removals: %v", got)
	}
	if got, want := RemovedImages(previous, nil), previous; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want everything removed", got)
	}
}

func TestBuildItem_missingPriceMeansOnRequest(t *testing.T) {
	t.Parallel()

	item := BuildItem(models.ItemRequest{Barcode: "123", Name: "Widget"})

	if item.Price != models.PriceOnRequestSentinel {
		t.Errorf("got price %v, want sentinel %v", item.Price, models.PriceOnRequestSentinel)
	}

	item.ConstructPriceFlag()
	if !item.PriceOnRequest {
		t.Error("expected priceOnRequest flag after ConstructPriceFlag")
	}
}

func TestBuildItem_listedPriceKept(t *testing.T) {
	t.Parallel()

	price := 49.90
	item := BuildItem(models.ItemRequest{Barcode: "123", Name: "Widget", Price: &price})

	if item.Price != price {
		t.Errorf("got price %v, want %v", item.Price, price)
	}

	item.ConstructPriceFlag()
	if item.PriceOnRequest {
		t.Error("listed price must not be flagged as on request")
	}
}

func TestBuildItem_capsImagesAtLimit(t *testing.T) {
	t.Parallel()

	var images []string
	for i := 0; i < common.MAX_ITEM_IMAGES+4; i++ {
		images = append(images, "https://cdn.example/"+strconv.Itoa(i)+".jpg")
	}

	item := BuildItem(models.ItemRequest{Barcode: "123", Name: "Widget", Images: images})

	if len(item.Images) != common.MAX_ITEM_IMAGES {
		t.Errorf("got %d images, want %d", len(item.Images), common.MAX_ITEM_IMAGES)
	}
	if item.Images[0] != images[0] {
		t.Errorf("image order changed: %v", item.Images[:1])
	}
}
