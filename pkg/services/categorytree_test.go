package services

import (
	"reflect"
	"testing"

	"lumora-io/api/pkg/models"
)

func cat(id, name, parentID string, sortOrder int) *models.Category {
	return &models.Category{ID: id, Name: name, ParentID: parentID, SortOrder: sortOrder}
}

func sampleForest() []*models.Category {
	// electronics > phones > smartphones, plus a second root
	flat := []*models.Category{
		cat("phones", "Phones", "electronics", 0),
		cat("electronics", "Electronics", "", 0),
		cat("smartphones", "Smartphones", "phones", 0),
		cat("tools", "Tools", "", 1),
	}
	return BuildCategoryTree(flat)
}

func TestBuildCategoryTree_nestsByParentPointer(t *testing.T) {
	t.Parallel()

	roots := sampleForest()

	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	if roots[0].ID != "electronics" || roots[1].ID != "tools" {
		t.Errorf("got root order %s, %s; want electronics, tools", roots[0].ID, roots[1].ID)
	}
	if len(roots[0].Children) != 1 || roots[0].Children[0].ID != "phones" {
		t.Fatalf("electronics children = %+v, want [phones]", roots[0].Children)
	}
	if len(roots[0].Children[0].Children) != 1 || roots[0].Children[0].Children[0].ID != "smartphones" {
		t.Errorf("phones children wrong: %+v", roots[0].Children[0].Children)
	}
}

func TestBuildCategoryTree_ordersSiblingsBySortOrderThenName(t *testing.T) {
	t.Parallel()

	roots := BuildCategoryTree([]*models.Category{
		cat("b", "Bravo", "", 1),
		cat("c", "Charlie", "", 0),
		cat("a", "Alpha", "", 1),
	})

	var got []string
	for _, r := range roots {
		got = append(got, r.ID)
	}
	want := []string{"c", "a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBuildCategoryTree_orphanedParentShownAtRoot(t *testing.T) {
	t.Parallel()

	roots := BuildCategoryTree([]*models.Category{
		cat("lost", "Lost", "no-such-parent", 0),
	})

	if len(roots) != 1 || roots[0].ID != "lost" {
		t.Errorf("orphan not promoted to root: %+v", roots)
	}
}

func TestBuildCategoryTree_emptyInput(t *testing.T) {
	t.Parallel()

	if roots := BuildCategoryTree(nil); len(roots) != 0 {
		t.Errorf("got %+v, want no roots", roots)
	}
}

func TestFindCategoryByID_findsGrandchildDepthFirst(t *testing.T) {
	t.Parallel()

	roots := sampleForest()

	found := FindCategoryByID(roots, "smartphones")
	if found == nil || found.Name != "Smartphones" {
		t.Fatalf("got %+v, want Smartphones node", found)
	}

	if missing := FindCategoryByID(roots, "missing"); missing != nil {
		t.Errorf("got %+v, want nil for unknown id", missing)
	}
}

func TestExpandedSet_ToggleFlipsMembership(t *testing.T) {
	t.Parallel()

	set := NewExpandedSet()

	set.Toggle("phones")
	if !set.Has("phones") {
		t.Error("expected phones expanded after first toggle")
	}

	set.Toggle("phones")
	if set.Has("phones") {
		t.Error("expected phones collapsed after second toggle")
	}
}

func TestRenderCategoryTree_collapsedChildrenHidden(t *testing.T) {
	t.Parallel()

	rows := RenderCategoryTree(sampleForest(), "", NewExpandedSet())

	var got []string
	for _, row := range rows {
		got = append(got, row.ID)
	}
	want := []string{"electronics", "tools"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want roots only %v", got, want)
	}
	if !rows[0].HasChildren || rows[1].HasChildren {
		t.Errorf("hasChildren flags wrong: %+v", rows)
	}
}

func TestRenderCategoryTree_expandedNodesIndentChildren(t *testing.T) {
	t.Parallel()

	expanded := NewExpandedSet("electronics", "phones")
	rows := RenderCategoryTree(sampleForest(), "", expanded)

	want := []struct {
		id    string
		depth int
	}{
		{"electronics", 0},
		{"phones", 1},
		{"smartphones", 2},
		{"tools", 0},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d: %+v", len(rows), len(want), rows)
	}
	for i, w := range want {
		if rows[i].ID != w.id || rows[i].Depth != w.depth {
			t.Errorf("row %d = %s@%d, want %s@%d", i, rows[i].ID, rows[i].Depth, w.id, w.depth)
		}
	}
}

func TestRenderCategoryTree_excludedNodeDisabledButVisible(t *testing.T) {
	t.Parallel()

	expanded := NewExpandedSet("electronics")
	rows := RenderCategoryTree(sampleForest(), "phones", expanded)

	var phonesRow *models.CategoryNode
	for i := range rows {
		if rows[i].ID == "phones" {
			phonesRow = &rows[i]
		} else if rows[i].Disabled {
			t.Errorf("row %s disabled, only phones should be", rows[i].ID)
		}
	}
	if phonesRow == nil {
		t.Fatal("excluded node missing from render")
	}
	if !phonesRow.Disabled {
		t.Error("excluded node not disabled")
	}
}

func TestRenderCategoryTree_emptyInputRendersNothing(t *testing.T) {
	t.Parallel()

	rows := RenderCategoryTree(nil, "", NewExpandedSet())
	if len(rows) != 0 {
		t.Errorf("got %+v, want no rows", rows)
	}
}

func TestRenderCategoryTree_cyclicInputTerminates(t *testing.T) {
	t.Parallel()

	// Hand-built cycle that BuildCategoryTree would never produce.
	a := cat("a", "A", "", 0)
	b := cat("b", "B", "a", 0)
	a.Children = []*models.Category{b}
	b.Children = []*models.Category{a}

	expanded := NewExpandedSet("a", "b")
	rows := RenderCategoryTree([]*models.Category{a}, "", expanded)

	if len(rows) == 0 {
		t.Error("expected bounded output, got none")
	}
}

func TestDescendantNames_includesSelfAndAllLevels(t *testing.T) {
	t.Parallel()

	roots := sampleForest()
	node := FindCategoryByID(roots, "electronics")

	got := DescendantNames(node)
	want := []string{"Electronics", "Phones", "Smartphones"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if names := DescendantNames(nil); names != nil {
		t.Errorf("got %v for nil node, want nil", names)
	}
}
