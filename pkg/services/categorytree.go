package services

import (
	"sort"

	"lumora-io/api/internal/common"
	"lumora-io/api/pkg/models"
)

// BuildCategoryTree assembles flat parent-pointer documents into an ordered
// forest. Siblings are ordered by sort_order, then name. A node whose parent
// id resolves to nothing is shown at the root instead of being dropped.
func BuildCategoryTree(categories []*models.Category) []*models.Category {
	categoryMap := make(map[string]*models.Category, len(categories))
	for _, category := range categories {
		category.Children = nil
		categoryMap[category.ID] = category
	}

	var rootCategories []*models.Category
	for _, category := range categories {
		if category.ParentID == "" || category.ParentID == category.ID {
			rootCategories = append(rootCategories, category)
			continue
		}
		parentCategory, ok := categoryMap[category.ParentID]
		if !ok {
			rootCategories = append(rootCategories, category)
			continue
		}
		parentCategory.Children = append(parentCategory.Children, category)
	}

	sortSiblings(rootCategories)
	for _, category := range categories {
		sortSiblings(category.Children)
	}

	return rootCategories
}

func sortSiblings(nodes []*models.Category) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].SortOrder != nodes[j].SortOrder {
			return nodes[i].SortOrder < nodes[j].SortOrder
		}
		return nodes[i].Name < nodes[j].Name
	})
}

// FindCategoryByID walks the forest depth-first and returns the first node
// with the given id, or nil.
func FindCategoryByID(nodes []*models.Category, id string) *models.Category {
	return findCategory(nodes, id, 0)
}

func findCategory(nodes []*models.Category, id string, depth int) *models.Category {
	if depth >= common.MAX_TREE_DEPTH {
		return nil
	}
	for _, node := range nodes {
		if node.ID == id {
			return node
		}
		if found := findCategory(node.Children, id, depth+1); found != nil {
			return found
		}
	}
	return nil
}

// ExpandedSet is the caller's expand/collapse state. It lives outside the
// tree nodes and is never persisted.
type ExpandedSet map[string]struct{}

func NewExpandedSet(ids ...string) ExpandedSet {
	set := make(ExpandedSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Toggle flips membership of id in the set.
func (s ExpandedSet) Toggle(id string) {
	if _, ok := s[id]; ok {
		delete(s, id)
		return
	}
	s[id] = struct{}{}
}

func (s ExpandedSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// RenderCategoryTree flattens the forest into display rows. Children of
// collapsed nodes are omitted, the excluded node is rendered but disabled,
// and recursion stops at MAX_TREE_DEPTH so corrupt cyclic data cannot hang
// the walker. Empty input renders nothing.
func RenderCategoryTree(nodes []*models.Category, excludeID string, expanded ExpandedSet) []models.CategoryNode {
	rows := []models.CategoryNode{}
	renderLevel(nodes, excludeID, expanded, 0, &rows)
	return rows
}

func renderLevel(nodes []*models.Category, excludeID string, expanded ExpandedSet, depth int, rows *[]models.CategoryNode) {
	if depth >= common.MAX_TREE_DEPTH {
		return
	}
	for _, node := range nodes {
		*rows = append(*rows, models.CategoryNode{
			ID:          node.ID,
			Name:        node.Name,
			Depth:       depth,
			HasChildren: len(node.Children) > 0,
			Expanded:    expanded.Has(node.ID),
			Disabled:    node.ID == excludeID,
		})
		if len(node.Children) > 0 && expanded.Has(node.ID) {
			renderLevel(node.Children, excludeID, expanded, depth+1, rows)
		}
	}
}

// DescendantNames returns the node's name followed by the names of every
// descendant, in sibling order. Items reference categories by name, so this
// is the expansion used for includeSubcategories queries.
func DescendantNames(node *models.Category) []string {
	if node == nil {
		return nil
	}
	var names []string
	collectNames(node, 0, &names)
	return names
}

func collectNames(node *models.Category, depth int, names *[]string) {
	if depth >= common.MAX_TREE_DEPTH {
		return
	}
	*names = append(*names, node.Name)
	for _, child := range node.Children {
		collectNames(child, depth+1, names)
	}
}
