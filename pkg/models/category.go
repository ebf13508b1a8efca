package models

type Category struct {
	ID          string      `bson:"_id" json:"id"`
	Name        string      `bson:"name" json:"name" validate:"required"`
	Description string      `bson:"description" json:"description"`
	ParentID    string      `bson:"parent_id" json:"parentId"`
	ImageURL    string      `bson:"image_url" json:"imageUrl"`
	SortOrder   int         `bson:"sort_order" json:"sortOrder"`
	Children    []*Category `bson:"-" json:"children"`
}

type CategoryRequest struct {
	Name        string `bson:"name" json:"name" validate:"required"`
	Description string `bson:"description" json:"description"`
	ParentID    string `bson:"parent_id" json:"parentId"`
	ImageURL    string `bson:"image_url" json:"imageUrl"`
	SortOrder   int    `bson:"sort_order" json:"sortOrder"`
}

// CategoryNode is one row of the rendered tree the admin parent picker and
// the public drill-down consume. Depth drives indentation, Disabled marks
// the node that may not be chosen as its own parent.
type CategoryNode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Depth       int    `json:"depth"`
	HasChildren bool   `json:"hasChildren"`
	Expanded    bool   `json:"expanded"`
	Disabled    bool   `json:"disabled"`
}
