package services

import (
	"context"
	"strings"

	"lumora-io/api/internal/common"
	"lumora-io/api/pkg/models"
	"lumora-io/api/pkg/util"

	slug2 "github.com/gosimple/slug"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrSelfParent     = errors.New("a category cannot be its own parent")
	ErrParentCycle    = errors.New("parent assignment would create a cycle")
	ErrParentDepth    = errors.New("parent chain is too deep")
	ErrParentNotFound = errors.New("parent category not found")
)

type CategoryService struct {
	categoryCollection *mongo.Collection
}

func NewCategoryService() *CategoryService {
	return &CategoryService{
		categoryCollection: util.GetCollection(util.DB(), "Category"),
	}
}

// SlugifyCategoryID derives the document id from the display name.
func SlugifyCategoryID(name string) string {
	return slug2.Make(strings.ToLower(strings.Replace(name, "'", "", 5)))
}

func (s *CategoryService) CreateCategory(ctx context.Context, category models.Category) (*mongo.InsertOneResult, error) {
	return s.categoryCollection.InsertOne(ctx, category)
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	find := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "name", Value: 1}})
	result, err := s.categoryCollection.Find(ctx, bson.D{}, find)
	if err != nil {
		return nil, err
	}

	if err = result.All(ctx, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, categoryID string) (*models.Category, error) {
	var category models.Category
	err := s.categoryCollection.FindOne(ctx, bson.M{"_id": categoryID}).Decode(&category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID string, req models.CategoryRequest) error {
	update := bson.M{
		"name":        req.Name,
		"description": req.Description,
		"parent_id":   req.ParentID,
		"sort_order":  req.SortOrder,
	}
	if req.ImageURL != "" {
		update["image_url"] = req.ImageURL
	}

	res, err := s.categoryCollection.UpdateOne(ctx, bson.M{"_id": categoryID}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteCategory removes the category document only. Items referencing the
// category keep their now-dangling category name.
func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID string) (*mongo.DeleteResult, error) {
	return s.categoryCollection.DeleteOne(ctx, bson.M{"_id": categoryID})
}

// ValidateParent rejects a parent assignment that would make categoryID its
// own ancestor. The stored chain is walked from parentID upward.
func (s *CategoryService) ValidateParent(ctx context.Context, categoryID, parentID string) error {
	return ValidateParentChain(categoryID, parentID, func(id string) (*models.Category, error) {
		return s.GetCategoryByID(ctx, id)
	})
}

// ValidateParentChain walks parent pointers through lookup until it reaches
// a root. Any hop back onto categoryID is a cycle; a chain longer than
// MAX_TREE_DEPTH means the stored data already loops.
func ValidateParentChain(categoryID, parentID string, lookup func(id string) (*models.Category, error)) error {
	if parentID == "" {
		return nil
	}
	if parentID == categoryID {
		return ErrSelfParent
	}

	current := parentID
	for depth := 0; current != ""; depth++ {
		if depth >= common.MAX_TREE_DEPTH {
			return ErrParentDepth
		}

		ancestor, err := lookup(current)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrParentNotFound
			}
			return err
		}
		if ancestor.ParentID == categoryID {
			return ErrParentCycle
		}
		current = ancestor.ParentID
	}

	return nil
}
