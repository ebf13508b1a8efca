package services

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"lumora-io/api/internal/common"
	"lumora-io/api/pkg/models"
	"lumora-io/api/pkg/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ItemService struct {
	itemCollection  *mongo.Collection
	categoryService *CategoryService
}

func NewItemService(categoryService *CategoryService) *ItemService {
	return &ItemService{
		itemCollection:  util.GetCollection(util.DB(), "Item"),
		categoryService: categoryService,
	}
}

// BuildItem turns an admin request into a document. Missing price means
// "price on request"; the image list is capped server-side.
func BuildItem(req models.ItemRequest) models.Item {
	price := models.PriceOnRequestSentinel
	if req.Price != nil {
		price = *req.Price
	}

	images := req.Images
	if len(images) > common.MAX_ITEM_IMAGES {
		images = images[:common.MAX_ITEM_IMAGES]
	}

	now := time.Now()
	return models.Item{
		ID:          primitive.NewObjectID(),
		Barcode:     req.Barcode,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Images:      images,
		Specs:       req.Specs,
		Price:       price,
		CreatedAt:   now,
		ModifiedAt:  now,
	}
}

func (s *ItemService) CreateItem(ctx context.Context, req models.ItemRequest) (*mongo.InsertOneResult, error) {
	return s.itemCollection.InsertOne(ctx, BuildItem(req))
}

func (s *ItemService) GetItemByID(ctx context.Context, itemID primitive.ObjectID) (*models.Item, error) {
	var item models.Item
	err := s.itemCollection.FindOne(ctx, bson.M{"_id": itemID}).Decode(&item)
	if err != nil {
		return nil, err
	}
	item.ConstructPriceFlag()
	return &item, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, itemID primitive.ObjectID, req models.ItemRequest) error {
	price := models.PriceOnRequestSentinel
	if req.Price != nil {
		price = *req.Price
	}

	images := req.Images
	if len(images) > common.MAX_ITEM_IMAGES {
		images = images[:common.MAX_ITEM_IMAGES]
	}

	update := bson.M{
		"barcode":     req.Barcode,
		"name":        req.Name,
		"description": req.Description,
		"category":    req.Category,
		"subcategory": req.Subcategory,
		"images":      images,
		"specs":       req.Specs,
		"price":       price,
		"modified_at": time.Now(),
	}

	res, err := s.itemCollection.UpdateOne(ctx, bson.M{"_id": itemID}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *ItemService) DeleteItem(ctx context.Context, itemID primitive.ObjectID) (*mongo.DeleteResult, error) {
	return s.itemCollection.DeleteOne(ctx, bson.M{"_id": itemID})
}

func (s *ItemService) AllItems(ctx context.Context) ([]models.Item, error) {
	find := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := s.itemCollection.Find(ctx, bson.D{}, find)
	if err != nil {
		return nil, err
	}

	var items []models.Item
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	constructPriceFlags(items)
	return items, nil
}

// ItemsByCategory returns items scoped to the category with the given id.
// Items carry category names rather than ids, so the id is resolved through
// the tree first; includeSubcategories widens the match to every descendant
// name.
func (s *ItemService) ItemsByCategory(ctx context.Context, categoryID string, includeSubcategories bool) ([]models.Item, error) {
	return s.itemsScopedTo(ctx, "category", categoryID, includeSubcategories)
}

// ItemsBySubcategory is the symmetric query one level down.
func (s *ItemService) ItemsBySubcategory(ctx context.Context, subcategoryID string, includeSubcategories bool) ([]models.Item, error) {
	return s.itemsScopedTo(ctx, "subcategory", subcategoryID, includeSubcategories)
}

// ScopedCategoryNames resolves a category id to the set of names items may
// carry in the scoped field. Without includeSubcategories that is the node's
// own name; with it, every descendant name as well. Unknown ids report
// mongo.ErrNoDocuments.
func ScopedCategoryNames(categories []*models.Category, categoryID string, includeSubcategories bool) ([]string, error) {
	tree := BuildCategoryTree(categories)
	node := FindCategoryByID(tree, categoryID)
	if node == nil {
		return nil, mongo.ErrNoDocuments
	}

	if includeSubcategories {
		return DescendantNames(node), nil
	}
	return []string{node.Name}, nil
}

func (s *ItemService) itemsScopedTo(ctx context.Context, field, categoryID string, includeSubcategories bool) ([]models.Item, error) {
	categories, err := s.categoryService.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}

	names, err := ScopedCategoryNames(categories, categoryID, includeSubcategories)
	if err != nil {
		return nil, err
	}

	cursor, err := s.itemCollection.Find(ctx, bson.M{field: bson.M{"$in": names}})
	if err != nil {
		return nil, err
	}

	var items []models.Item
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	constructPriceFlags(items)
	return items, nil
}

// SearchQueryTooShort reports whether the query is below the minimum length
// gate. Such queries are treated as "clear results" and never hit the store.
func SearchQueryTooShort(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) < common.MIN_SEARCH_LENGTH
}

// SearchItems runs a case-insensitive substring match over name,
// description and barcode, capped at MAX_SEARCH_RESULTS. Callers firing
// overlapping queries use a SearchSession token to drop superseded
// responses.
func (s *ItemService) SearchItems(ctx context.Context, text string) ([]models.Item, error) {
	if SearchQueryTooShort(text) {
		return []models.Item{}, nil
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(strings.TrimSpace(text)), Options: "i"}
	filter := bson.M{
		"$or": []bson.M{
			{"name": bson.M{"$regex": pattern}},
			{"description": bson.M{"$regex": pattern}},
			{"barcode": bson.M{"$regex": pattern}},
		},
	}

	find := options.Find().SetLimit(common.MAX_SEARCH_RESULTS)
	cursor, err := s.itemCollection.Find(ctx, filter, find)
	if err != nil {
		return nil, err
	}

	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	constructPriceFlags(items)
	return items, nil
}

// RemovedImages lists the urls present in previous but absent from current.
func RemovedImages(previous, current []string) []string {
	keep := make(map[string]struct{}, len(current))
	for _, u := range current {
		keep[u] = struct{}{}
	}

	var removed []string
	for _, u := range previous {
		if _, ok := keep[u]; !ok {
			removed = append(removed, u)
		}
	}
	return removed
}

func constructPriceFlags(items []models.Item) {
	for i := range items {
		items[i].ConstructPriceFlag()
	}
}
