package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"abi-fashion-backend/models"
)

var ErrNotFound = errors.New("not found")

// CatalogService exposes listing, filtering and mutation operations over
// works and categories. Listings resolve image references through the
// ImageResolver before returning.
type CatalogService struct {
	works      *mongo.Collection
	categories *mongo.Collection
	resolver   *ImageResolver
}

func NewCatalogService(db *mongo.Database, resolver *ImageResolver) *CatalogService {
	return &CatalogService{
		works:      db.Collection("works"),
		categories: db.Collection("categories"),
		resolver:   resolver,
	}
}

// ListActiveWorks returns active works newest-first, images resolved.
func (s *CatalogService) ListActiveWorks(ctx context.Context) ([]models.Work, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.works.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}

	works := []models.Work{}
	if err := cursor.All(ctx, &works); err != nil {
		return nil, err
	}

	s.resolver.ResolveWorks(ctx, works)
	return works, nil
}

// ListWorksByCategory returns active works whose category label matches
// exactly. No fuzzy or case-insensitive matching.
func (s *CatalogService) ListWorksByCategory(ctx context.Context, category string) ([]models.Work, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.works.Find(ctx, bson.M{"category": category, "is_active": true}, opts)
	if err != nil {
		return nil, err
	}

	works := []models.Work{}
	if err := cursor.All(ctx, &works); err != nil {
		return nil, err
	}

	s.resolver.ResolveWorks(ctx, works)
	return works, nil
}

// GetWork returns a single work by ID whether active or not. Soft-deleted
// works stay reachable by direct identifier.
func (s *CatalogService) GetWork(ctx context.Context, id string) (*models.Work, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var work models.Work
	err = s.works.FindOne(ctx, bson.M{"_id": objID}).Decode(&work)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &work, nil
}

// CreateWork inserts a work, defaulting created_at to now and is_active
// to true unless the request provides them. Returns the new ID.
func (s *CatalogService) CreateWork(ctx context.Context, req *models.CreateWorkRequest) (string, error) {
	createdAt := time.Now()
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	images := req.Images
	if images == nil {
		images = []string{}
	}

	work := models.Work{
		Category:          req.Category,
		Images:            images,
		TitleTA:           req.TitleTA,
		TitleEN:           req.TitleEN,
		DescriptionTA:     req.DescriptionTA,
		DescriptionEN:     req.DescriptionEN,
		Price:             req.Price,
		CustomField1Label: req.CustomField1Label,
		CustomField1Value: req.CustomField1Value,
		CustomField2Label: req.CustomField2Label,
		CustomField2Value: req.CustomField2Value,
		CreatedAt:         createdAt,
		IsActive:          isActive,
	}

	result, err := s.works.InsertOne(ctx, work)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// UpdateWork merges only the provided fields. Errors with ErrNotFound if
// the identifier does not exist.
func (s *CatalogService) UpdateWork(ctx context.Context, id string, req *models.UpdateWorkRequest) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	set := req.SetFields()
	if len(set) == 0 {
		// Nothing to change, but the ID must still exist.
		count, err := s.works.CountDocuments(ctx, bson.M{"_id": objID})
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return nil
	}

	result, err := s.works.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDeleteWork flips is_active off. Idempotent and reversible.
func (s *CatalogService) SoftDeleteWork(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := s.works.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// HardDeleteWork removes the row for good and reaps its blob-backed
// images from the object store.
func (s *CatalogService) HardDeleteWork(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	var work models.Work
	err = s.works.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&work)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	s.resolver.Reap(ctx, work.Images)
	return nil
}

// ListCategories returns categories by ascending display order. With
// activeOnly the compound (is_active, display_order) index satisfies the
// filter and sort in one scan.
func (s *CatalogService) ListCategories(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})
	cursor, err := s.categories.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory inserts a category. Display order is taken as given;
// callers own sensible numbering and gaps are allowed.
func (s *CatalogService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (string, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category := models.Category{
		Name:         req.Name,
		NameTA:       req.NameTA,
		DisplayOrder: req.DisplayOrder,
		IsActive:     isActive,
		CreatedAt:    time.Now(),
	}

	result, err := s.categories.InsertOne(ctx, category)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// UpdateCategory merges only provided fields. A name change does not
// cascade to works carrying the old label.
func (s *CatalogService) UpdateCategory(ctx context.Context, id string, req *models.UpdateCategoryRequest) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	set := req.SetFields()
	if len(set) == 0 {
		count, err := s.categories.CountDocuments(ctx, bson.M{"_id": objID})
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return nil
	}

	result, err := s.categories.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCategory removes the row. No renumbering of remaining orders.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := s.categories.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
