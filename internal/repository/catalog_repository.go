package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusbites/campusbites-api/internal/model"
)

// CatalogRepo serves the public menu: categories and products.  Reads
// vastly outnumber writes; writes happen only through admin endpoints.
type CatalogRepo struct {
	categories *mongo.Collection
	products   *mongo.Collection
}

// NewCatalogRepo returns a CatalogRepo bound to the given database.
func NewCatalogRepo(db *mongo.Database) *CatalogRepo {
	return &CatalogRepo{
		categories: db.Collection("categories"),
		products:   db.Collection("products"),
	}
}

// ListCategories returns all categories sorted by name.
func (r *CatalogRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.categories.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	cats := make([]model.Category, 0)
	if err := cur.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// ListProducts returns a page of available products plus the total count
// so clients can render pagination.
func (r *CatalogRepo) ListProducts(ctx context.Context, skip, limit int64) ([]model.Product, int64, error) {
	filter := bson.M{"available": true}
	total, err := r.products.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := r.products.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	prods := make([]model.Product, 0)
	if err := cur.All(ctx, &prods); err != nil {
		return nil, 0, err
	}
	return prods, total, nil
}

// GetProductsByIDs loads the given products in one round trip.  Callers
// compare the returned length against the requested one to detect
// missing or unavailable items.
func (r *CatalogRepo) GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Product, error) {
	cur, err := r.products.Find(ctx, bson.M{
		"_id":       bson.M{"$in": ids},
		"available": true,
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	prods := make([]model.Product, 0, len(ids))
	if err := cur.All(ctx, &prods); err != nil {
		return nil, err
	}
	return prods, nil
}

// AddCategory inserts a category and returns its hex id.
func (r *CatalogRepo) AddCategory(ctx context.Context, name string) (string, error) {
	res, err := r.categories.InsertOne(ctx, model.Category{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// AddProduct inserts a product and populates its ID and timestamps.
func (r *CatalogRepo) AddProduct(ctx context.Context, p *model.Product) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	res, err := r.products.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}
