package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tenantive/accounts-api/internal/core/domain"
)

const productsCollection = "products"

// ProductRepository persists product documents in MongoDB.
type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

type productDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Code           string             `bson:"code,omitempty"`
	Name           string             `bson:"name"`
	OrganizationID string             `bson:"organization"`
	Cost           float64            `bson:"cost"`
	Price          float64            `bson:"price"`
	IsDisabled     bool               `bson:"isDisabled"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

func (d *productDoc) toDomain() *domain.Product {
	return &domain.Product{
		ID:             d.ID.Hex(),
		Code:           d.Code,
		Name:           d.Name,
		OrganizationID: d.OrganizationID,
		Cost:           d.Cost,
		Price:          d.Price,
		IsDisabled:     d.IsDisabled,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (r *ProductRepository) Insert(ctx context.Context, product *domain.Product) (string, error) {
	doc := productDoc{
		Code:           product.Code,
		Name:           product.Name,
		OrganizationID: product.OrganizationID,
		Cost:           product.Cost,
		Price:          product.Price,
		IsDisabled:     product.IsDisabled,
		CreatedAt:      product.CreatedAt,
		UpdatedAt:      product.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.Conflict("name", "product already exists")
		}
		return "", fmt.Errorf("insert product: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc productDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NotFound("product", "product not found")
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	var doc productDoc
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NotFound("product", "product not found")
		}
		return nil, fmt.Errorf("find product by name: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.Product
	for cursor.Next(ctx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		out = append(out, *doc.toDomain())
	}
	return out, cursor.Err()
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	oid, err := parseObjectID(product.ID)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"code":       product.Code,
		"name":       product.Name,
		"cost":       product.Cost,
		"price":      product.Price,
		"isDisabled": product.IsDisabled,
		"updatedAt":  product.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NotFound("product", "product not found")
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("product", "product not found")
	}
	return nil
}
