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

const itemsCollection = "items"

// ItemRepository persists item documents in MongoDB.
type ItemRepository struct {
	coll *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{coll: db.Collection(itemsCollection)}
}

type itemDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Code       string             `bson:"code"`
	Name       string             `bson:"name"`
	IsDisabled bool               `bson:"isDisabled"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

func (d *itemDoc) toDomain() *domain.Item {
	return &domain.Item{
		ID:         d.ID.Hex(),
		Code:       d.Code,
		Name:       d.Name,
		IsDisabled: d.IsDisabled,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (r *ItemRepository) Insert(ctx context.Context, item *domain.Item) (string, error) {
	doc := itemDoc{
		Code:       item.Code,
		Name:       item.Name,
		IsDisabled: item.IsDisabled,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.Conflict("code", "item already exists")
		}
		return "", fmt.Errorf("insert item: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc itemDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NotFound("item", "item not found")
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ItemRepository) FindByCode(ctx context.Context, code string) (*domain.Item, error) {
	var doc itemDoc
	if err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NotFound("item", "item not found")
		}
		return nil, fmt.Errorf("find item by code: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.Item
	for cursor.Next(ctx) {
		var doc itemDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		out = append(out, *doc.toDomain())
	}
	return out, cursor.Err()
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) error {
	oid, err := parseObjectID(item.ID)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"code":       item.Code,
		"name":       item.Name,
		"isDisabled": item.IsDisabled,
		"updatedAt":  item.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NotFound("item", "item not found")
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("item", "item not found")
	}
	return nil
}
