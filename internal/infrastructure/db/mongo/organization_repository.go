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

const organizationsCollection = "organizations"

// OrganizationRepository persists organization documents in MongoDB.
type OrganizationRepository struct {
	coll *mongo.Collection
}

func NewOrganizationRepository(db *mongo.Database) *OrganizationRepository {
	return &OrganizationRepository{coll: db.Collection(organizationsCollection)}
}

type organizationDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	IsDisabled bool               `bson:"isDisabled"`
	DocVersion int                `bson:"docVersion"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

func (d *organizationDoc) toDomain() *domain.Organization {
	return &domain.Organization{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		IsDisabled: d.IsDisabled,
		DocVersion: d.DocVersion,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (r *OrganizationRepository) Insert(ctx context.Context, org *domain.Organization) (string, error) {
	doc := organizationDoc{
		Name:       org.Name,
		IsDisabled: org.IsDisabled,
		DocVersion: org.DocVersion,
		CreatedAt:  org.CreatedAt,
		UpdatedAt:  org.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.Conflict("name", "organization already exists")
		}
		return "", fmt.Errorf("insert organization: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id string) (*domain.Organization, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc organizationDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NotFound("organization", "organization not found")
		}
		return nil, fmt.Errorf("find organization: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *OrganizationRepository) FindByName(ctx context.Context, name string) (*domain.Organization, error) {
	var doc organizationDoc
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NotFound("organization", "organization not found")
		}
		return nil, fmt.Errorf("find organization by name: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *OrganizationRepository) FindAll(ctx context.Context) ([]domain.Organization, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.Organization
	for cursor.Next(ctx) {
		var doc organizationDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode organization: %w", err)
		}
		out = append(out, *doc.toDomain())
	}
	return out, cursor.Err()
}

func (r *OrganizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	oid, err := parseObjectID(org.ID)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"name":       org.Name,
		"isDisabled": org.IsDisabled,
		"docVersion": org.DocVersion,
		"updatedAt":  org.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update organization: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NotFound("organization", "organization not found")
	}
	return nil
}

func (r *OrganizationRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete organization: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("organization", "organization not found")
	}
	return nil
}
