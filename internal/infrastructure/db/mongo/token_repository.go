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

const tokensCollection = "tokens"

// TokenRepository persists refresh-token records in MongoDB.
type TokenRepository struct {
	coll *mongo.Collection
}

func NewTokenRepository(db *mongo.Database) *TokenRepository {
	return &TokenRepository{coll: db.Collection(tokensCollection)}
}

type tokenDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Token       string             `bson:"token"`
	UserID      string             `bson:"user"`
	Type        string             `bson:"type"`
	Expires     time.Time          `bson:"expires"`
	Blacklisted bool               `bson:"blacklisted"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (d *tokenDoc) toDomain() *domain.TokenRecord {
	return &domain.TokenRecord{
		ID:          d.ID.Hex(),
		Token:       d.Token,
		UserID:      d.UserID,
		Type:        domain.TokenType(d.Type),
		Expires:     d.Expires,
		Blacklisted: d.Blacklisted,
		CreatedAt:   d.CreatedAt,
	}
}

func (r *TokenRepository) Insert(ctx context.Context, record *domain.TokenRecord) (string, error) {
	doc := tokenDoc{
		Token:       record.Token,
		UserID:      record.UserID,
		Type:        string(record.Type),
		Expires:     record.Expires,
		Blacklisted: record.Blacklisted,
		CreatedAt:   record.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert token: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *TokenRepository) Find(ctx context.Context, tokenString string, typ domain.TokenType, userID string) (*domain.TokenRecord, error) {
	filter := bson.M{
		"token":       tokenString,
		"type":        string(typ),
		"user":        userID,
		"blacklisted": false,
	}

	var doc tokenDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NotFound("token", "token not found")
		}
		return nil, fmt.Errorf("find token: %w", err)
	}
	return doc.toDomain(), nil
}

// DeleteByID removes a single record. Two concurrent rotations race here;
// Mongo guarantees only one DeleteOne observes the document.
func (r *TokenRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete token: %w", err)
	}
	return res.DeletedCount, nil
}
