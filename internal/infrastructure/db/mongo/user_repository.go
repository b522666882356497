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

const (
	usersCollection   = "users"
	historyCollection = "users_history"
)

// parseObjectID converts a hex id into an ObjectID, mapping malformed input
// to a BadRequest domain error.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.BadRequest("id", "id must be a 24-character hex string")
	}
	return oid, nil
}

// UserRepository persists users and their history snapshots in MongoDB.
type UserRepository struct {
	users   *mongo.Collection
	history *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		users:   db.Collection(usersCollection),
		history: db.Collection(historyCollection),
	}
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	Role         string             `bson:"role"`
	IsDisabled   bool               `bson:"isDisabled"`
	DocVersion   int                `bson:"docVersion"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

type historyDoc struct {
	UserID     primitive.ObjectID `bson:"user"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
	Role       string             `bson:"role"`
	IsDisabled bool               `bson:"isDisabled"`
	DocVersion int                `bson:"docVersion"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         domain.Role(d.Role),
		IsDisabled:   d.IsDisabled,
		DocVersion:   d.DocVersion,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (string, error) {
	doc := userDoc{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		IsDisabled:   user.IsDisabled,
		DocVersion:   user.DocVersion,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	res, err := r.users.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.Conflict("email", "email already exists")
		}
		return "", fmt.Errorf("insert user: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc userDoc
	if err := r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NotFound("user", "user not found")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDoc
	if err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NotFound("user", "user not found")
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.User
	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		out = append(out, *doc.toDomain())
	}
	return out, cursor.Err()
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	oid, err := parseObjectID(user.ID)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"name":       user.Name,
		"email":      user.Email,
		"role":       string(user.Role),
		"isDisabled": user.IsDisabled,
		"docVersion": user.DocVersion,
		"updatedAt":  user.UpdatedAt,
	}}
	res, err := r.users.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Conflict("email", "email already exists")
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NotFound("user", "user not found")
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.users.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("user", "user not found")
	}
	return nil
}

func (r *UserRepository) AppendHistory(ctx context.Context, entry *domain.UserHistory) error {
	oid, err := parseObjectID(entry.UserID)
	if err != nil {
		return err
	}

	doc := historyDoc{
		UserID:     oid,
		Name:       entry.Name,
		Email:      entry.Email,
		Role:       string(entry.Role),
		IsDisabled: entry.IsDisabled,
		DocVersion: entry.DocVersion,
		CreatedAt:  entry.CreatedAt,
	}
	if _, err := r.history.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("append user history: %w", err)
	}
	return nil
}
