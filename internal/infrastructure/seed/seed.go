// Package seed provides the one-shot startup routine that bootstraps the
// users collection. It runs once at process start (or via the seed CLI
// command) and is not part of steady-state request handling.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tenantive/accounts-api/internal/core/domain"
	"github.com/tenantive/accounts-api/internal/pkg/hash"
)

// defaultUsers are inserted when the users collection is empty. Passwords
// are hashed at seed time; change them immediately in any real deployment.
var defaultUsers = []struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}{
	{"Super Admin", "superadmin@example.com", "Chang3Me!", domain.RoleSuperAdmin},
	{"Admin", "admin@example.com", "Chang3Me!", domain.RoleAdmin},
	{"User", "user@example.com", "Chang3Me!", domain.RoleUser},
}

// Run seeds the users collection if it is empty. Returns the number of
// inserted documents.
func Run(ctx context.Context, db *mongo.Database, log zerolog.Logger) (int, error) {
	users := db.Collection("users")

	count, err := users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("seed count: %w", err)
	}
	if count > 0 {
		log.Info().Int64("existing", count).Msg("users collection not empty, skipping seed")
		return 0, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(defaultUsers))
	for _, u := range defaultUsers {
		hashed, err := hash.Password(u.Password)
		if err != nil {
			return 0, fmt.Errorf("seed hash: %w", err)
		}
		docs = append(docs, bson.M{
			"name":       u.Name,
			"email":      u.Email,
			"password":   hashed,
			"role":       string(u.Role),
			"isDisabled": false,
			"docVersion": 1,
			"createdAt":  now,
			"updatedAt":  now,
		})
	}

	if _, err := users.InsertMany(ctx, docs); err != nil {
		return 0, fmt.Errorf("seed insert: %w", err)
	}
	log.Info().Int("inserted", len(docs)).Msg("users seeded")
	return len(docs), nil
}
