package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tenantive/accounts-api/internal/core/domain"
	"github.com/tenantive/accounts-api/internal/core/ports"
	"github.com/tenantive/accounts-api/internal/core/rbac"
	"github.com/tenantive/accounts-api/internal/pkg/hash"
)

// UserService implements user management. Every successful mutation bumps
// docVersion by exactly one and appends exactly one history snapshot; a
// failed snapshot write aborts the mutation.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

// Create stores a new user and returns its id.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (string, error) {
	if !in.Role.Valid() {
		return "", domain.BadRequest("role", "role is invalid")
	}

	if existing, err := s.users.FindByEmail(ctx, in.Email); err == nil && existing != nil {
		return "", domain.Conflict("email", "email already exists")
	}

	hashed, err := hash.Password(in.Password)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hashed,
		Role:         in.Role,
		IsDisabled:   in.IsDisabled,
		DocVersion:   1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return "", err
	}
	user.ID = id

	if err := s.users.AppendHistory(ctx, user.Snapshot(now)); err != nil {
		s.log.Error().Err(err).Str("user_id", id).Msg("history append failed on create")
		return "", err
	}
	return id, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

// Get returns a single user by id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("user", "user not found")
	}
	return user, nil
}

// Update applies the requested changes on behalf of actor. Role changes go
// through the rank guard: nobody may assign a rank above their own, and a
// target already ranked above the actor cannot be modified.
func (s *UserService) Update(ctx context.Context, id string, actor *domain.User, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Role != nil && *in.Role != user.Role {
		if !in.Role.Valid() {
			return nil, domain.BadRequest("role", "role is invalid")
		}
		if actor == nil || !rbac.CanChangeRole(actor.Role, user.Role, *in.Role) {
			return nil, domain.Forbidden("role", "Cannot change role to higher")
		}
		user.Role = *in.Role
	}
	if in.Email != nil && *in.Email != user.Email {
		if existing, err := s.users.FindByEmail(ctx, *in.Email); err == nil && existing != nil {
			return nil, domain.Conflict("email", "email already exists")
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.IsDisabled != nil {
		user.IsDisabled = *in.IsDisabled
	}

	now := time.Now().UTC()
	user.DocVersion++
	user.UpdatedAt = now

	// Snapshot before the write: a successful update must never be left
	// without its history record.
	if err := s.users.AppendHistory(ctx, user.Snapshot(now)); err != nil {
		s.log.Error().Err(err).Str("user_id", id).Msg("history append failed on update")
		return nil, err
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user after writing a final history snapshot.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user.DocVersion++
	if err := s.users.AppendHistory(ctx, user.Snapshot(now)); err != nil {
		s.log.Error().Err(err).Str("user_id", id).Msg("history append failed on delete")
		return err
	}
	return s.users.Delete(ctx, id)
}
