package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/tenantive/accounts-api/internal/core/domain"
)

// stubUserRepo is an in-memory UserRepository.
type stubUserRepo struct {
	mu         sync.Mutex
	seq        int
	users      map[string]*domain.User
	history    []domain.UserHistory
	historyErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return "", domain.Conflict("email", "email already exists")
		}
	}
	r.seq++
	id := fmt.Sprintf("%024x", r.seq)
	copy := cloneUser(user)
	copy.ID = id
	r.users[id] = copy
	return id, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NotFound("user", "user not found")
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.NotFound("user", "user not found")
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domain.NotFound("user", "user not found")
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.NotFound("user", "user not found")
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) AppendHistory(_ context.Context, entry *domain.UserHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.historyErr != nil {
		return r.historyErr
	}
	r.history = append(r.history, *entry)
	return nil
}

func (r *stubUserRepo) historyFor(userID string) []domain.UserHistory {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.UserHistory
	for _, h := range r.history {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out
}

// stubTokenRepo is an in-memory TokenRepository.
type stubTokenRepo struct {
	mu      sync.Mutex
	seq     int
	records map[string]*domain.TokenRecord
}

func newStubTokenRepo() *stubTokenRepo {
	return &stubTokenRepo{records: make(map[string]*domain.TokenRecord)}
}

func (r *stubTokenRepo) Insert(_ context.Context, record *domain.TokenRecord) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	id := fmt.Sprintf("%024x", r.seq)
	copy := *record
	copy.ID = id
	r.records[id] = &copy
	return id, nil
}

func (r *stubTokenRepo) Find(_ context.Context, tokenString string, typ domain.TokenType, userID string) (*domain.TokenRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.Token == tokenString && rec.Type == typ && rec.UserID == userID && !rec.Blacklisted {
			copy := *rec
			return &copy, nil
		}
	}
	return nil, domain.NotFound("token", "token not found")
}

func (r *stubTokenRepo) DeleteByID(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return 0, nil
	}
	delete(r.records, id)
	return 1, nil
}

func (r *stubTokenRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// stubThrottle is a configurable LoginThrottle.
type stubThrottle struct {
	allowed  bool
	failures []string
	resets   []string
}

func (t *stubThrottle) Allow(_ context.Context, _ string) (bool, error) { return t.allowed, nil }

func (t *stubThrottle) Fail(_ context.Context, email string) error {
	t.failures = append(t.failures, email)
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, email string) error {
	t.resets = append(t.resets, email)
	return nil
}
