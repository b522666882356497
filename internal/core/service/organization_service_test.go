package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/tenantive/accounts-api/internal/core/domain"
	"github.com/tenantive/accounts-api/internal/core/ports"
)

type stubOrgRepo struct {
	mu   sync.Mutex
	seq  int
	orgs map[string]*domain.Organization
}

func newStubOrgRepo() *stubOrgRepo {
	return &stubOrgRepo{orgs: make(map[string]*domain.Organization)}
}

func (r *stubOrgRepo) Insert(_ context.Context, org *domain.Organization) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	id := fmt.Sprintf("%024x", r.seq)
	copy := *org
	copy.ID = id
	r.orgs[id] = &copy
	return id, nil
}

func (r *stubOrgRepo) FindByID(_ context.Context, id string) (*domain.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	org, ok := r.orgs[id]
	if !ok {
		return nil, domain.NotFound("organization", "organization not found")
	}
	copy := *org
	return &copy, nil
}

func (r *stubOrgRepo) FindByName(_ context.Context, name string) (*domain.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, org := range r.orgs {
		if org.Name == name {
			copy := *org
			return &copy, nil
		}
	}
	return nil, domain.NotFound("organization", "organization not found")
}

func (r *stubOrgRepo) FindAll(_ context.Context) ([]domain.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Organization, 0, len(r.orgs))
	for _, org := range r.orgs {
		out = append(out, *org)
	}
	return out, nil
}

func (r *stubOrgRepo) Update(_ context.Context, org *domain.Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orgs[org.ID]; !ok {
		return domain.NotFound("organization", "organization not found")
	}
	copy := *org
	r.orgs[org.ID] = &copy
	return nil
}

func (r *stubOrgRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orgs, id)
	return nil
}

func TestOrganizationService_CreateAndConflict(t *testing.T) {
	svc := NewOrganizationService(newStubOrgRepo())

	id, err := svc.Create(context.Background(), ports.CreateOrganizationInput{Name: "Acme"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	org, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if org.DocVersion != 1 || org.Name != "Acme" {
		t.Fatalf("unexpected org %+v", org)
	}

	if _, err := svc.Create(context.Background(), ports.CreateOrganizationInput{Name: "Acme"}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected Conflict for duplicate name, got %v", err)
	}
}

func TestOrganizationService_UpdateBumpsVersion(t *testing.T) {
	svc := NewOrganizationService(newStubOrgRepo())
	id, _ := svc.Create(context.Background(), ports.CreateOrganizationInput{Name: "Acme"})

	name := "Acme Corp"
	updated, err := svc.Update(context.Background(), id, ports.UpdateOrganizationInput{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Acme Corp" || updated.DocVersion != 2 {
		t.Fatalf("unexpected org %+v", updated)
	}
}

func TestOrganizationService_DeleteMissing(t *testing.T) {
	svc := NewOrganizationService(newStubOrgRepo())

	if err := svc.Delete(context.Background(), "000000000000000000000000"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}
