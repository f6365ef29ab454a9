package service

import (
	"context"
	"fmt"
	"time"

	"github.com/matalogics/inventory-api/internal/core/domain"
	"github.com/matalogics/inventory-api/internal/core/ports"
)

// In-memory fakes shared by the service tests.

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
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

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrConflict
		}
	}
	r.seq++
	u := cloneUser(user)
	u.ID = fmt.Sprintf("u%d", r.seq)
	r.users[u.ID] = cloneUser(u)
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, upd ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.Status != nil {
		u.Status = *upd.Status
	}
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type stubAssetRepo struct {
	assets map[string]*domain.Asset
	seq    int
}

func newStubAssetRepo() *stubAssetRepo {
	return &stubAssetRepo{assets: make(map[string]*domain.Asset)}
}

func cloneAsset(a *domain.Asset) *domain.Asset {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAssetRepo) List(_ context.Context) ([]domain.Asset, error) {
	out := make([]domain.Asset, 0, len(r.assets))
	for _, a := range r.assets {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAssetRepo) FindByID(_ context.Context, id string) (*domain.Asset, error) {
	a, ok := r.assets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneAsset(a), nil
}

func (r *stubAssetRepo) Create(_ context.Context, asset *domain.Asset) (*domain.Asset, error) {
	r.seq++
	a := cloneAsset(asset)
	a.ID = fmt.Sprintf("a%d", r.seq)
	r.assets[a.ID] = cloneAsset(a)
	return a, nil
}

func (r *stubAssetRepo) Update(_ context.Context, id string, upd ports.AssetUpdate) (*domain.Asset, error) {
	a, ok := r.assets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil {
		a.Name = *upd.Name
	}
	if upd.SerialNumber != nil {
		a.SerialNumber = *upd.SerialNumber
	}
	if upd.CategoryID != nil {
		a.CategoryID = *upd.CategoryID
	}
	if upd.LocationID != nil {
		a.LocationID = *upd.LocationID
	}
	if upd.PurchaseDate != nil {
		a.PurchaseDate = *upd.PurchaseDate
	}
	if upd.Status != nil {
		a.Status = *upd.Status
	}
	if upd.Quantity != nil {
		a.Quantity = *upd.Quantity
	}
	if upd.Notes != nil {
		a.Notes = *upd.Notes
	}
	a.UpdatedAt = time.Now().UTC()
	return cloneAsset(a), nil
}

func (r *stubAssetRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.assets[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.assets, id)
	return nil
}

func (r *stubAssetRepo) CountByCategory(_ context.Context, categoryID string) (int64, error) {
	var n int64
	for _, a := range r.assets {
		if a.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *stubAssetRepo) CountByLocation(_ context.Context, locationID string) (int64, error) {
	var n int64
	for _, a := range r.assets {
		if a.LocationID == locationID {
			n++
		}
	}
	return n, nil
}

type stubCategoryRepo struct {
	categories map[string]*domain.Category
	seq        int
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	r.seq++
	c := *category
	c.ID = fmt.Sprintf("c%d", r.seq)
	r.categories[c.ID] = &c
	clone := c
	return &clone, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, id string, upd ports.CategoryUpdate) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.Icon != nil {
		c.Icon = *upd.Icon
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

type stubLocationRepo struct {
	locations map[string]*domain.Location
	seq       int
}

func newStubLocationRepo() *stubLocationRepo {
	return &stubLocationRepo{locations: make(map[string]*domain.Location)}
}

func (r *stubLocationRepo) List(_ context.Context) ([]domain.Location, error) {
	out := make([]domain.Location, 0, len(r.locations))
	for _, l := range r.locations {
		out = append(out, *l)
	}
	return out, nil
}

func (r *stubLocationRepo) FindByID(_ context.Context, id string) (*domain.Location, error) {
	l, ok := r.locations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *stubLocationRepo) Create(_ context.Context, location *domain.Location) (*domain.Location, error) {
	r.seq++
	l := *location
	l.ID = fmt.Sprintf("l%d", r.seq)
	r.locations[l.ID] = &l
	clone := l
	return &clone, nil
}

func (r *stubLocationRepo) Update(_ context.Context, id string, upd ports.LocationUpdate) (*domain.Location, error) {
	l, ok := r.locations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil {
		l.Name = *upd.Name
	}
	if upd.Address != nil {
		l.Address = *upd.Address
	}
	if upd.Type != nil {
		l.Type = *upd.Type
	}
	clone := *l
	return &clone, nil
}

func (r *stubLocationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.locations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.locations, id)
	return nil
}

type stubRevocationList struct {
	revoked map[string]bool
	err     error
}

func newStubRevocationList() *stubRevocationList {
	return &stubRevocationList{revoked: make(map[string]bool)}
}

func (r *stubRevocationList) Revoke(_ context.Context, jti string, _ time.Duration) error {
	if r.err != nil {
		return r.err
	}
	r.revoked[jti] = true
	return nil
}

func (r *stubRevocationList) IsRevoked(_ context.Context, jti string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	return r.revoked[jti], nil
}

type stubAuditRecorder struct {
	events []domain.AuditEvent
}

func (r *stubAuditRecorder) Record(event domain.AuditEvent) {
	r.events = append(r.events, event)
}
