package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go-produtos-api/internal/model"
)

// MemoryProductRepository keeps products in process memory. Ids are never reused.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	nextID   int64
	products map[int64]model.Product
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{products: map[int64]model.Product{}}
}

func (r *MemoryProductRepository) List(_ context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *MemoryProductRepository) FindByID(_ context.Context, id int64) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return model.Product{}, model.ErrProductNotFound
	}
	return p, nil
}

func (r *MemoryProductRepository) Create(_ context.Context, in model.ProductInput) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.products[r.nextID] = model.Product{ID: r.nextID, Descricao: in.Descricao, Valor: in.Valor, Marca: in.Marca}
	return r.nextID, nil
}

func (r *MemoryProductRepository) Update(_ context.Context, id int64, in model.ProductInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return model.ErrProductNotFound
	}
	r.products[id] = model.Product{ID: id, Descricao: in.Descricao, Valor: in.Valor, Marca: in.Marca}
	return nil
}

func (r *MemoryProductRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return model.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

// MemoryUserRepository enforces login uniqueness the way the usuario table does.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]model.User
	byLogin map[string]int64
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:    map[int64]model.User{},
		byLogin: map[string]int64{},
	}
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id int64) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (r *MemoryUserRepository) FindByLogin(_ context.Context, login string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byLogin[login]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return r.byID[id], nil
}

func (r *MemoryUserRepository) Create(_ context.Context, u model.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byLogin[u.Login]; exists {
		return 0, fmt.Errorf("create user: duplicate login %q", u.Login)
	}

	r.nextID++
	u.ID = r.nextID
	if u.Roles == "" {
		u.Roles = model.RoleUser
	}
	r.byID[u.ID] = u
	r.byLogin[u.Login] = u.ID

	return u.ID, nil
}

// SetRoles replaces the roles of an existing user.
func (r *MemoryUserRepository) SetRoles(id int64, roles string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return model.ErrUserNotFound
	}
	u.Roles = roles
	r.byID[id] = u
	return nil
}
