package repository

import (
	"context"
	"sync"
	"time"

	"github.com/beniciojr/acougue_bot/internal/model"
)

// MemoryRepository guarda sessões, carrinhos e pedidos em memória.
// É o armazenamento padrão; tudo é perdido quando o processo reinicia.
type MemoryRepository struct {
	mu     sync.RWMutex
	states map[string]model.UserState
	carts  map[string][]model.CartItem
	orders []model.Order
}

// NewMemoryRepository cria um repositório em memória vazio
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		states: make(map[string]model.UserState),
		carts:  make(map[string][]model.CartItem),
	}
}

// GetState devolve o estado do usuário; usuários nunca vistos começam
// no estado inicial (valor zero)
func (r *MemoryRepository) GetState(ctx context.Context, userID string) (model.UserState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.states[userID], nil
}

func (r *MemoryRepository) SetState(ctx context.Context, userID string, state model.UserState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[userID] = state
	return nil
}

// AppendCartItem adiciona o item ao carrinho do usuário, criando o
// carrinho na primeira adição. Itens repetidos viram linhas repetidas.
func (r *MemoryRepository) AppendCartItem(ctx context.Context, userID string, item model.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[userID] = append(r.carts[userID], item)
	return nil
}

// GetCartItems devolve uma cópia dos itens na ordem de inserção.
// Carrinho inexistente devolve uma lista vazia, nunca nil.
func (r *MemoryRepository) GetCartItems(ctx context.Context, userID string) ([]model.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]model.CartItem, len(r.carts[userID]))
	copy(items, r.carts[userID])
	return items, nil
}

func (r *MemoryRepository) ClearCart(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
	return nil
}

func (r *MemoryRepository) CreateOrder(ctx context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.GenerateID()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	r.orders = append(r.orders, *order)
	return nil
}

// GetOrders devolve os pedidos criados a partir de since, na ordem de criação
func (r *MemoryRepository) GetOrders(ctx context.Context, since time.Time) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	orders := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if !o.CreatedAt.Before(since) {
			orders = append(orders, o)
		}
	}
	return orders, nil
}
