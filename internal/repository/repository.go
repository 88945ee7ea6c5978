package repository

import (
	"context"
	"time"

	"github.com/beniciojr/acougue_bot/internal/model"
)

// Repository define a interface do armazenamento de sessões, carrinhos e
// pedidos. O fluxo de conversa recebe uma implementação injetada, assim os
// testes rodam com um armazenamento isolado em memória e a produção pode
// usar o Supabase.
type Repository interface {
	// Sessões
	GetState(ctx context.Context, userID string) (model.UserState, error)
	SetState(ctx context.Context, userID string, state model.UserState) error

	// Carrinhos
	AppendCartItem(ctx context.Context, userID string, item model.CartItem) error
	GetCartItems(ctx context.Context, userID string) ([]model.CartItem, error)
	ClearCart(ctx context.Context, userID string) error

	// Pedidos
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrders(ctx context.Context, since time.Time) ([]model.Order, error)
}
