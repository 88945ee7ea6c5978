package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/supabase-community/supabase-go"

	"github.com/beniciojr/acougue_bot/internal/model"
)

// SupabaseRepository persiste sessões, carrinhos e pedidos no Supabase,
// para que as conversas sobrevivam a reinícios do bot.
//
// Tabelas esperadas: sessions (user_id pk, stage, category, updated_at),
// cart_items (user_id, product_id, name, price, category, added_at) e
// orders (id pk, user_id, items jsonb, total, payment_method, created_at).
type SupabaseRepository struct {
	client *supabase.Client
}

func NewSupabaseRepository(url, key string) (*SupabaseRepository, error) {
	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		return nil, err
	}

	return &SupabaseRepository{
		client: client,
	}, nil
}

// sessionRow é a linha da tabela sessions
type sessionRow struct {
	UserID    string         `json:"user_id"`
	Stage     int            `json:"stage"`
	Category  model.Category `json:"category"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// cartItemRow é a linha da tabela cart_items
type cartItemRow struct {
	UserID    string         `json:"user_id"`
	ProductID int            `json:"product_id"`
	Name      string         `json:"name"`
	Price     float64        `json:"price"`
	Category  model.Category `json:"category"`
	AddedAt   time.Time      `json:"added_at"`
}

func (r *SupabaseRepository) GetState(ctx context.Context, userID string) (model.UserState, error) {
	data, count, err := r.client.From("sessions").
		Select("*", "", false).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return model.UserState{}, fmt.Errorf("failed to get session: %w", err)
	}
	_ = count

	var rows []sessionRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return model.UserState{}, fmt.Errorf("failed to parse session: %w", err)
	}
	if len(rows) == 0 {
		// Usuário nunca visto começa no estado inicial
		return model.UserState{}, nil
	}
	return model.UserState{
		Stage:    model.Stage(rows[0].Stage),
		Category: rows[0].Category,
	}, nil
}

func (r *SupabaseRepository) SetState(ctx context.Context, userID string, state model.UserState) error {
	row := sessionRow{
		UserID:    userID,
		Stage:     int(state.Stage),
		Category:  state.Category,
		UpdatedAt: time.Now(),
	}
	_, count, err := r.client.From("sessions").
		Insert(row, true, "user_id", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}
	_ = count
	return nil
}

func (r *SupabaseRepository) AppendCartItem(ctx context.Context, userID string, item model.CartItem) error {
	row := cartItemRow{
		UserID:    userID,
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     item.Price,
		Category:  item.Category,
		AddedAt:   item.AddedAt,
	}
	_, count, err := r.client.From("cart_items").
		Insert(row, false, "", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to append cart item: %w", err)
	}
	_ = count
	return nil
}

func (r *SupabaseRepository) GetCartItems(ctx context.Context, userID string) ([]model.CartItem, error) {
	data, count, err := r.client.From("cart_items").
		Select("*", "", false).
		Eq("user_id", userID).
		Order("added_at.asc", nil).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}
	_ = count

	var rows []cartItemRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse cart items: %w", err)
	}

	items := make([]model.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, model.CartItem{
			ProductID: row.ProductID,
			Name:      row.Name,
			Price:     row.Price,
			Category:  row.Category,
			AddedAt:   row.AddedAt,
		})
	}
	return items, nil
}

func (r *SupabaseRepository) ClearCart(ctx context.Context, userID string) error {
	_, count, err := r.client.From("cart_items").
		Delete("", "").
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	_ = count
	return nil
}

func (r *SupabaseRepository) CreateOrder(ctx context.Context, order *model.Order) error {
	order.GenerateID()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	data, count, err := r.client.From("orders").
		Insert(order, false, "", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	_ = count

	var created []model.Order
	if err := json.Unmarshal(data, &created); err != nil {
		return fmt.Errorf("failed to parse created order: %w", err)
	}
	if len(created) > 0 {
		order.CreatedAt = created[0].CreatedAt
	}
	return nil
}

func (r *SupabaseRepository) GetOrders(ctx context.Context, since time.Time) ([]model.Order, error) {
	data, count, err := r.client.From("orders").
		Select("*", "", false).
		Gte("created_at", since.Format(time.RFC3339)).
		Order("created_at.asc", nil).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	_ = count

	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("failed to parse orders: %w", err)
	}
	return orders, nil
}
