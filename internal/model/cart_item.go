package model

import "time"

// CartItem é uma cópia do produto no momento da seleção.
// Alterações posteriores no catálogo não afetam itens já adicionados.
type CartItem struct {
	ProductID int       `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Category  Category  `json:"category"`
	AddedAt   time.Time `json:"added_at,omitempty"`
}

// NewCartItem copia os dados do produto para um item de carrinho
func NewCartItem(category Category, product Product) CartItem {
	return CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Category:  category,
		AddedAt:   time.Now(),
	}
}
