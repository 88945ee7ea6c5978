package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod é a forma de pagamento escolhida pelo cliente.
// O bot apenas registra a escolha, nunca executa a cobrança.
type PaymentMethod string

const (
	PaymentPix  PaymentMethod = "pix"
	PaymentCard PaymentMethod = "cartao"
)

// Order é a fotografia do carrinho no momento da confirmação do pagamento
type Order struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	Items         []CartItem    `json:"items"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	CreatedAt     time.Time     `json:"created_at"`
}

// GenerateID gera um novo UUID para o pedido, se ele ainda não foi definido
func (o *Order) GenerateID() {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
}
