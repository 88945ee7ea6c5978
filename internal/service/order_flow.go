package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/beniciojr/acougue_bot/internal/catalog"
	"github.com/beniciojr/acougue_bot/internal/model"
)

// Repository define a interface do armazenamento usado pelo fluxo de pedidos
type Repository interface {
	GetState(ctx context.Context, userID string) (model.UserState, error)
	SetState(ctx context.Context, userID string, state model.UserState) error
	AppendCartItem(ctx context.Context, userID string, item model.CartItem) error
	GetCartItems(ctx context.Context, userID string) ([]model.CartItem, error)
	ClearCart(ctx context.Context, userID string) error
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrders(ctx context.Context, since time.Time) ([]model.Order, error)
}

// OrderFlow conduz a conversa de pedido: saudação, escolha de categoria,
// escolha de produto, revisão do carrinho e forma de pagamento. Todo o
// estado por usuário vive no Repository injetado; o catálogo é somente
// leitura.
type OrderFlow struct {
	repo    Repository
	catalog *catalog.Catalog
}

// NewOrderFlow cria um novo fluxo de pedidos
func NewOrderFlow(repo Repository, cat *catalog.Catalog) *OrderFlow {
	return &OrderFlow{
		repo:    repo,
		catalog: cat,
	}
}

// Dispatch processa uma mensagem recebida e devolve a resposta a enviar.
// Cada chamada é um passo completo da máquina de estados: lê o estado do
// usuário, interpreta o texto, aplica as mutações e grava o novo estado.
// Qualquer falha interna é registrada no log e convertida em uma resposta
// genérica, sem alterar o estado nem o carrinho do usuário.
func (s *OrderFlow) Dispatch(ctx context.Context, userID, rawText string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("panic ao processar mensagem do usuário %s: %v", userID, r)
			reply = msgInternalError
		}
	}()

	text := strings.ToLower(strings.TrimSpace(rawText))

	state, err := s.repo.GetState(ctx, userID)
	if err != nil {
		return s.internalError(userID, err)
	}

	log.Printf("usuário %s no estado %s: %q", userID, state.Stage, text)

	switch state.Stage {
	case model.StageInitial:
		return s.greet(ctx, userID)
	case model.StageGreeted:
		return s.handleMenuSelection(ctx, userID, text)
	case model.StageChoosingCategory:
		return s.handleProductSelection(ctx, userID, text, state.Category)
	case model.StageViewingCart:
		return s.handleCartOption(ctx, userID, text)
	case model.StageAwaitingPayment:
		return s.handlePayment(ctx, userID, text)
	default:
		return s.internalError(userID, fmt.Errorf("estado desconhecido: %d", state.Stage))
	}
}

// greet envia as boas-vindas com o menu de categorias. A primeira mensagem
// de um usuário sempre cai aqui, independente do conteúdo.
func (s *OrderFlow) greet(ctx context.Context, userID string) string {
	if err := s.repo.SetState(ctx, userID, model.UserState{Stage: model.StageGreeted}); err != nil {
		return s.internalError(userID, err)
	}
	return msgWelcome
}

func (s *OrderFlow) handleMenuSelection(ctx context.Context, userID, text string) string {
	switch text {
	case "1", "2", "3":
		idx := int(text[0] - '1')
		return s.showCategoryMenu(ctx, userID, s.catalog.Categories()[idx])
	case "ver carrinho":
		return s.viewCart(ctx, userID)
	default:
		return msgInvalidMenuOption
	}
}

// showCategoryMenu lista os produtos da categoria e deixa o usuário
// escolhendo dentro dela
func (s *OrderFlow) showCategoryMenu(ctx context.Context, userID string, category model.Category) string {
	products, err := s.catalog.List(category)
	if err != nil {
		return s.internalError(userID, err)
	}

	menu := fmt.Sprintf("*%s:* \n", catalog.Label(category))
	for _, p := range products {
		menu += fmt.Sprintf("%d. %s: R$ %.2f/kg\n", p.ID, p.Name, p.Price)
	}

	newState := model.UserState{Stage: model.StageChoosingCategory, Category: category}
	if err := s.repo.SetState(ctx, userID, newState); err != nil {
		return s.internalError(userID, err)
	}
	return menu
}

// handleProductSelection compara o texto inteiro com os IDs da categoria.
// IDs são únicos dentro da categoria, então o primeiro encontrado resolve.
func (s *OrderFlow) handleProductSelection(ctx context.Context, userID, text string, category model.Category) string {
	id, err := strconv.Atoi(text)
	if err != nil {
		return msgInvalidProduct
	}

	product, err := s.catalog.Lookup(category, id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		return msgInvalidProduct
	}
	if err != nil {
		return s.internalError(userID, err)
	}

	if err := s.repo.AppendCartItem(ctx, userID, model.NewCartItem(category, product)); err != nil {
		return s.internalError(userID, err)
	}
	if err := s.repo.SetState(ctx, userID, model.UserState{Stage: model.StageViewingCart}); err != nil {
		return s.internalError(userID, err)
	}

	return fmt.Sprintf("Você adicionou %s ao seu carrinho por R$ %.2f. Deseja continuar comprando?\n\n"+
		"Digite \"sim\" para continuar ou \"ver carrinho\" para ver seu carrinho.",
		product.Name, product.Price)
}

// viewCart monta a visão do carrinho na ordem de inserção, com índice a
// partir de 1 e total acumulado. Carrinho vazio responde o aviso e não
// muda de etapa.
func (s *OrderFlow) viewCart(ctx context.Context, userID string) string {
	items, err := s.repo.GetCartItems(ctx, userID)
	if err != nil {
		return s.internalError(userID, err)
	}

	if len(items) == 0 {
		return msgEmptyCart
	}

	text := "Seu carrinho contém:\n"
	for i, item := range items {
		text += fmt.Sprintf("%d. %s: R$ %.2f\n", i+1, item.Name, item.Price)
	}
	text += fmt.Sprintf("Total: R$ %.2f\n\n%s", ComputeTotal(items), msgCartPrompt)

	if err := s.repo.SetState(ctx, userID, model.UserState{Stage: model.StageViewingCart}); err != nil {
		return s.internalError(userID, err)
	}
	return text
}

func (s *OrderFlow) handleCartOption(ctx context.Context, userID, text string) string {
	switch text {
	case "pagar":
		if err := s.repo.SetState(ctx, userID, model.UserState{Stage: model.StageAwaitingPayment}); err != nil {
			return s.internalError(userID, err)
		}
		return msgPaymentPrompt
	case "adicionar mais", "sim":
		return s.greet(ctx, userID)
	default:
		return msgInvalidCartOption
	}
}

func (s *OrderFlow) handlePayment(ctx context.Context, userID, text string) string {
	switch text {
	case "1":
		return s.confirmPayment(ctx, userID, model.PaymentPix, msgPixChosen)
	case "2":
		return s.confirmPayment(ctx, userID, model.PaymentCard, msgCardChosen)
	default:
		return msgInvalidPayment
	}
}

// confirmPayment registra o pedido com a forma de pagamento escolhida,
// esvazia o carrinho e devolve o usuário ao estado inicial. A gravação do
// estado é a última mutação: se algo falhar antes, a conversa continua de
// onde estava.
func (s *OrderFlow) confirmPayment(ctx context.Context, userID string, method model.PaymentMethod, reply string) string {
	items, err := s.repo.GetCartItems(ctx, userID)
	if err != nil {
		return s.internalError(userID, err)
	}

	if len(items) > 0 {
		order := &model.Order{
			UserID:        userID,
			Items:         items,
			Total:         ComputeTotal(items),
			PaymentMethod: method,
			CreatedAt:     time.Now(),
		}
		order.GenerateID()
		if err := s.repo.CreateOrder(ctx, order); err != nil {
			return s.internalError(userID, err)
		}
		if err := s.repo.ClearCart(ctx, userID); err != nil {
			return s.internalError(userID, err)
		}
	}

	if err := s.repo.SetState(ctx, userID, model.UserState{Stage: model.StageInitial}); err != nil {
		return s.internalError(userID, err)
	}
	return reply
}

// ComputeTotal soma os preços unitários dos itens. Função pura; o
// arredondamento para duas casas acontece só na formatação.
func ComputeTotal(items []model.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price
	}
	return total
}

func (s *OrderFlow) internalError(userID string, err error) string {
	log.Printf("erro ao processar mensagem do usuário %s: %v", userID, err)
	return msgInternalError
}
