package catalog

import (
	"errors"
	"strings"

	"github.com/beniciojr/acougue_bot/internal/model"
)

// Erros das operações de consulta ao catálogo
var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrProductNotFound = errors.New("product not found")
)

// Catalog é o cardápio fixo do açougue: categoria -> lista ordenada de
// produtos. É carregado uma vez e nunca alterado durante a execução.
type Catalog struct {
	categories []model.Category
	products   map[model.Category][]model.Product
}

// New cria um catálogo com as categorias na ordem do menu
func New(products map[model.Category][]model.Product, order []model.Category) *Catalog {
	return &Catalog{
		categories: order,
		products:   products,
	}
}

// Default devolve o catálogo padrão do açougue
func Default() *Catalog {
	return New(defaultProducts, defaultOrder)
}

// Categories devolve as categorias na ordem em que aparecem no menu
func (c *Catalog) Categories() []model.Category {
	out := make([]model.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// List devolve os produtos da categoria na ordem do catálogo
func (c *Catalog) List(category model.Category) ([]model.Product, error) {
	products, ok := c.products[category]
	if !ok {
		return nil, ErrUnknownCategory
	}
	out := make([]model.Product, len(products))
	copy(out, products)
	return out, nil
}

// Lookup busca o produto com o ID informado dentro da categoria
func (c *Catalog) Lookup(category model.Category, id int) (model.Product, error) {
	products, ok := c.products[category]
	if !ok {
		return model.Product{}, ErrUnknownCategory
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, ErrProductNotFound
}

// Label devolve o identificador da categoria com a primeira letra maiúscula
func Label(category model.Category) string {
	s := string(category)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
