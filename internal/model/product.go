package model

// Category identifica uma das seções fixas do catálogo
type Category string

const (
	CategorySuinas  Category = "suinas"
	CategoryBovinas Category = "bovinas"
	CategoryPeixes  Category = "peixes"
)

// Product representa um corte disponível no catálogo.
// O ID é único dentro da categoria e o preço é por quilo.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
