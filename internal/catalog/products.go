package catalog

import "github.com/beniciojr/acougue_bot/internal/model"

// Ordem das categorias no menu de boas-vindas
var defaultOrder = []model.Category{
	model.CategorySuinas,
	model.CategoryBovinas,
	model.CategoryPeixes,
}

// Tabela de preços do açougue, por quilo
var defaultProducts = map[model.Category][]model.Product{
	model.CategorySuinas: {
		{ID: 1, Name: "Costelinha de porco", Price: 15.50},
		{ID: 2, Name: "Linguiça calabresa", Price: 12.80},
		{ID: 3, Name: "Pernil suíno", Price: 14.20},
		{ID: 4, Name: "Lombo suíno", Price: 16.00},
		{ID: 5, Name: "Panceta suína", Price: 13.50},
		{ID: 6, Name: "Salsicha fresca", Price: 8.90},
		{ID: 7, Name: "Mortadela", Price: 11.00},
		{ID: 8, Name: "Copa suína", Price: 17.50},
		{ID: 9, Name: "Joelho de porco", Price: 12.00},
		{ID: 10, Name: "Bochecha de porco", Price: 14.00},
	},
	model.CategoryBovinas: {
		{ID: 1, Name: "Picanha", Price: 65.00},
		{ID: 2, Name: "Alcatra", Price: 45.00},
		{ID: 3, Name: "Maminha", Price: 40.00},
	},
	model.CategoryPeixes: {
		{ID: 1, Name: "Salmão", Price: 70.00},
		{ID: 2, Name: "Tilápia", Price: 30.00},
		{ID: 3, Name: "Bacalhau", Price: 85.00},
	},
}
