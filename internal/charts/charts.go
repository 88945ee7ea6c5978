package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/beniciojr/acougue_bot/internal/service"
)

// ChartGenerator gera os gráficos do relatório de vendas
type ChartGenerator struct{}

// NewChartGenerator cria um novo gerador de gráficos
func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{}
}

// GenerateRevenueChart cria um gráfico de barras com o faturamento diário.
// Devolve nil quando não há dados para desenhar.
func (g *ChartGenerator) GenerateRevenueChart(report *service.SalesReport) ([]byte, error) {
	if report == nil || len(report.Daily) == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(report.Daily))
	for _, day := range report.Daily {
		bars = append(bars, chart.Value{
			Label: day.Date.Format("02/01"),
			Value: day.Revenue,
		})
	}

	graph := chart.BarChart{
		Title:    "Faturamento diário (R$)",
		Width:    800,
		Height:   400,
		BarWidth: 40,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render revenue chart: %w", err)
	}
	return buf.Bytes(), nil
}
