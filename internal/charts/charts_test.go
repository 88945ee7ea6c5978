package charts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beniciojr/acougue_bot/internal/service"
)

func TestGenerateRevenueChart_NoData(t *testing.T) {
	g := NewChartGenerator()

	png, err := g.GenerateRevenueChart(nil)
	require.NoError(t, err)
	assert.Nil(t, png)

	png, err = g.GenerateRevenueChart(&service.SalesReport{})
	require.NoError(t, err)
	assert.Nil(t, png)
}

func TestGenerateRevenueChart_RendersPNG(t *testing.T) {
	g := NewChartGenerator()

	report := &service.SalesReport{
		Daily: []service.DailyRevenue{
			{Date: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), Revenue: 65.00},
			{Date: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), Revenue: 111.00},
		},
	}

	png, err := g.GenerateRevenueChart(report)
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// Assinatura PNG
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
