package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/beniciojr/acougue_bot/internal/model"
)

// DailyRevenue é o faturamento de um dia
type DailyRevenue struct {
	Date    time.Time
	Revenue float64
}

// SalesReport resume os pedidos registrados a partir de uma data
type SalesReport struct {
	Since      time.Time
	OrderCount int
	ItemCount  int
	Revenue    float64
	ByMethod   map[model.PaymentMethod]float64
	Daily      []DailyRevenue
}

// SalesReport agrega os pedidos registrados desde since. Usado pelo
// comando de relatório do dono do açougue.
func (s *OrderFlow) SalesReport(ctx context.Context, since time.Time) (*SalesReport, error) {
	orders, err := s.repo.GetOrders(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	report := &SalesReport{
		Since:    since,
		ByMethod: make(map[model.PaymentMethod]float64),
	}

	daily := make(map[time.Time]float64)
	for _, order := range orders {
		report.OrderCount++
		report.ItemCount += len(order.Items)
		report.Revenue += order.Total
		report.ByMethod[order.PaymentMethod] += order.Total

		day := order.CreatedAt.Truncate(24 * time.Hour)
		daily[day] += order.Total
	}

	days := make([]time.Time, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	for _, day := range days {
		report.Daily = append(report.Daily, DailyRevenue{Date: day, Revenue: daily[day]})
	}
	return report, nil
}
