package service

import (
	"sort"
	"time"

	"go-retail-pos/internal/model"
	"go-retail-pos/internal/repository"

	"github.com/google/uuid"
)

type DashboardService interface {
	GetMetrics() (*model.DashboardMetrics, error)
}

type dashboardService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	now         func() time.Time
}

func NewDashboardService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) DashboardService {
	return &dashboardService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		now:         time.Now,
	}
}

// GetMetrics recomputes the dashboard snapshot from scratch. Any fetch
// failure propagates as-is; there is no partial computation on partial data.
func (s *dashboardService) GetMetrics() (*model.DashboardMetrics, error) {
	now := s.now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// Scalar sales metrics use the month-bounded window; the top-seller
	// ranking runs over the full history.
	monthSales, err := s.saleRepo.FindSince(startOfMonth)
	if err != nil {
		return nil, err
	}
	allSales, err := s.saleRepo.FindAll()
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	metrics := ComputeMetrics(now, monthSales, allSales, products)
	return &metrics, nil
}

// ComputeMetrics folds already-fetched collections into a metrics snapshot.
// monthSales must be bounded to the current calendar month; allSales is the
// unbounded set used for the top-seller ranking. Pure, no side effects.
func ComputeMetrics(now time.Time, monthSales, allSales []model.Sale, products []model.Product) model.DashboardMetrics {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Week starts on Sunday, time.Weekday's day zero.
	startOfWeek := startOfDay.AddDate(0, 0, -int(now.Weekday()))

	var daily, weekly, monthly int64
	for _, sale := range monthSales {
		monthly += sale.TotalAmount
		if !sale.CreatedAt.Before(startOfWeek) {
			weekly += sale.TotalAmount
		}
		if !sale.CreatedAt.Before(startOfDay) {
			daily += sale.TotalAmount
		}
	}

	var inventoryValue int64
	lowStock := []model.Product{}
	for _, p := range products {
		inventoryValue += p.Price * int64(p.Stock)
		if p.IsLowStock() {
			lowStock = append(lowStock, p)
		}
	}

	return model.DashboardMetrics{
		DailySales:          daily,
		WeeklySales:         weekly,
		MonthlySales:        monthly,
		TotalInventoryValue: inventoryValue,
		LowStockItems:       lowStock,
		TopSellingProducts:  topSellingProducts(allSales, products),
	}
}

// topSellingProducts ranks products by cumulative quantity sold, descending,
// ties in first-encountered order, capped at five entries. Line items whose
// product no longer exists are skipped rather than failing the dashboard.
func topSellingProducts(sales []model.Sale, products []model.Product) []model.TopSellingProduct {
	quantities := make(map[uuid.UUID]int)
	order := make([]uuid.UUID, 0)
	for _, sale := range sales {
		for _, item := range sale.Items {
			if _, seen := quantities[item.ProductID]; !seen {
				order = append(order, item.ProductID)
			}
			quantities[item.ProductID] += item.Quantity
		}
	}

	byID := make(map[uuid.UUID]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	ranked := make([]model.TopSellingProduct, 0, len(order))
	for _, id := range order {
		product, ok := byID[id]
		if !ok {
			continue
		}
		ranked = append(ranked, model.TopSellingProduct{Product: product, Quantity: quantities[id]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	return ranked
}
