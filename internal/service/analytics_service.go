package service

import (
	"github.com/ramani-fashion/api/internal/constants"
	"github.com/ramani-fashion/api/internal/models"
	"github.com/ramani-fashion/api/internal/repository"
)

// AnalyticsOverview is the admin dashboard summary. Everything is
// computed by live scans; at catalog scale that is cheaper than
// keeping counters consistent.
type AnalyticsOverview struct {
	TotalProducts      int64            `json:"totalProducts"`
	TotalUsers         int64            `json:"totalUsers"`
	TotalOrders        int64            `json:"totalOrders"`
	TotalRevenue       float64          `json:"totalRevenue"`
	LowStockProducts   int64            `json:"lowStockProducts"`
	OutOfStockProducts int64            `json:"outOfStockProducts"`
	RecentOrders       []models.Order   `json:"recentOrders"`
	TopProducts        []models.Product `json:"topProducts"`
}

// CustomerSummary is one row of the admin customers listing.
type CustomerSummary struct {
	User          models.User `json:"user"`
	OrderCount    int64       `json:"orderCount"`
	TotalSpent    float64     `json:"totalSpent"`
	WishlistCount int64       `json:"wishlistCount"`
}

// AnalyticsService aggregates store statistics for the back office.
type AnalyticsService struct {
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
	orderRepo    repository.OrderRepository
	wishlistRepo repository.WishlistRepository
}

// NewAnalyticsService creates the analytics service.
func NewAnalyticsService(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	wishlistRepo repository.WishlistRepository,
) *AnalyticsService {
	return &AnalyticsService{
		productRepo:  productRepo,
		userRepo:     userRepo,
		orderRepo:    orderRepo,
		wishlistRepo: wishlistRepo,
	}
}

// Overview computes the dashboard summary.
func (s *AnalyticsService) Overview() (*AnalyticsOverview, error) {
	overview := &AnalyticsOverview{}

	var err error
	if overview.TotalProducts, err = s.productRepo.Count(); err != nil {
		return nil, err
	}
	if overview.TotalUsers, err = s.userRepo.Count(); err != nil {
		return nil, err
	}
	if overview.TotalOrders, err = s.orderRepo.Count(); err != nil {
		return nil, err
	}
	if overview.TotalRevenue, err = s.orderRepo.SumTotal(); err != nil {
		return nil, err
	}
	if overview.LowStockProducts, err = s.productRepo.CountLowStock(constants.LowStockThreshold); err != nil {
		return nil, err
	}
	if overview.OutOfStockProducts, err = s.productRepo.CountOutOfStock(); err != nil {
		return nil, err
	}
	if overview.RecentOrders, err = s.orderRepo.ListRecent(10); err != nil {
		return nil, err
	}
	if overview.TopProducts, err = s.productRepo.TopRated(5); err != nil {
		return nil, err
	}
	return overview, nil
}

// Customers lists users with their order and wishlist aggregates.
func (s *AnalyticsService) Customers(filter repository.CustomerListFilter) ([]CustomerSummary, int64, error) {
	users, total, err := s.userRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]CustomerSummary, 0, len(users))
	for _, user := range users {
		orderCount, err := s.orderRepo.CountByUser(user.ID)
		if err != nil {
			return nil, 0, err
		}
		totalSpent, err := s.orderRepo.SumTotalByUser(user.ID)
		if err != nil {
			return nil, 0, err
		}
		wishlistCount, err := s.wishlistRepo.CountByUser(user.ID)
		if err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, CustomerSummary{
			User:          user,
			OrderCount:    orderCount,
			TotalSpent:    totalSpent,
			WishlistCount: wishlistCount,
		})
	}
	return summaries, total, nil
}
