package repository

import (
	"fmt"
	"testing"

	"github.com/ramani-fashion/api/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate product failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createCatalogProduct(t *testing.T, repo *GormProductRepository, name, category, fabric string, price int64, inStock bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:          name,
		Description:   "test saree",
		Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Category:      category,
		Fabric:        fabric,
		Color:         "Red",
		Occasion:      "Wedding",
		InStock:       inStock,
		StockQuantity: 10,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestListFiltersByCategorySetAndPriceRange(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createCatalogProduct(t, repo, "Silk A", "Silk Sarees", "Silk", 1500, true)
	createCatalogProduct(t, repo, "Cotton B", "Cotton Sarees", "Cotton", 2000, true)
	createCatalogProduct(t, repo, "Georgette C", "Georgette Sarees", "Georgette", 3000, true)
	createCatalogProduct(t, repo, "Silk D", "Silk Sarees", "Silk", 9000, true)

	minPrice := decimal.NewFromInt(1000)
	maxPrice := decimal.NewFromInt(5000)
	products, total, err := repo.List(CatalogFilter{
		Page:       1,
		PageSize:   12,
		Categories: []string{"Silk Sarees", "Cotton Sarees"},
		MinPrice:   &minPrice,
		MaxPrice:   &maxPrice,
		SortBy:     "price",
		SortOrder:  "asc",
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("total want 2 got %d", total)
	}
	if len(products) != 2 {
		t.Fatalf("len want 2 got %d", len(products))
	}
	if products[0].Name != "Silk A" || products[1].Name != "Cotton B" {
		t.Fatalf("unexpected order: %s, %s", products[0].Name, products[1].Name)
	}
	for _, p := range products {
		if p.Category != "Silk Sarees" && p.Category != "Cotton Sarees" {
			t.Fatalf("unexpected category %s", p.Category)
		}
	}
}

func TestListPriceBoundsAreInclusive(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createCatalogProduct(t, repo, "At Min", "Silk Sarees", "Silk", 1000, true)
	createCatalogProduct(t, repo, "At Max", "Silk Sarees", "Silk", 5000, true)
	createCatalogProduct(t, repo, "Below", "Silk Sarees", "Silk", 999, true)
	createCatalogProduct(t, repo, "Above", "Silk Sarees", "Silk", 5001, true)

	minPrice := decimal.NewFromInt(1000)
	maxPrice := decimal.NewFromInt(5000)
	_, total, err := repo.List(CatalogFilter{Page: 1, PageSize: 12, MinPrice: &minPrice, MaxPrice: &maxPrice})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("total want 2 got %d", total)
	}
}

func TestListUnknownSortKeyFallsBackToNewestFirst(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	first := createCatalogProduct(t, repo, "Older", "Silk Sarees", "Silk", 100, true)
	second := createCatalogProduct(t, repo, "Newer", "Silk Sarees", "Silk", 200, true)

	products, _, err := repo.List(CatalogFilter{
		Page:      1,
		PageSize:  12,
		SortBy:    "password; DROP TABLE products",
		SortOrder: "asc",
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("len want 2 got %d", len(products))
	}
	// Unknown key must fail closed to created_at desc, ignoring order.
	if products[0].ID != second.ID || products[1].ID != first.ID {
		t.Fatalf("unexpected order: %d, %d", products[0].ID, products[1].ID)
	}
}

func TestListPageBeyondLastReturnsEmpty(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createCatalogProduct(t, repo, "Only", "Silk Sarees", "Silk", 100, true)

	products, total, err := repo.List(CatalogFilter{Page: 5, PageSize: 12})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("total want 1 got %d", total)
	}
	if len(products) != 0 {
		t.Fatalf("len want 0 got %d", len(products))
	}
}

func TestListSearchMatchesNameAndDescription(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createCatalogProduct(t, repo, "Kanjivaram Special", "Silk Sarees", "Silk", 100, true)
	banarasi := createCatalogProduct(t, repo, "Classic Weave", "Silk Sarees", "Silk", 100, true)
	banarasi.Description = "authentic banarasi brocade"
	if err := repo.Update(banarasi); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	_, total, err := repo.List(CatalogFilter{Page: 1, PageSize: 12, Search: "banarasi"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("total want 1 got %d", total)
	}
}

func TestDistinctValuesOnlyAcceptsFacetColumns(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createCatalogProduct(t, repo, "A", "Silk Sarees", "Silk", 100, true)
	createCatalogProduct(t, repo, "B", "Cotton Sarees", "Cotton", 100, true)
	createCatalogProduct(t, repo, "C", "Cotton Sarees", "Cotton", 100, true)

	values, err := repo.DistinctValues("category")
	if err != nil {
		t.Fatalf("distinct failed: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("values want 2 got %d: %v", len(values), values)
	}

	if _, err := repo.DistinctValues("password_hash"); err == nil {
		t.Fatalf("expected error for non-facet column")
	}
}

func TestCreatePersistsOutOfStockFlag(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	soldOut := createCatalogProduct(t, repo, "Sold Out", "Silk Sarees", "Silk", 100, false)
	createCatalogProduct(t, repo, "Available", "Silk Sarees", "Silk", 100, true)

	fetched, err := repo.GetByID(soldOut.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fetched.InStock {
		t.Fatalf("unavailable product persisted as in stock")
	}

	products, total, err := repo.List(CatalogFilter{Page: 1, PageSize: 12, InStockOnly: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("total want 1 got %d", total)
	}
	if products[0].Name != "Available" {
		t.Fatalf("unexpected product %s", products[0].Name)
	}
}

func TestDeleteMissingProductReportsNotFound(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	if err := repo.Delete(12345); err != gorm.ErrRecordNotFound {
		t.Fatalf("want ErrRecordNotFound got %v", err)
	}
}

func TestCountLowStockIgnoresUnavailableProducts(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	low := createCatalogProduct(t, repo, "Low", "Silk Sarees", "Silk", 100, true)
	low.StockQuantity = 3
	if err := repo.Update(low); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	out := createCatalogProduct(t, repo, "Out", "Silk Sarees", "Silk", 100, false)
	out.StockQuantity = 0
	if err := repo.Update(out); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	createCatalogProduct(t, repo, "Plenty", "Silk Sarees", "Silk", 100, true)

	lowCount, err := repo.CountLowStock(10)
	if err != nil {
		t.Fatalf("count low stock failed: %v", err)
	}
	if lowCount != 1 {
		t.Fatalf("low stock want 1 got %d", lowCount)
	}
	outCount, err := repo.CountOutOfStock()
	if err != nil {
		t.Fatalf("count out of stock failed: %v", err)
	}
	if outCount != 1 {
		t.Fatalf("out of stock want 1 got %d", outCount)
	}
}
