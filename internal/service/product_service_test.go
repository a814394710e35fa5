package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ramani-fashion/api/internal/constants"
	"github.com/ramani-fashion/api/internal/models"
	"github.com/ramani-fashion/api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewProductService(repository.NewProductRepository(db)), db
}

func TestListNormalizesPageAndLimit(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	page, err := svc.List(CatalogQuery{Page: -3, Limit: 0})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Page != constants.DefaultPage {
		t.Fatalf("page want %d got %d", constants.DefaultPage, page.Page)
	}
	if page.Limit != constants.DefaultLimit {
		t.Fatalf("limit want %d got %d", constants.DefaultLimit, page.Limit)
	}

	page, err = svc.List(CatalogQuery{Page: 1, Limit: 5000})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Limit != constants.MaxLimit {
		t.Fatalf("limit want %d got %d", constants.MaxLimit, page.Limit)
	}
}

func TestListSplitsCommaSeparatedAttributeSets(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	for _, category := range []string{"Silk Sarees", "Cotton Sarees", "Linen Sarees"} {
		if _, err := svc.Create(ProductInput{Name: category + " One", Price: 1000, Category: category, StockQuantity: 5}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	page, err := svc.List(CatalogQuery{Category: "Silk Sarees, Linen Sarees , "})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("total want 2 got %d", page.Total)
	}
}

func TestListIgnoresUnparseablePriceBounds(t *testing.T) {
	svc, _ := setupProductServiceTest(t)
	if _, err := svc.Create(ProductInput{Name: "Solo", Price: 1000, Category: "Silk Sarees", StockQuantity: 5}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	page, err := svc.List(CatalogQuery{MinPrice: "cheap", MaxPrice: "-50"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("total want 1 got %d", page.Total)
	}
}

func TestCreateValidatesInput(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	if _, err := svc.Create(ProductInput{Name: "  ", Price: 100}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank name: want ErrInvalidInput got %v", err)
	}
	if _, err := svc.Create(ProductInput{Name: "X", Price: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative price: want ErrInvalidInput got %v", err)
	}
	if _, err := svc.Create(ProductInput{Name: "X", Price: 100, StockQuantity: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative stock: want ErrInvalidInput got %v", err)
	}
}

func TestAvailabilityFollowsStockWhenFlagOmitted(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	product, err := svc.Create(ProductInput{Name: "Auto", Price: 100, Category: "Silk Sarees", StockQuantity: 0})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.InStock {
		t.Fatalf("zero stock must read unavailable")
	}

	if err := svc.UpdateStock(product.ID, 5, nil); err != nil {
		t.Fatalf("update stock failed: %v", err)
	}
	refreshed, err := svc.Get(product.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !refreshed.InStock || refreshed.StockQuantity != 5 {
		t.Fatalf("stock not applied: %+v", refreshed)
	}

	// An explicit flag wins over the quantity heuristic.
	off := false
	if err := svc.UpdateStock(product.ID, 5, &off); err != nil {
		t.Fatalf("update stock failed: %v", err)
	}
	refreshed, err = svc.Get(product.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if refreshed.InStock {
		t.Fatalf("explicit flag ignored")
	}
}

func TestUpdateStockRejectsNegativeAndMissing(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	if err := svc.UpdateStock(1, -1, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput got %v", err)
	}
	if err := svc.UpdateStock(9999, 5, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}

func TestFacetsReturnDistinctLiveValues(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	inputs := []ProductInput{
		{Name: "A", Price: 100, Category: "Silk Sarees", Fabric: "Silk", Color: "Red", Occasion: "Wedding", StockQuantity: 1},
		{Name: "B", Price: 100, Category: "Silk Sarees", Fabric: "Silk", Color: "Blue", Occasion: "Festive", StockQuantity: 1},
		{Name: "C", Price: 100, Category: "Cotton Sarees", Fabric: "Cotton", Color: "Red", Occasion: "Casual", StockQuantity: 1},
	}
	for _, input := range inputs {
		if _, err := svc.Create(input); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	facets, err := svc.Facets()
	if err != nil {
		t.Fatalf("facets failed: %v", err)
	}
	if len(facets.Categories) != 2 {
		t.Fatalf("categories want 2 got %d: %v", len(facets.Categories), facets.Categories)
	}
	if len(facets.Fabrics) != 2 {
		t.Fatalf("fabrics want 2 got %d", len(facets.Fabrics))
	}
	if len(facets.Colors) != 2 {
		t.Fatalf("colors want 2 got %d", len(facets.Colors))
	}
	if len(facets.Occasions) != 3 {
		t.Fatalf("occasions want 3 got %d", len(facets.Occasions))
	}
}
