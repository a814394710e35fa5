package service

import (
	"errors"
	"strings"

	"github.com/ramani-fashion/api/internal/constants"
	"github.com/ramani-fashion/api/internal/models"
	"github.com/ramani-fashion/api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogQuery carries the raw public listing parameters. Attribute
// fields accept comma-separated value sets; unknown sort keys fall
// back to newest-first rather than erroring.
type CatalogQuery struct {
	Page         int
	Limit        int
	Category     string
	Fabric       string
	Color        string
	Occasion     string
	MinPrice     string
	MaxPrice     string
	InStock      bool
	IsNew        bool
	IsBestseller bool
	IsTrending   bool
	Search       string
	SortBy       string
	SortOrder    string
}

// CatalogPage is one page of catalog results.
type CatalogPage struct {
	Products []models.Product
	Total    int64
	Page     int
	Limit    int
}

// CatalogFacets lists the live distinct filterable attribute values.
type CatalogFacets struct {
	Categories []string `json:"categories"`
	Fabrics    []string `json:"fabrics"`
	Colors     []string `json:"colors"`
	Occasions  []string `json:"occasions"`
}

// ProductInput is the admin create/update payload.
type ProductInput struct {
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Price          float64                `json:"price"`
	OriginalPrice  *float64               `json:"originalPrice"`
	Images         []string               `json:"images"`
	Category       string                 `json:"category"`
	Subcategory    string                 `json:"subcategory"`
	Fabric         string                 `json:"fabric"`
	Color          string                 `json:"color"`
	Occasion       string                 `json:"occasion"`
	Pattern        string                 `json:"pattern"`
	WorkType       string                 `json:"workType"`
	BlousePiece    bool                   `json:"blousePiece"`
	SareeLength    string                 `json:"sareeLength"`
	InStock        *bool                  `json:"inStock"`
	StockQuantity  int                    `json:"stockQuantity"`
	IsNew          bool                   `json:"isNew"`
	IsBestseller   bool                   `json:"isBestseller"`
	IsTrending     bool                   `json:"isTrending"`
	Rating         float64                `json:"rating"`
	ReviewCount    int                    `json:"reviewCount"`
	Specifications map[string]interface{} `json:"specifications"`
}

// ProductService serves the public catalog and the admin CRUD over it.
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates the product service.
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// splitCSV splits a comma-separated value set, dropping blanks.
func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// parsePrice parses a price bound, ignoring unparseable input.
func parsePrice(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil
	}
	return &d
}

// List returns one catalog page for the query.
func (s *ProductService) List(query CatalogQuery) (*CatalogPage, error) {
	page := query.Page
	if page < 1 {
		page = constants.DefaultPage
	}
	limit := query.Limit
	if limit <= 0 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}

	filter := repository.CatalogFilter{
		Page:        page,
		PageSize:    limit,
		Categories:  splitCSV(query.Category),
		Fabrics:     splitCSV(query.Fabric),
		Colors:      splitCSV(query.Color),
		Occasions:   splitCSV(query.Occasion),
		MinPrice:    parsePrice(query.MinPrice),
		MaxPrice:    parsePrice(query.MaxPrice),
		InStockOnly: query.InStock,
		NewOnly:     query.IsNew,
		Bestsellers: query.IsBestseller,
		Trending:    query.IsTrending,
		Search:      query.Search,
		SortBy:      query.SortBy,
		SortOrder:   query.SortOrder,
	}

	products, total, err := s.productRepo.List(filter)
	if err != nil {
		return nil, err
	}
	return &CatalogPage{
		Products: products,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

// Get returns one product.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Facets returns the live distinct filter values.
func (s *ProductService) Facets() (*CatalogFacets, error) {
	facets := &CatalogFacets{}
	targets := []struct {
		column string
		dest   *[]string
	}{
		{"category", &facets.Categories},
		{"fabric", &facets.Fabrics},
		{"color", &facets.Colors},
		{"occasion", &facets.Occasions},
	}
	for _, target := range targets {
		values, err := s.productRepo.DistinctValues(target.column)
		if err != nil {
			return nil, err
		}
		*target.dest = values
	}
	return facets, nil
}

func (s *ProductService) applyInput(product *models.Product, input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" || input.Price < 0 || input.StockQuantity < 0 {
		return ErrInvalidInput
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.Price = models.NewMoneyFromFloat(input.Price)
	if input.OriginalPrice != nil && *input.OriginalPrice >= 0 {
		original := models.NewMoneyFromFloat(*input.OriginalPrice)
		product.OriginalPrice = &original
	} else {
		product.OriginalPrice = nil
	}
	product.Images = input.Images
	product.Category = strings.TrimSpace(input.Category)
	product.Subcategory = strings.TrimSpace(input.Subcategory)
	product.Fabric = strings.TrimSpace(input.Fabric)
	product.Color = strings.TrimSpace(input.Color)
	product.Occasion = strings.TrimSpace(input.Occasion)
	product.Pattern = strings.TrimSpace(input.Pattern)
	product.WorkType = strings.TrimSpace(input.WorkType)
	product.BlousePiece = input.BlousePiece
	product.SareeLength = strings.TrimSpace(input.SareeLength)
	product.StockQuantity = input.StockQuantity
	if input.InStock != nil {
		product.InStock = *input.InStock
	} else {
		product.InStock = input.StockQuantity > 0
	}
	product.IsNew = input.IsNew
	product.IsBestseller = input.IsBestseller
	product.IsTrending = input.IsTrending
	product.Rating = input.Rating
	product.ReviewCount = input.ReviewCount
	product.Specifications = models.JSON(input.Specifications)
	return nil
}

// Create inserts a new catalog item.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	product := &models.Product{}
	if err := s.applyInput(product, input); err != nil {
		return nil, err
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update overwrites an existing catalog item.
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if err := s.applyInput(product, input); err != nil {
		return nil, err
	}
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a catalog item.
func (s *ProductService) Delete(id uint) error {
	if err := s.productRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ListInventory returns products ordered by remaining stock.
func (s *ProductService) ListInventory(page, limit int) ([]models.Product, int64, error) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if limit <= 0 {
		limit = constants.DefaultLimit
	}
	return s.productRepo.ListByStockAsc(page, limit)
}

// UpdateStock sets a product's stock level. When the availability
// flag is omitted it follows the quantity.
func (s *ProductService) UpdateStock(id uint, stockQuantity int, inStock *bool) error {
	if stockQuantity < 0 {
		return ErrInvalidInput
	}
	available := stockQuantity > 0
	if inStock != nil {
		available = *inStock
	}
	if err := s.productRepo.UpdateStock(id, stockQuantity, available); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
