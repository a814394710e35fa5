package public

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ramani-fashion/api/internal/http/response"
	"github.com/ramani-fashion/api/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProducts lists the catalog with filters, sorting and pagination.
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	query := service.CatalogQuery{
		Page:         page,
		Limit:        limit,
		Category:     c.Query("category"),
		Fabric:       c.Query("fabric"),
		Color:        c.Query("color"),
		Occasion:     c.Query("occasion"),
		MinPrice:     c.Query("minPrice"),
		MaxPrice:     c.Query("maxPrice"),
		InStock:      c.Query("inStock") == "true",
		IsNew:        c.Query("isNew") == "true",
		IsBestseller: c.Query("isBestseller") == "true",
		IsTrending:   c.Query("isTrending") == "true",
		Search:       c.Query("search"),
		SortBy:       c.Query("sort"),
		SortOrder:    c.Query("order"),
	}

	result, err := h.ProductService.List(query)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch products", err)
		return
	}

	response.OK(c, gin.H{
		"products":   result.Products,
		"pagination": response.NewPagination(result.Page, result.Limit, result.Total),
	})
}

// GetProduct returns one product.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid product id", nil)
		return
	}

	product, err := h.ProductService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Product not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch product", err)
		return
	}
	response.OK(c, product)
}

// GetFilters returns the live distinct filter values.
func (h *Handler) GetFilters(c *gin.Context) {
	facets, err := h.ProductService.Facets()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch filters", err)
		return
	}
	response.OK(c, facets)
}
