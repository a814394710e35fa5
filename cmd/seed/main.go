package main

import (
	"github.com/ramani-fashion/api/internal/config"
	"github.com/ramani-fashion/api/internal/logger"
	"github.com/ramani-fashion/api/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	for _, product := range seedProducts() {
		var existing models.Product
		if err := models.DB.Where("name = ?", product.Name).First(&existing).Error; err == nil {
			stdLog.Printf("Product already exists: %s", product.Name)
			continue
		}
		if err := models.DB.Create(&product).Error; err != nil {
			stdLog.Printf("Failed to create product %s: %v", product.Name, err)
			continue
		}
		stdLog.Printf("Created product: %s", product.Name)
	}

	stdLog.Printf("Seeding complete")
}

func seedProducts() []models.Product {
	originalPrice := func(v float64) *models.Money {
		m := models.NewMoneyFromFloat(v)
		return &m
	}

	return []models.Product{
		{
			Name:          "Kanjivaram Silk Saree - Royal Blue",
			Description:   "Handwoven Kanjivaram silk saree with traditional temple border and rich zari work.",
			Price:         models.NewMoneyFromFloat(12999),
			OriginalPrice: originalPrice(15999),
			Images:        models.StringArray{"/images/kanjivaram-royal-blue-1.jpg", "/images/kanjivaram-royal-blue-2.jpg"},
			Category:      "Silk Sarees",
			Subcategory:   "Kanjivaram",
			Fabric:        "Silk",
			Color:         "Blue",
			Occasion:      "Wedding",
			Pattern:       "Zari",
			WorkType:      "Handloom",
			BlousePiece:   true,
			SareeLength:   "6.3m",
			InStock:       true,
			StockQuantity: 15,
			IsBestseller:  true,
			Rating:        4.8,
			ReviewCount:   126,
		},
		{
			Name:          "Banarasi Silk Saree - Maroon Gold",
			Description:   "Classic Banarasi weave with intricate gold brocade across the body and pallu.",
			Price:         models.NewMoneyFromFloat(9499),
			OriginalPrice: originalPrice(11999),
			Images:        models.StringArray{"/images/banarasi-maroon-1.jpg"},
			Category:      "Silk Sarees",
			Subcategory:   "Banarasi",
			Fabric:        "Silk",
			Color:         "Maroon",
			Occasion:      "Wedding",
			Pattern:       "Brocade",
			WorkType:      "Handloom",
			BlousePiece:   true,
			SareeLength:   "6.3m",
			InStock:       true,
			StockQuantity: 22,
			IsBestseller:  true,
			Rating:        4.7,
			ReviewCount:   98,
		},
		{
			Name:          "Chanderi Cotton Saree - Pastel Green",
			Description:   "Lightweight Chanderi cotton with a subtle sheen and delicate buttis.",
			Price:         models.NewMoneyFromFloat(2499),
			Images:        models.StringArray{"/images/chanderi-green-1.jpg"},
			Category:      "Cotton Sarees",
			Subcategory:   "Chanderi",
			Fabric:        "Cotton",
			Color:         "Green",
			Occasion:      "Casual",
			Pattern:       "Butti",
			WorkType:      "Powerloom",
			BlousePiece:   true,
			SareeLength:   "5.5m",
			InStock:       true,
			StockQuantity: 40,
			IsNew:         true,
			Rating:        4.4,
			ReviewCount:   35,
		},
		{
			Name:          "Bandhani Georgette Saree - Red Yellow",
			Description:   "Vibrant Bandhani tie-dye on flowing georgette, perfect for festive wear.",
			Price:         models.NewMoneyFromFloat(3299),
			OriginalPrice: originalPrice(3999),
			Images:        models.StringArray{"/images/bandhani-red-1.jpg"},
			Category:      "Georgette Sarees",
			Subcategory:   "Bandhani",
			Fabric:        "Georgette",
			Color:         "Red",
			Occasion:      "Festive",
			Pattern:       "Bandhani",
			WorkType:      "Tie-Dye",
			BlousePiece:   false,
			SareeLength:   "5.5m",
			InStock:       true,
			StockQuantity: 30,
			IsTrending:    true,
			Rating:        4.5,
			ReviewCount:   51,
		},
		{
			Name:          "Tussar Silk Saree - Beige Handpainted",
			Description:   "Natural tussar silk with handpainted Madhubani motifs along the pallu.",
			Price:         models.NewMoneyFromFloat(5799),
			Images:        models.StringArray{"/images/tussar-beige-1.jpg"},
			Category:      "Silk Sarees",
			Subcategory:   "Tussar",
			Fabric:        "Silk",
			Color:         "Beige",
			Occasion:      "Party",
			Pattern:       "Handpainted",
			WorkType:      "Handloom",
			BlousePiece:   true,
			SareeLength:   "6.3m",
			InStock:       true,
			StockQuantity: 8,
			IsNew:         true,
			IsTrending:    true,
			Rating:        4.6,
			ReviewCount:   19,
		},
		{
			Name:          "Linen Saree - Slate Grey",
			Description:   "Breathable pure linen saree with a contrast selvedge, ideal for office wear.",
			Price:         models.NewMoneyFromFloat(1899),
			Images:        models.StringArray{"/images/linen-grey-1.jpg"},
			Category:      "Linen Sarees",
			Fabric:        "Linen",
			Color:         "Grey",
			Occasion:      "Office",
			Pattern:       "Plain",
			WorkType:      "Powerloom",
			BlousePiece:   false,
			SareeLength:   "5.5m",
			InStock:       true,
			StockQuantity: 55,
			Rating:        4.2,
			ReviewCount:   64,
		},
	}
}
