package initializers

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/shadecart/shadecart/models"
)

var defaultShades = []string{
	"#f5f5f0", "#e8dcc8", "#d9c3a0", "#c2a878", "#a3c4bc",
	"#7fa99b", "#5b8a72", "#f2c6b4", "#e08e6d", "#b85c38",
	"#cfd8dc", "#90a4ae", "#546e7a", "#37474f", "#ffe082",
}

var defaultCategories = []struct {
	name        string
	description string
}{
	{"Interior Emulsion", "Washable matt finish for living spaces"},
	{"Exterior Weatherproof", "All-weather coating for outer walls"},
	{"Enamel", "Gloss finish for wood and metal"},
}

func shadeChart() []models.Color {
	colors := make([]models.Color, 0, len(defaultShades))
	for i, hex := range defaultShades {
		colors = append(colors, models.Color{
			ID:   fmt.Sprintf("color_%d", i+1),
			Name: fmt.Sprintf("Shade %d", i+1),
			Hex:  hex,
		})
	}
	return colors
}

// SeedCatalog fills an empty catalog with the standard shade chart.
func SeedCatalog() {
	var count int64
	if err := DB.Model(&models.Category{}).Count(&count).Error; err != nil {
		Logger.Error("failed to count catalog categories", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	for _, c := range defaultCategories {
		category := models.Category{Name: c.name, Description: c.description, Colors: shadeChart()}
		if err := DB.Create(&category).Error; err != nil {
			Logger.Error("failed to seed category", zap.String("category", c.name), zap.Error(err))
			return
		}
	}
	Logger.Info("catalog seeded", zap.Int("categories", len(defaultCategories)))
}
