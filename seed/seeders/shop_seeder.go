package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pixelfit-app/pixelfit_api/model"
	"gorm.io/gorm"
)

// ShopSeeder seeds the cosmetic shop catalog
type ShopSeeder struct {
	db *gorm.DB
}

func NewShopSeeder(db *gorm.DB) *ShopSeeder {
	return &ShopSeeder{db: db}
}

type shopItemData struct {
	Slug          string
	Name          string
	ItemType      string
	PriceCoins    int
	RequiredLevel int
}

func (s *ShopSeeder) SeedShopItems() error {
	var count int64
	s.db.Model(&model.ShopItem{}).Count(&count)
	if count > 0 {
		log.Println("Shop items already exist, skipping shop seeding")
		return nil
	}

	items := []shopItemData{
		// Avatars
		{"avatar-rookie", "Rookie", "avatar", 0, 1},
		{"avatar-ninja", "Ninja", "avatar", 15, 3},
		{"avatar-viking", "Viking", "avatar", 25, 5},
		{"avatar-samurai", "Samurai", "avatar", 40, 8},
		{"avatar-astronaut", "Astronaut", "avatar", 60, 12},
		{"avatar-dragon", "Dragon", "avatar", 100, 18},

		// Themes
		{"theme-classic", "Classic", "theme", 0, 1},
		{"theme-midnight", "Midnight", "theme", 20, 4},
		{"theme-forest", "Forest", "theme", 20, 4},
		{"theme-sunset", "Sunset", "theme", 35, 7},
		{"theme-neon", "Neon", "theme", 50, 10},
		{"theme-gold", "Gold", "theme", 120, 20},

		// Badges
		{"badge-flame", "Flame Badge", "badge", 10, 2},
		{"badge-diamond", "Diamond Badge", "badge", 30, 6},
		{"badge-crown", "Crown Badge", "badge", 80, 15},
	}

	for _, item := range items {
		id, _ := uuid.NewV7()
		shopItem := model.ShopItem{
			ID:            id.String(),
			Slug:          item.Slug,
			Name:          item.Name,
			ItemType:      item.ItemType,
			PriceCoins:    item.PriceCoins,
			RequiredLevel: item.RequiredLevel,
			IsActive:      true,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}
		if err := s.db.Create(&shopItem).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d shop items", len(items))
	return nil
}
