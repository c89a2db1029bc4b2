package model

import "time"

// ShopItem is a cosmetic purchasable with coins: avatar skins, themes,
// profile badges. Gated by level so early coins cannot buy late items.
type ShopItem struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Slug          string    `json:"slug" gorm:"uniqueIndex;not null"`
	Name          string    `json:"name" gorm:"not null"`
	ItemType      string    `json:"item_type" gorm:"not null"` // avatar, theme, badge
	PriceCoins    int       `json:"price_coins" gorm:"default:0"`
	RequiredLevel int       `json:"required_level" gorm:"default:1"`
	SpriteURL     string    `json:"sprite_url"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type UserPurchase struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"index:idx_user_purchase,unique;not null"`
	ShopItemID string    `json:"shop_item_id" gorm:"index:idx_user_purchase,unique;not null"`
	IsEquipped bool      `json:"is_equipped" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`

	ShopItem ShopItem `json:"shop_item" gorm:"foreignKey:ShopItemID"`
}
