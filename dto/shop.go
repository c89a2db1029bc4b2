package dto

type ShopItemResponse struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	ItemType      string `json:"item_type"`
	PriceCoins    int    `json:"price_coins"`
	RequiredLevel int    `json:"required_level"`
	SpriteURL     string `json:"sprite_url,omitempty"`
	Owned         bool   `json:"owned"`
	Equipped      bool   `json:"equipped"`
}

type InventoryItemResponse struct {
	PurchaseID string `json:"purchase_id"`
	ItemSlug   string `json:"item_slug"`
	ItemType   string `json:"item_type"`
	SpriteURL  string `json:"sprite_url,omitempty"`
	Equipped   bool   `json:"equipped"`
}

type PurchaseResponse struct {
	Item           ShopItemResponse `json:"item"`
	CoinsRemaining int              `json:"coins_remaining"`
}
