package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/pixelfit-app/pixelfit_api/model"
	"gorm.io/gorm"
)

// ShopRepository handles shop items and user purchases
type ShopRepository struct {
	BaseRepository
}

func NewShopRepository(db *gorm.DB) *ShopRepository {
	return &ShopRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *ShopRepository) GetActiveItems(itemType string) ([]model.ShopItem, error) {
	query := ds.db.Where("is_active = ?", true)
	if itemType != "" {
		query = query.Where("item_type = ?", itemType)
	}

	var items []model.ShopItem
	err := query.Order("required_level ASC, price_coins ASC").Find(&items).Error
	return items, err
}

func (ds *ShopRepository) GetItem(itemID string) (*model.ShopItem, error) {
	var item model.ShopItem
	if err := ds.db.Where("id = ?", itemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (ds *ShopRepository) SaveItem(item *model.ShopItem) error {
	if item.ID == "" {
		id, _ := uuid.NewV7()
		item.ID = id.String()
		item.CreatedAt = time.Now()
	}
	item.UpdatedAt = time.Now()
	return ds.db.Save(item).Error
}

func (ds *ShopRepository) GetUserPurchases(userID string) ([]model.UserPurchase, error) {
	var purchases []model.UserPurchase
	err := ds.db.Preload("ShopItem").Where("user_id = ?", userID).Find(&purchases).Error
	return purchases, err
}

func (ds *ShopRepository) GetPurchase(userID, purchaseID string) (*model.UserPurchase, error) {
	var purchase model.UserPurchase
	err := ds.db.Preload("ShopItem").
		Where("id = ? AND user_id = ?", purchaseID, userID).
		First(&purchase).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (ds *ShopRepository) GetPurchaseByItem(userID, itemID string) (*model.UserPurchase, error) {
	var purchase model.UserPurchase
	err := ds.db.Where("user_id = ? AND shop_item_id = ?", userID, itemID).First(&purchase).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (ds *ShopRepository) CreatePurchase(userID, itemID string) (*model.UserPurchase, error) {
	id, _ := uuid.NewV7()
	purchase := &model.UserPurchase{
		ID:         id.String(),
		UserID:     userID,
		ShopItemID: itemID,
		CreatedAt:  time.Now(),
	}
	if err := ds.db.Create(purchase).Error; err != nil {
		return nil, err
	}
	return purchase, nil
}

func (ds *ShopRepository) SetEquipped(purchase *model.UserPurchase, equipped bool) error {
	return ds.db.Model(purchase).Update("is_equipped", equipped).Error
}

// UnequipType clears the equipped flag for every purchase of the same item
// type, so at most one avatar/theme/badge is active.
func (ds *ShopRepository) UnequipType(userID, itemType string) error {
	return ds.db.Model(&model.UserPurchase{}).
		Where("user_id = ? AND is_equipped = ? AND shop_item_id IN (?)",
			userID, true,
			ds.db.Model(&model.ShopItem{}).Select("id").Where("item_type = ?", itemType),
		).
		Update("is_equipped", false).Error
}
