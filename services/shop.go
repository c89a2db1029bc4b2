package services

import (
	"errors"

	"github.com/alphabatem/common/context"
	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/model"
	"github.com/pixelfit-app/pixelfit_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pixelfit-app/pixelfit_api/services/repositories"
)

// ShopService sells cosmetics for coins. Coins only ever decrease here;
// earning happens in the workout pipeline.
type ShopService struct {
	context.DefaultService

	shopRepo *repositories.ShopRepository
	userRepo *repositories.UserRepository
}

const SHOP_SVC = "shop_svc"

func (svc ShopService) Id() string {
	return SHOP_SVC
}

func (svc *ShopService) Start() error {
	db, err := resolveDB(svc)
	if err != nil {
		return err
	}
	svc.shopRepo = repositories.NewShopRepository(db)
	svc.userRepo = repositories.NewUserRepository(db)
	return nil
}

func (svc *ShopService) GetItems(userID, itemType string) ([]dto.ShopItemResponse, error) {
	items, err := svc.shopRepo.GetActiveItems(itemType)
	if err != nil {
		return nil, err
	}

	purchases, err := svc.shopRepo.GetUserPurchases(userID)
	if err != nil {
		return nil, err
	}
	owned := make(map[string]bool, len(purchases))
	equipped := make(map[string]bool, len(purchases))
	for _, p := range purchases {
		owned[p.ShopItemID] = true
		equipped[p.ShopItemID] = p.IsEquipped
	}

	responses := make([]dto.ShopItemResponse, 0, len(items))
	for i := range items {
		resp := shopItemToResponse(&items[i])
		resp.Owned = owned[items[i].ID]
		resp.Equipped = equipped[items[i].ID]
		responses = append(responses, resp)
	}
	return responses, nil
}

// Purchase deducts coins atomically with the ownership insert; a partial
// write would either give away an item or eat coins.
func (svc *ShopService) Purchase(userID, itemID string) (*dto.PurchaseResponse, error) {
	user, err := svc.userRepo.GetUser(userID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "User not found")
	}

	item, err := svc.shopRepo.GetItem(itemID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Item not found")
	}
	if !item.IsActive {
		return nil, shared.NewNotFoundError(errors.New("item retired"), "Item not found")
	}

	if _, err := svc.shopRepo.GetPurchaseByItem(userID, itemID); err == nil {
		return nil, shared.NewConflictError(errors.New("already owned"), "Item already owned")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if user.Level < item.RequiredLevel {
		return nil, shared.NewForbiddenError(errors.New("level too low"), "Level requirement not met")
	}
	if user.Coins < item.PriceCoins {
		return nil, shared.NewBadRequestError(errors.New("insufficient coins"), "Not enough coins")
	}

	err = svc.shopRepo.DB().Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.User{}).
			Where("id = ? AND coins >= ?", userID, item.PriceCoins).
			Update("coins", gorm.Expr("coins - ?", item.PriceCoins))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("insufficient coins")
		}

		txRepo := repositories.NewShopRepository(tx)
		_, err := txRepo.CreatePurchase(userID, itemID)
		return err
	})
	if err != nil {
		return nil, shared.NewBadRequestError(err, "Purchase failed")
	}

	log.WithFields(log.Fields{"user_id": userID, "item": item.Slug}).Info("Item purchased")

	resp := shopItemToResponse(item)
	resp.Owned = true
	return &dto.PurchaseResponse{
		Item:           resp,
		CoinsRemaining: user.Coins - item.PriceCoins,
	}, nil
}

func (svc *ShopService) GetInventory(userID string) ([]dto.InventoryItemResponse, error) {
	purchases, err := svc.shopRepo.GetUserPurchases(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.InventoryItemResponse, 0, len(purchases))
	for _, p := range purchases {
		responses = append(responses, dto.InventoryItemResponse{
			PurchaseID: p.ID,
			ItemSlug:   p.ShopItem.Slug,
			ItemType:   p.ShopItem.ItemType,
			SpriteURL:  p.ShopItem.SpriteURL,
			Equipped:   p.IsEquipped,
		})
	}
	return responses, nil
}

// Equip activates a purchase, replacing whatever of the same type was active.
func (svc *ShopService) Equip(userID, purchaseID string) error {
	purchase, err := svc.shopRepo.GetPurchase(userID, purchaseID)
	if err != nil {
		return shared.NewNotFoundError(err, "Purchase not found")
	}

	if err := svc.shopRepo.UnequipType(userID, purchase.ShopItem.ItemType); err != nil {
		return err
	}
	return svc.shopRepo.SetEquipped(purchase, true)
}

func (svc *ShopService) Unequip(userID, purchaseID string) error {
	purchase, err := svc.shopRepo.GetPurchase(userID, purchaseID)
	if err != nil {
		return shared.NewNotFoundError(err, "Purchase not found")
	}
	return svc.shopRepo.SetEquipped(purchase, false)
}

func (svc *ShopService) SaveItem(item *model.ShopItem) error {
	return svc.shopRepo.SaveItem(item)
}

func shopItemToResponse(item *model.ShopItem) dto.ShopItemResponse {
	return dto.ShopItemResponse{
		ID:            item.ID,
		Slug:          item.Slug,
		Name:          item.Name,
		ItemType:      item.ItemType,
		PriceCoins:    item.PriceCoins,
		RequiredLevel: item.RequiredLevel,
		SpriteURL:     item.SpriteURL,
	}
}
