package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/pixelfit-app/pixelfit_api/shared"
)

type ShopHandler struct {
	shopSvc ShopServiceInterface
}

func NewShopHandler(shopSvc ShopServiceInterface) *ShopHandler {
	return &ShopHandler{shopSvc: shopSvc}
}

// @Summary List shop items
// @Tags shop
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param type query string false "Filter by item type: avatar, theme, badge"
// @Success 200 {object} shared.Response{data=[]dto.ShopItemResponse}
// @Router /api/v1/shop/items [get]
func (h *ShopHandler) GetItems(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.shopSvc.GetItems(userID, c.Query("type"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Purchase an item
// @Tags shop
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Shop item ID"
// @Success 201 {object} shared.Response{data=dto.PurchaseResponse}
// @Router /api/v1/shop/items/{id}/purchase [post]
func (h *ShopHandler) Purchase(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	itemID := c.Params("id")

	resp, err := h.shopSvc.Purchase(userID, itemID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Purchase successful", resp)
}

// @Summary Get inventory
// @Tags shop
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=[]dto.InventoryItemResponse}
// @Router /api/v1/shop/inventory [get]
func (h *ShopHandler) GetInventory(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.shopSvc.GetInventory(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Equip a purchased item
// @Tags shop
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Purchase ID"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/shop/inventory/{id}/equip [post]
func (h *ShopHandler) Equip(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	if err := h.shopSvc.Equip(userID, c.Params("id")); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Item equipped", nil)
}

// @Summary Unequip a purchased item
// @Tags shop
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Purchase ID"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/shop/inventory/{id}/unequip [post]
func (h *ShopHandler) Unequip(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	if err := h.shopSvc.Unequip(userID, c.Params("id")); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Item unequipped", nil)
}
