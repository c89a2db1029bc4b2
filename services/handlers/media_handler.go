package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/pixelfit-app/pixelfit_api/shared"
)

type MediaHandler struct {
	mediaSvc MediaServiceInterface
}

func NewMediaHandler(mediaSvc MediaServiceInterface) *MediaHandler {
	return &MediaHandler{mediaSvc: mediaSvc}
}

// @Summary Upload exercise demo GIF
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param slug path string true "Exercise slug"
// @Param file formData file true "GIF, WEBP or MP4 demo"
// @Success 200 {object} shared.Response{data=dto.MediaUploadResponse}
// @Router /api/v1/admin/exercises/{slug}/gif [post]
func (h *MediaHandler) UploadExerciseGif(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return shared.NewBadRequestError(err, "No file provided")
	}

	resp, err := h.mediaSvc.UploadExerciseGif(c.Params("slug"), file)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Upload successful", resp)
}

// @Summary Upload achievement badge
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param slug path string true "Achievement slug"
// @Param file formData file true "PNG, WEBP or SVG badge"
// @Success 200 {object} shared.Response{data=dto.MediaUploadResponse}
// @Router /api/v1/admin/achievements/{slug}/badge [post]
func (h *MediaHandler) UploadAchievementBadge(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return shared.NewBadRequestError(err, "No file provided")
	}

	resp, err := h.mediaSvc.UploadAchievementBadge(c.Params("slug"), file)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Upload successful", resp)
}

// @Summary Upload shop item sprite
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param id path string true "Shop item ID"
// @Param file formData file true "PNG, WEBP or GIF sprite"
// @Success 200 {object} shared.Response{data=dto.MediaUploadResponse}
// @Router /api/v1/admin/shop/items/{id}/sprite [post]
func (h *MediaHandler) UploadShopSprite(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return shared.NewBadRequestError(err, "No file provided")
	}

	resp, err := h.mediaSvc.UploadShopSprite(c.Params("id"), file)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Upload successful", resp)
}
