package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/shared"
	log "github.com/sirupsen/logrus"

	"github.com/pixelfit-app/pixelfit_api/services/repositories"
)

// MediaService handles operator uploads of exercise demo GIFs, achievement
// badges and shop sprites. The stored object URL is written back onto the
// catalog row.
type MediaService struct {
	appContext.DefaultService

	minioSvc *MinIOService

	exerciseRepo    *repositories.ExerciseRepository
	achievementRepo *repositories.AchievementRepository
	shopRepo        *repositories.ShopRepository
}

const MEDIA_SVC = "media_svc"

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Configure(ctx *appContext.Context) error {
	svc.minioSvc = ctx.Service(MINIO_SVC).(*MinIOService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *MediaService) Start() error {
	db, err := resolveDB(svc)
	if err != nil {
		return err
	}
	svc.exerciseRepo = repositories.NewExerciseRepository(db)
	svc.achievementRepo = repositories.NewAchievementRepository(db)
	svc.shopRepo = repositories.NewShopRepository(db)
	return nil
}

func (svc *MediaService) UploadExerciseGif(slug string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	if !hasExtension(file.Filename, ".gif", ".webp", ".mp4") {
		return nil, shared.NewBadRequestError(nil, "Invalid demo file format. Supported: GIF, WEBP, MP4")
	}
	if file.Size > 10*1024*1024 {
		return nil, shared.NewBadRequestError(nil, "Demo file too large. Maximum size: 10MB")
	}

	exercise, err := svc.exerciseRepo.GetExerciseBySlug(slug)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Exercise not found")
	}

	resp, err := svc.uploadFile(file, "exercises", slug)
	if err != nil {
		return nil, err
	}

	exercise.GifURL = resp.PublicURL
	if err := svc.exerciseRepo.UpdateExercise(exercise); err != nil {
		return nil, err
	}
	return resp, nil
}

func (svc *MediaService) UploadAchievementBadge(slug string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	if !hasExtension(file.Filename, ".png", ".webp", ".svg") {
		return nil, shared.NewBadRequestError(nil, "Invalid badge file format. Supported: PNG, WEBP, SVG")
	}
	if file.Size > 2*1024*1024 {
		return nil, shared.NewBadRequestError(nil, "Badge file too large. Maximum size: 2MB")
	}

	achievement, err := svc.achievementRepo.GetAchievementBySlug(slug)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Achievement not found")
	}

	resp, err := svc.uploadFile(file, "badges", slug)
	if err != nil {
		return nil, err
	}

	achievement.BadgeURL = resp.PublicURL
	if err := svc.achievementRepo.SaveAchievement(achievement); err != nil {
		return nil, err
	}
	return resp, nil
}

func (svc *MediaService) UploadShopSprite(itemID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	if !hasExtension(file.Filename, ".png", ".webp", ".gif") {
		return nil, shared.NewBadRequestError(nil, "Invalid sprite file format. Supported: PNG, WEBP, GIF")
	}
	if file.Size > 2*1024*1024 {
		return nil, shared.NewBadRequestError(nil, "Sprite file too large. Maximum size: 2MB")
	}

	item, err := svc.shopRepo.GetItem(itemID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Item not found")
	}

	resp, err := svc.uploadFile(file, "sprites", item.Slug)
	if err != nil {
		return nil, err
	}

	item.SpriteURL = resp.PublicURL
	if err := svc.shopRepo.SaveItem(item); err != nil {
		return nil, err
	}
	return resp, nil
}

func (svc *MediaService) uploadFile(file *multipart.FileHeader, subDir, slug string) (*dto.MediaUploadResponse, error) {
	ext := filepath.Ext(file.Filename)
	objectKey := fmt.Sprintf("%s/%s_%d%s", subDir, slug, time.Now().Unix(), ext)

	src, err := file.Open()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to open uploaded file")
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := svc.minioSvc.UploadObject(ctx, objectKey, src, file.Size, file.Header.Get("Content-Type")); err != nil {
		return nil, shared.NewInternalError(err, "Failed to upload file to storage")
	}

	log.WithField("object_key", objectKey).Info("Uploaded media object")

	return &dto.MediaUploadResponse{
		ObjectKey: objectKey,
		PublicURL: svc.minioSvc.ObjectURL(objectKey),
		Size:      file.Size,
	}, nil
}

func hasExtension(filename string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, valid := range exts {
		if ext == valid {
			return true
		}
	}
	return false
}
