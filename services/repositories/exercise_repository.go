package repositories

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pixelfit-app/pixelfit_api/model"
	"gorm.io/gorm"
)

// ExerciseRepository handles the exercise catalog and per-user progress
type ExerciseRepository struct {
	BaseRepository
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *ExerciseRepository) GetCategories() ([]model.ExerciseCategory, error) {
	var categories []model.ExerciseCategory
	err := ds.db.Order("sort_order ASC").Find(&categories).Error
	return categories, err
}

func (ds *ExerciseRepository) GetExercises(categorySlug string, difficulty int) ([]model.Exercise, error) {
	query := ds.db.Preload("Category").Where("is_active = ?", true)
	if categorySlug != "" {
		query = query.Joins("JOIN exercise_categories ON exercise_categories.id = exercises.category_id").
			Where("exercise_categories.slug = ?", categorySlug)
	}
	if difficulty > 0 {
		query = query.Where("difficulty = ?", difficulty)
	}

	var exercises []model.Exercise
	err := query.Order("required_level ASC, difficulty ASC").Find(&exercises).Error
	return exercises, err
}

func (ds *ExerciseRepository) GetExerciseBySlug(slug string) (*model.Exercise, error) {
	var exercise model.Exercise
	if err := ds.db.Preload("Category").Where("slug = ?", slug).First(&exercise).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (ds *ExerciseRepository) CreateExercise(exercise *model.Exercise) error {
	if exercise.ID == "" {
		id, _ := uuid.NewV7()
		exercise.ID = id.String()
	}
	exercise.CreatedAt = time.Now()
	exercise.UpdatedAt = time.Now()
	return ds.db.Create(exercise).Error
}

func (ds *ExerciseRepository) UpdateExercise(exercise *model.Exercise) error {
	exercise.UpdatedAt = time.Now()
	return ds.db.Save(exercise).Error
}

func (ds *ExerciseRepository) GetProgress(userID, exerciseID string) (*model.UserExerciseProgress, error) {
	var progress model.UserExerciseProgress
	err := ds.db.Where("user_id = ? AND exercise_id = ?", userID, exerciseID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (ds *ExerciseRepository) GetUserProgress(userID string) ([]model.UserExerciseProgress, error) {
	var progress []model.UserExerciseProgress
	err := ds.db.Preload("Exercise").Where("user_id = ?", userID).Find(&progress).Error
	return progress, err
}

func (ds *ExerciseRepository) SaveProgress(progress *model.UserExerciseProgress) error {
	if progress.ID == "" {
		id, _ := uuid.NewV7()
		progress.ID = id.String()
		progress.CreatedAt = time.Now()
	}
	progress.UpdatedAt = time.Now()
	return ds.db.Save(progress).Error
}

// TotalRepsForSlugPattern sums lifetime reps across exercises whose slug
// matches the pattern. A trailing * does a prefix match, a leading * a
// suffix match, so "*pushup" covers the whole push-up chain.
func (ds *ExerciseRepository) TotalRepsForSlugPattern(userID, pattern string) (int, error) {
	query := ds.db.Model(&model.UserExerciseProgress{}).
		Joins("JOIN exercises ON exercises.id = user_exercise_progresses.exercise_id").
		Where("user_exercise_progresses.user_id = ?", userID)

	switch {
	case strings.HasSuffix(pattern, "*"):
		query = query.Where("exercises.slug LIKE ?", strings.TrimSuffix(pattern, "*")+"%")
	case strings.HasPrefix(pattern, "*"):
		query = query.Where("exercises.slug LIKE ?", "%"+strings.TrimPrefix(pattern, "*"))
	default:
		query = query.Where("exercises.slug = ?", pattern)
	}

	var total *int
	if err := query.Select("SUM(user_exercise_progresses.total_reps_ever)").Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (ds *ExerciseRepository) GetFavoriteExerciseIDs(userID string) ([]string, error) {
	var ids []string
	err := ds.db.Model(&model.Favorite{}).Where("user_id = ?", userID).Pluck("exercise_id", &ids).Error
	return ids, err
}

func (ds *ExerciseRepository) GetFavorite(userID, exerciseID string) (*model.Favorite, error) {
	var favorite model.Favorite
	err := ds.db.Where("user_id = ? AND exercise_id = ?", userID, exerciseID).First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (ds *ExerciseRepository) CreateFavorite(userID, exerciseID string) error {
	id, _ := uuid.NewV7()
	return ds.db.Create(&model.Favorite{
		ID:         id.String(),
		UserID:     userID,
		ExerciseID: exerciseID,
		CreatedAt:  time.Now(),
	}).Error
}

func (ds *ExerciseRepository) DeleteFavorite(userID, exerciseID string) error {
	return ds.db.Where("user_id = ? AND exercise_id = ?", userID, exerciseID).
		Delete(&model.Favorite{}).Error
}
