package services

import (
	"errors"
	"strings"

	"github.com/alphabatem/common/context"
	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/model"
	"github.com/pixelfit-app/pixelfit_api/shared"
	"gorm.io/gorm"

	"github.com/pixelfit-app/pixelfit_api/services/repositories"
)

// ExerciseService serves the exercise catalog. Exercises above the caller's
// level are returned locked rather than hidden so the client can render the
// progression tree.
type ExerciseService struct {
	context.DefaultService

	exerciseRepo *repositories.ExerciseRepository
	userRepo     *repositories.UserRepository
}

const EXERCISE_SVC = "exercise_svc"

func (svc ExerciseService) Id() string {
	return EXERCISE_SVC
}

func (svc *ExerciseService) Start() error {
	db, err := resolveDB(svc)
	if err != nil {
		return err
	}
	svc.exerciseRepo = repositories.NewExerciseRepository(db)
	svc.userRepo = repositories.NewUserRepository(db)
	return nil
}

func (svc *ExerciseService) GetCategories() ([]dto.CategoryResponse, error) {
	categories, err := svc.exerciseRepo.GetCategories()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, dto.CategoryResponse{
			ID:        c.ID,
			Slug:      c.Slug,
			Name:      c.Name,
			Icon:      c.Icon,
			Color:     c.Color,
			SortOrder: c.SortOrder,
		})
	}
	return responses, nil
}

func (svc *ExerciseService) GetExercises(userID string, req dto.SearchExercisesRequest) ([]dto.ExerciseResponse, error) {
	exercises, err := svc.exerciseRepo.GetExercises(req.Category, req.Difficulty)
	if err != nil {
		return nil, err
	}

	user, err := svc.userRepo.GetUser(userID)
	if err != nil {
		return nil, err
	}

	favoriteIDs, err := svc.exerciseRepo.GetFavoriteExerciseIDs(userID)
	if err != nil {
		return nil, err
	}
	favorites := make(map[string]bool, len(favoriteIDs))
	for _, id := range favoriteIDs {
		favorites[id] = true
	}

	responses := make([]dto.ExerciseResponse, 0, len(exercises))
	for i := range exercises {
		e := &exercises[i]
		if req.Query != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(req.Query)) {
			continue
		}

		resp := exerciseToResponse(e)
		resp.IsFavorite = favorites[e.ID]
		resp.Locked = e.RequiredLevel > user.Level
		responses = append(responses, resp)
	}
	return responses, nil
}

func (svc *ExerciseService) GetExercise(userID, slug string) (*dto.ExerciseResponse, error) {
	exercise, err := svc.exerciseRepo.GetExerciseBySlug(slug)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Exercise not found")
	}

	user, err := svc.userRepo.GetUser(userID)
	if err != nil {
		return nil, err
	}

	resp := exerciseToResponse(exercise)
	resp.Locked = exercise.RequiredLevel > user.Level
	if _, err := svc.exerciseRepo.GetFavorite(userID, exercise.ID); err == nil {
		resp.IsFavorite = true
	}
	return &resp, nil
}

func (svc *ExerciseService) GetProgress(userID string) ([]dto.ExerciseProgressResponse, error) {
	progress, err := svc.exerciseRepo.GetUserProgress(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ExerciseProgressResponse, 0, len(progress))
	for _, p := range progress {
		responses = append(responses, dto.ExerciseProgressResponse{
			ExerciseSlug:       p.Exercise.Slug,
			TotalRepsEver:      p.TotalRepsEver,
			BestSingleSet:      p.BestSingleSet,
			TimesPerformed:     p.TimesPerformed,
			RecommendedUpgrade: p.RecommendedUpgrade,
			LastPerformedAt:    p.LastPerformedAt,
		})
	}
	return responses, nil
}

// ToggleFavorite flips the pinned state and returns the new one.
func (svc *ExerciseService) ToggleFavorite(userID, slug string) (*dto.FavoriteResponse, error) {
	exercise, err := svc.exerciseRepo.GetExerciseBySlug(slug)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Exercise not found")
	}

	_, err = svc.exerciseRepo.GetFavorite(userID, exercise.ID)
	if err == nil {
		if err := svc.exerciseRepo.DeleteFavorite(userID, exercise.ID); err != nil {
			return nil, err
		}
		return &dto.FavoriteResponse{ExerciseSlug: slug, IsFavorite: false}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := svc.exerciseRepo.CreateFavorite(userID, exercise.ID); err != nil {
		return nil, err
	}
	return &dto.FavoriteResponse{ExerciseSlug: slug, IsFavorite: true}, nil
}

func (svc *ExerciseService) SaveExercise(exercise *model.Exercise) error {
	if exercise.ID == "" {
		return svc.exerciseRepo.CreateExercise(exercise)
	}
	return svc.exerciseRepo.UpdateExercise(exercise)
}

func exerciseToResponse(e *model.Exercise) dto.ExerciseResponse {
	return dto.ExerciseResponse{
		ID:                 e.ID,
		Slug:               e.Slug,
		CategorySlug:       e.Category.Slug,
		Name:               e.Name,
		Description:        e.Description,
		Icon:               e.Icon,
		GifURL:             e.GifURL,
		Difficulty:         e.Difficulty,
		BaseXP:             e.BaseXP,
		IsTimed:            e.IsTimed,
		RequiredLevel:      e.RequiredLevel,
		EasierExerciseSlug: e.EasierExerciseSlug,
		HarderExerciseSlug: e.HarderExerciseSlug,
	}
}
