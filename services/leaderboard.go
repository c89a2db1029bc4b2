package services

import (
	"context"
	"fmt"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/model"
	"github.com/pixelfit-app/pixelfit_api/shared"
	log "github.com/sirupsen/logrus"

	"github.com/pixelfit-app/pixelfit_api/services/repositories"
)

// LeaderboardService builds the weekly, monthly and all-time XP boards.
// Boards are cached in Redis for a few minutes; a cache failure degrades to
// a direct query.
type LeaderboardService struct {
	appContext.DefaultService

	redisSvc *RedisService

	userRepo    *repositories.UserRepository
	workoutRepo *repositories.WorkoutRepository

	cacheTTL time.Duration
}

const LEADERBOARD_SVC = "leaderboard_svc"

func (svc LeaderboardService) Id() string {
	return LEADERBOARD_SVC
}

func (svc *LeaderboardService) Configure(ctx *appContext.Context) error {
	svc.redisSvc = ctx.Service(REDIS_SVC).(*RedisService)
	svc.cacheTTL = 5 * time.Minute
	return svc.DefaultService.Configure(ctx)
}

func (svc *LeaderboardService) Start() error {
	db, err := resolveDB(svc)
	if err != nil {
		return err
	}
	svc.userRepo = repositories.NewUserRepository(db)
	svc.workoutRepo = repositories.NewWorkoutRepository(db)
	return nil
}

func (svc *LeaderboardService) GetLeaderboard(userID string, req dto.LeaderboardRequest) (*dto.LeaderboardResponse, error) {
	period := req.Period
	if period == "" {
		period = shared.PeriodAllTime
	}
	limit := req.Limit
	if limit == 0 {
		limit = 50
	}

	ctx := context.Background()
	cacheKey := fmt.Sprintf("leaderboard:%s:%d", period, limit)

	var top []dto.LeaderboardEntry
	found, err := svc.redisSvc.GetJSON(ctx, cacheKey, &top)
	if err != nil {
		log.WithError(err).Debug("Leaderboard cache read failed")
	}
	if !found {
		top, err = svc.buildBoard(period, limit)
		if err != nil {
			return nil, err
		}
		if err := svc.redisSvc.Set(ctx, cacheKey, top, svc.cacheTTL); err != nil {
			log.WithError(err).Debug("Leaderboard cache write failed")
		}
	}

	resp := &dto.LeaderboardResponse{Period: period, TopUsers: top}

	// The caller's own row is never cached; rank drifts too fast.
	if entry := svc.currentUserEntry(userID, period, top); entry != nil {
		resp.CurrentUser = entry
	}

	return resp, nil
}

func (svc *LeaderboardService) buildBoard(period string, limit int) ([]dto.LeaderboardEntry, error) {
	since := periodStart(period)
	if since == nil {
		users, err := svc.userRepo.GetTopUsersByXP(limit)
		if err != nil {
			return nil, err
		}
		entries := make([]dto.LeaderboardEntry, 0, len(users))
		for i := range users {
			entries = append(entries, userEntry(&users[i], users[i].TotalXP))
		}
		for i := range entries {
			entries[i].Rank = i + 1
		}
		return entries, nil
	}

	// Windowed boards are ranked by XP earned inside the window, not by
	// lifetime totals; the session query already returns rows in rank order.
	rows, err := svc.workoutRepo.TopXPEarnedSince(*since, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.UserID)
	}
	users, err := svc.userRepo.GetUsersByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*model.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	entries := make([]dto.LeaderboardEntry, 0, len(rows))
	for _, r := range rows {
		u, ok := byID[r.UserID]
		if !ok {
			// Deactivated since the window started.
			continue
		}
		entries = append(entries, userEntry(u, r.XP))
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

func userEntry(u *model.User, xp int) dto.LeaderboardEntry {
	return dto.LeaderboardEntry{
		UserID:        u.ID,
		Username:      displayName(u.Username, u.FirstName),
		PhotoURL:      u.PhotoURL,
		Level:         u.Level,
		XP:            xp,
		CurrentStreak: u.CurrentStreak,
	}
}

func (svc *LeaderboardService) currentUserEntry(userID, period string, top []dto.LeaderboardEntry) *dto.LeaderboardEntry {
	for i := range top {
		if top[i].UserID == userID {
			entry := top[i]
			return &entry
		}
	}

	user, err := svc.userRepo.GetUser(userID)
	if err != nil {
		return nil
	}

	entry := &dto.LeaderboardEntry{
		UserID:        user.ID,
		Username:      displayName(user.Username, user.FirstName),
		PhotoURL:      user.PhotoURL,
		Level:         user.Level,
		XP:            user.TotalXP,
		CurrentStreak: user.CurrentStreak,
	}

	if period == shared.PeriodAllTime {
		if rank, err := svc.userRepo.GetUserRankByXP(user); err == nil {
			entry.Rank = rank
		}
	}
	return entry
}

func periodStart(period string) *time.Time {
	now := time.Now()
	var since time.Time
	switch period {
	case shared.PeriodWeekly:
		since = now.AddDate(0, 0, -7)
	case shared.PeriodMonthly:
		since = now.AddDate(0, -1, 0)
	default:
		return nil
	}
	return &since
}

func displayName(username, firstName string) string {
	if username != "" {
		return username
	}
	if firstName != "" {
		return firstName
	}
	return "Anonymous"
}
