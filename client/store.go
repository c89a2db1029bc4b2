package client

import (
	"sync"

	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/gamification"
)

// UserStore caches the authenticated user's profile. Optimistic mutators
// exist for flows without a server-confirmed response; any flow that gets a
// server response must overwrite the store with SetUser instead of stacking
// deltas on top, otherwise rewards get counted twice.
type UserStore struct {
	mu   sync.Mutex
	user dto.UserResponse
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) SetUser(user dto.UserResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

func (s *UserStore) User() dto.UserResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *UserStore) Level() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Level
}

func (s *UserStore) TotalXP() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.TotalXP
}

func (s *UserStore) Coins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Coins
}

func (s *UserStore) Streak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.CurrentStreak
}

// Progress derives the level view from total XP; nothing here is stored.
func (s *UserStore) Progress() gamification.LevelProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gamification.GetLevelProgress(s.user.TotalXP)
}

// AddXP applies an optimistic XP gain and keeps the derived level in sync.
func (s *UserStore) AddXP(amount int) {
	if amount <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.TotalXP += amount
	s.user.Level = gamification.LevelFromXP(s.user.TotalXP)
}

func (s *UserStore) AddCoins(amount int) {
	if amount <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.Coins += amount
}

// SpendCoins deducts the amount, or returns false without mutating when the
// balance is insufficient. The balance never goes negative.
func (s *UserStore) SpendCoins(amount int) bool {
	if amount <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user.Coins < amount {
		return false
	}
	s.user.Coins -= amount
	return true
}
