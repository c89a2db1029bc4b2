package client

import (
	"testing"

	"github.com/pixelfit-app/pixelfit_api/dto"
)

func TestSpendCoinsNeverGoesNegative(t *testing.T) {
	store := NewUserStore()
	store.SetUser(dto.UserResponse{Coins: 10})

	if store.SpendCoins(11) {
		t.Error("spend above balance should fail")
	}
	if store.Coins() != 10 {
		t.Errorf("balance = %d, want 10 unchanged after failed spend", store.Coins())
	}

	if !store.SpendCoins(10) {
		t.Error("spend at exact balance should succeed")
	}
	if store.Coins() != 0 {
		t.Errorf("balance = %d, want 0", store.Coins())
	}

	if store.SpendCoins(1) {
		t.Error("spend from zero should fail")
	}
}

func TestSpendCoinsRejectsNonPositive(t *testing.T) {
	store := NewUserStore()
	store.SetUser(dto.UserResponse{Coins: 5})

	if store.SpendCoins(0) || store.SpendCoins(-3) {
		t.Error("non-positive amounts should fail")
	}
	if store.Coins() != 5 {
		t.Errorf("balance = %d, want 5", store.Coins())
	}
}

func TestAddXPKeepsLevelInSync(t *testing.T) {
	store := NewUserStore()
	store.SetUser(dto.UserResponse{TotalXP: 90, Level: 1})

	store.AddXP(10)
	if store.Level() != 2 {
		t.Errorf("level = %d, want 2 after crossing 100 XP", store.Level())
	}
	store.AddXP(-50)
	if store.TotalXP() != 100 {
		t.Errorf("negative amount mutated XP: %d", store.TotalXP())
	}
}

func TestSetUserOverwritesOptimisticState(t *testing.T) {
	store := NewUserStore()
	store.SetUser(dto.UserResponse{TotalXP: 100, Coins: 2})

	store.AddXP(50)
	store.AddCoins(1)

	// Server truth replaces local estimates wholesale, no accumulation.
	store.SetUser(dto.UserResponse{TotalXP: 130, Coins: 2, Level: 2})
	if store.TotalXP() != 130 {
		t.Errorf("xp = %d, want 130 from server", store.TotalXP())
	}
	if store.Coins() != 2 {
		t.Errorf("coins = %d, want 2 from server", store.Coins())
	}
}

func TestProgressIsDerived(t *testing.T) {
	store := NewUserStore()
	store.SetUser(dto.UserResponse{TotalXP: 250})

	p := store.Progress()
	if p.Level != 2 || p.ProgressPercent != 50 {
		t.Errorf("progress = level %d / %d%%, want level 2 / 50%%", p.Level, p.ProgressPercent)
	}
}
