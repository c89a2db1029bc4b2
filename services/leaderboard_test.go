package services

import (
	"testing"
	"time"

	"github.com/pixelfit-app/pixelfit_api/model"
	"github.com/pixelfit-app/pixelfit_api/shared"

	"github.com/pixelfit-app/pixelfit_api/services/repositories"
)

func TestWindowedBoardRanksByWindowXP(t *testing.T) {
	db := openTestDB(t)
	svc := &LeaderboardService{
		userRepo:    repositories.NewUserRepository(db),
		workoutRepo: repositories.NewWorkoutRepository(db),
	}

	db.Create(&model.User{ID: "veteran", TelegramID: 1, Username: "veteran", Level: 9, TotalXP: 9000, IsActive: true})
	db.Create(&model.User{ID: "newcomer", TelegramID: 2, Username: "newcomer", Level: 2, TotalXP: 150, IsActive: true})

	now := time.Now()
	twoDaysAgo := now.AddDate(0, 0, -2)
	yesterday := now.AddDate(0, 0, -1)
	lastYear := now.AddDate(-1, 0, 0)
	db.Create(&model.WorkoutSession{ID: "w1", UserID: "veteran", StartedAt: twoDaysAgo, FinishedAt: &twoDaysAgo, TotalXPEarned: 40, Status: shared.WorkoutStatusCompleted})
	db.Create(&model.WorkoutSession{ID: "w2", UserID: "newcomer", StartedAt: yesterday, FinishedAt: &yesterday, TotalXPEarned: 400, Status: shared.WorkoutStatusCompleted})
	db.Create(&model.WorkoutSession{ID: "w3", UserID: "veteran", StartedAt: lastYear, FinishedAt: &lastYear, TotalXPEarned: 5000, Status: shared.WorkoutStatusCompleted})

	entries, err := svc.buildBoard(shared.PeriodWeekly, 10)
	if err != nil {
		t.Fatalf("buildBoard: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("weekly entries = %d, want 2", len(entries))
	}
	// The low-lifetime user with the bigger week ranks first; lifetime XP
	// never orders a windowed board.
	if entries[0].UserID != "newcomer" || entries[0].XP != 400 || entries[0].Rank != 1 {
		t.Errorf("entries[0] = %s xp=%d rank=%d, want newcomer 400 1", entries[0].UserID, entries[0].XP, entries[0].Rank)
	}
	if entries[1].UserID != "veteran" || entries[1].XP != 40 || entries[1].Rank != 2 {
		t.Errorf("entries[1] = %s xp=%d rank=%d, want veteran 40 2", entries[1].UserID, entries[1].XP, entries[1].Rank)
	}

	allTime, err := svc.buildBoard(shared.PeriodAllTime, 10)
	if err != nil {
		t.Fatalf("buildBoard all-time: %v", err)
	}
	if len(allTime) != 2 || allTime[0].UserID != "veteran" || allTime[0].XP != 9000 {
		t.Errorf("all-time board leader = %+v, want veteran at 9000", allTime)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		username  string
		firstName string
		want      string
	}{
		{"trainee", "Sam", "trainee"},
		{"", "Sam", "Sam"},
		{"", "", "Anonymous"},
	}
	for _, tt := range tests {
		if got := displayName(tt.username, tt.firstName); got != tt.want {
			t.Errorf("displayName(%q, %q) = %q, want %q", tt.username, tt.firstName, got, tt.want)
		}
	}
}

func TestPeriodStart(t *testing.T) {
	if since := periodStart(shared.PeriodAllTime); since != nil {
		t.Errorf("all_time window = %v, want nil", since)
	}
	if since := periodStart("garbage"); since != nil {
		t.Errorf("unknown period window = %v, want nil", since)
	}

	weekly := periodStart(shared.PeriodWeekly)
	if weekly == nil {
		t.Fatal("weekly window missing")
	}
	age := time.Since(*weekly)
	if age < 6*24*time.Hour || age > 8*24*time.Hour {
		t.Errorf("weekly window starts %v ago", age)
	}

	monthly := periodStart(shared.PeriodMonthly)
	if monthly == nil {
		t.Fatal("monthly window missing")
	}
	if !monthly.Before(*weekly) {
		t.Error("monthly window should start before weekly window")
	}
}
