package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pixelfit-app/pixelfit_api/dto"
)

func writeEnvelope(w http.ResponseWriter, code int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    code,
		"message": message,
		"data":    data,
	})
}

func TestAuthenticateStoresAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/telegram":
			var req dto.TelegramAuthRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req.InitData != "opaque-init-data" {
				t.Errorf("init data = %q, forwarded verbatim expected", req.InitData)
			}
			writeEnvelope(w, 200, "Success", dto.AuthResponse{
				User:   dto.UserResponse{ID: "u1", Level: 3},
				Tokens: dto.TokenPair{AccessToken: "token-abc"},
			})
		case "/api/v1/user/profile":
			if got := r.Header.Get("Authorization"); got != "Bearer token-abc" {
				t.Errorf("Authorization = %q, want bearer from auth exchange", got)
			}
			writeEnvelope(w, 200, "Success", dto.UserResponse{ID: "u1", Level: 3, TotalXP: 450})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			writeEnvelope(w, 404, "Not Found", nil)
		}
	}))
	defer server.Close()

	c := New(server.URL, "opaque-init-data")
	auth, err := c.Authenticate(context.Background())
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if auth.User.ID != "u1" {
		t.Errorf("user = %+v", auth.User)
	}

	user, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if user.TotalXP != 450 {
		t.Errorf("TotalXP = %d, want 450", user.TotalXP)
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 400, "Not enough coins", nil)
	}))
	defer server.Close()

	c := New(server.URL, "", WithAccessToken("t"))
	_, err := c.Purchase(context.Background(), "item-1")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != 400 {
		t.Errorf("status = %d, want 400", apiErr.StatusCode)
	}
	if apiErr.Message != "Not enough coins" {
		t.Errorf("message = %q, want server detail", apiErr.Message)
	}
}

func TestErrorGenericFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>upstream error</html>"))
	}))
	defer server.Close()

	c := New(server.URL, "")
	_, err := c.Me(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Message != http.StatusText(http.StatusBadGateway) {
		t.Errorf("message = %q, want generic status text", apiErr.Message)
	}
}

func TestSubmitWorkoutRoundTrip(t *testing.T) {
	newLevel := 4
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/workouts" || r.Method != http.MethodPost {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var req dto.SubmitWorkoutRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.DurationSeconds != 300 || len(req.Exercises) != 1 {
			t.Errorf("payload = %+v", req)
		}
		writeEnvelope(w, 201, "Created", dto.WorkoutSummaryResponse{
			Workout:  dto.WorkoutResponse{TotalXPEarned: 88, TotalCoinsEarned: 1},
			LevelUp:  true,
			NewLevel: &newLevel,
		})
	}))
	defer server.Close()

	c := New(server.URL, "", WithAccessToken("t"))
	summary, err := c.SubmitWorkout(context.Background(), dto.SubmitWorkoutRequest{
		DurationSeconds: 300,
		Exercises: []dto.ExerciseSetData{
			{ExerciseSlug: "pushup", Sets: []int{10, 10}},
		},
	})
	if err != nil {
		t.Fatalf("SubmitWorkout: %v", err)
	}
	if summary.Workout.TotalXPEarned != 88 {
		t.Errorf("xp = %d, want 88", summary.Workout.TotalXPEarned)
	}
	if !summary.LevelUp || summary.NewLevel == nil || *summary.NewLevel != 4 {
		t.Errorf("level up fields = %v %v", summary.LevelUp, summary.NewLevel)
	}
}

func TestExercisesQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("category"); got != "push" {
			t.Errorf("category = %q, want push", got)
		}
		if got := r.URL.Query().Get("difficulty"); got != "3" {
			t.Errorf("difficulty = %q, want 3", got)
		}
		writeEnvelope(w, 200, "Success", []dto.ExerciseResponse{{Slug: "pushup"}})
	}))
	defer server.Close()

	c := New(server.URL, "", WithAccessToken("t"))
	exercises, err := c.Exercises(context.Background(), "push", 3)
	if err != nil {
		t.Fatalf("Exercises: %v", err)
	}
	if len(exercises) != 1 || exercises[0].Slug != "pushup" {
		t.Errorf("exercises = %+v", exercises)
	}
}
