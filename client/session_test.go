package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/gamification"
)

type fakeBackend struct {
	submitCalls int
	lastReq     dto.SubmitWorkoutRequest
	summary     dto.WorkoutSummaryResponse
	submitErr   error
	user        dto.UserResponse
	block       chan struct{}
}

func (f *fakeBackend) SubmitWorkout(ctx context.Context, req dto.SubmitWorkoutRequest) (*dto.WorkoutSummaryResponse, error) {
	f.submitCalls++
	f.lastReq = req
	if f.block != nil {
		<-f.block
	}
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	summary := f.summary
	return &summary, nil
}

func (f *fakeBackend) Me(ctx context.Context) (*dto.UserResponse, error) {
	user := f.user
	return &user, nil
}

func repExercise(slug string) dto.ExerciseResponse {
	return dto.ExerciseResponse{Slug: slug, Name: slug, BaseXP: 10, Difficulty: 2}
}

func timedExercise(slug string) dto.ExerciseResponse {
	return dto.ExerciseResponse{Slug: slug, Name: slug, BaseXP: 10, Difficulty: 2, IsTimed: true}
}

func startedSession(t *testing.T, exercises ...dto.ExerciseResponse) (*Session, *fakeBackend, *UserStore) {
	t.Helper()
	backend := &fakeBackend{}
	store := NewUserStore()
	s := NewSession(backend, store)
	for _, ex := range exercises {
		if err := s.ToggleExercise(ex); err != nil {
			t.Fatalf("ToggleExercise: %v", err)
		}
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(s.Cancel)
	return s, backend, store
}

func TestToggleExerciseIdempotent(t *testing.T) {
	s := NewSession(&fakeBackend{}, nil)

	ex := repExercise("pushup")
	if err := s.ToggleExercise(ex); err != nil {
		t.Fatalf("ToggleExercise: %v", err)
	}
	if got := s.SelectedSlugs(); len(got) != 1 || got[0] != "pushup" {
		t.Fatalf("selection = %v, want [pushup]", got)
	}

	if err := s.ToggleExercise(ex); err != nil {
		t.Fatalf("ToggleExercise: %v", err)
	}
	if got := s.SelectedSlugs(); len(got) != 0 {
		t.Fatalf("selection = %v, want empty after second toggle", got)
	}
}

func TestStartRequiresSelection(t *testing.T) {
	s := NewSession(&fakeBackend{}, nil)

	if err := s.Start(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Start from idle = %v, want ErrInvalidState", err)
	}

	ex := repExercise("pushup")
	_ = s.ToggleExercise(ex)
	_ = s.ToggleExercise(ex)
	if err := s.Start(); !errors.Is(err, ErrNoExercisesSelected) {
		t.Errorf("Start with empty selection = %v, want ErrNoExercisesSelected", err)
	}
}

func TestStartSeedsDefaults(t *testing.T) {
	s, _, _ := startedSession(t, repExercise("pushup"), timedExercise("plank"))

	if entry, _ := s.Entry("pushup"); entry.Input != defaultRepsInput {
		t.Errorf("rep default = %d, want %d", entry.Input, defaultRepsInput)
	}
	if entry, _ := s.Entry("plank"); entry.Input != defaultTimedInput {
		t.Errorf("timed default = %d, want %d", entry.Input, defaultTimedInput)
	}
	if s.State() != StateActive {
		t.Errorf("state = %s, want active", s.State())
	}
}

func TestAddSetStickyInput(t *testing.T) {
	s, _, _ := startedSession(t, repExercise("pushup"))

	if err := s.SetInput("pushup", 12); err != nil {
		t.Fatalf("SetInput: %v", err)
	}
	if err := s.AddSet("pushup"); err != nil {
		t.Fatalf("AddSet: %v", err)
	}
	if err := s.AddSet("pushup"); err != nil {
		t.Fatalf("AddSet: %v", err)
	}

	entry, _ := s.Entry("pushup")
	if len(entry.Sets) != 2 || entry.Sets[0] != 12 || entry.Sets[1] != 12 {
		t.Errorf("sets = %v, want [12 12]", entry.Sets)
	}
	if entry.Input != 12 {
		t.Errorf("input = %d, want sticky 12 after commit", entry.Input)
	}
}

func TestAddSetRejectsZeroInput(t *testing.T) {
	s, _, _ := startedSession(t, repExercise("pushup"))

	if err := s.SetInput("pushup", 0); err != nil {
		t.Fatalf("SetInput: %v", err)
	}
	if err := s.AddSet("pushup"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("AddSet with zero input = %v, want ErrInvalidInput", err)
	}
	if err := s.AddSet("unknown"); !errors.Is(err, ErrUnknownExercise) {
		t.Errorf("AddSet unknown = %v, want ErrUnknownExercise", err)
	}
}

func TestPauseResumePreservesDraft(t *testing.T) {
	s, _, _ := startedSession(t, repExercise("pushup"))

	_ = s.AddSet("pushup")
	s.mu.Lock()
	s.elapsedSeconds = 90
	s.mu.Unlock()

	if err := s.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if s.State() != StatePaused {
		t.Fatalf("state = %s, want paused", s.State())
	}
	if s.Elapsed() != 90 {
		t.Errorf("elapsed = %d, want 90 preserved across pause", s.Elapsed())
	}
	if err := s.AddSet("pushup"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("AddSet while paused = %v, want ErrInvalidState", err)
	}

	if err := s.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	entry, _ := s.Entry("pushup")
	if len(entry.Sets) != 1 {
		t.Errorf("sets lost across pause/resume: %v", entry.Sets)
	}
}

func TestSubmitDropsUnloggedExercises(t *testing.T) {
	s, backend, _ := startedSession(t, repExercise("pushup"), repExercise("squat"))

	_ = s.AddSet("pushup")
	_ = s.AddSet("pushup")

	if _, err := s.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(backend.lastReq.Exercises) != 1 {
		t.Fatalf("payload has %d exercises, want 1", len(backend.lastReq.Exercises))
	}
	if backend.lastReq.Exercises[0].ExerciseSlug != "pushup" {
		t.Errorf("payload exercise = %s, want pushup", backend.lastReq.Exercises[0].ExerciseSlug)
	}
	if got := backend.lastReq.Exercises[0].Sets; len(got) != 2 || got[0] != 10 {
		t.Errorf("payload sets = %v, want [10 10]", got)
	}
	if s.State() != StateIdle {
		t.Errorf("state after submit = %s, want idle", s.State())
	}
}

func TestSubmitRequiresLoggedSets(t *testing.T) {
	s, backend, _ := startedSession(t, repExercise("pushup"))

	if _, err := s.Submit(context.Background()); !errors.Is(err, ErrNoSetsLogged) {
		t.Errorf("Submit without sets = %v, want ErrNoSetsLogged", err)
	}
	if backend.submitCalls != 0 {
		t.Errorf("network call attempted despite local validation failure")
	}
}

func TestSubmitFailureKeepsDraftForRetry(t *testing.T) {
	s, backend, _ := startedSession(t, repExercise("pushup"))
	backend.submitErr = errors.New("connection refused")

	_ = s.SetInput("pushup", 15)
	_ = s.AddSet("pushup")
	s.mu.Lock()
	s.elapsedSeconds = 120
	s.mu.Unlock()

	if _, err := s.Submit(context.Background()); err == nil {
		t.Fatal("expected submit error")
	}
	if s.State() != StateActive {
		t.Fatalf("state after failed submit = %s, want active", s.State())
	}
	entry, _ := s.Entry("pushup")
	if len(entry.Sets) != 1 || entry.Sets[0] != 15 {
		t.Fatalf("draft sets = %v, want [15] preserved", entry.Sets)
	}
	if s.Elapsed() != 120 {
		t.Errorf("elapsed = %d, want 120 preserved", s.Elapsed())
	}

	firstReq := backend.lastReq
	backend.submitErr = nil
	if _, err := s.Submit(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if len(backend.lastReq.Exercises) != len(firstReq.Exercises) {
		t.Error("retry payload differs from first attempt")
	}
	if s.State() != StateIdle {
		t.Errorf("state after retry = %s, want idle", s.State())
	}
}

func TestSubmitRefreshesStoreFromServer(t *testing.T) {
	s, backend, store := startedSession(t, repExercise("pushup"))
	store.SetUser(dto.UserResponse{TotalXP: 100, Coins: 3, Level: 2})
	backend.user = dto.UserResponse{TotalXP: 450, Coins: 5, Level: 3, CurrentStreak: 4}

	_ = s.AddSet("pushup")
	if _, err := s.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if store.TotalXP() != 450 || store.Coins() != 5 || store.Level() != 3 {
		t.Errorf("store not refreshed from server truth: xp=%d coins=%d level=%d",
			store.TotalXP(), store.Coins(), store.Level())
	}
}

func TestSubmitGuardsDoubleSubmit(t *testing.T) {
	s, backend, _ := startedSession(t, repExercise("pushup"))
	backend.block = make(chan struct{})

	_ = s.AddSet("pushup")

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background())
		done <- err
	}()

	deadline := time.After(2 * time.Second)
	for s.State() != StateSubmitting {
		select {
		case <-deadline:
			t.Fatal("first submit never entered submitting state")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	if _, err := s.Submit(context.Background()); !errors.Is(err, ErrSubmitInFlight) {
		t.Errorf("second submit = %v, want ErrSubmitInFlight", err)
	}

	close(backend.block)
	if err := <-done; err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if backend.submitCalls != 1 {
		t.Errorf("submit called %d times, want 1", backend.submitCalls)
	}
}

func TestCancelDiscardsDraft(t *testing.T) {
	s, backend, _ := startedSession(t, repExercise("pushup"))

	_ = s.AddSet("pushup")
	s.Cancel()

	if s.State() != StateIdle {
		t.Errorf("state after cancel = %s, want idle", s.State())
	}
	if _, ok := s.Entry("pushup"); ok {
		t.Error("entry survived cancel")
	}
	if backend.submitCalls != 0 {
		t.Error("cancel must not submit anything")
	}
}

func TestEstimatedXPAggregatesPerExercise(t *testing.T) {
	s, _, _ := startedSession(t, repExercise("pushup"))

	if s.EstimatedXP() != 0 {
		t.Errorf("estimate before any set = %d, want 0", s.EstimatedXP())
	}
	_ = s.AddSet("pushup")
	if want := gamification.EstimateXP(10, 2, defaultRepsInput); s.EstimatedXP() != want {
		t.Errorf("estimate after one set = %d, want %d", s.EstimatedXP(), want)
	}
	_ = s.AddSet("pushup")
	if want := gamification.EstimateXP(10, 2, 2*defaultRepsInput); s.EstimatedXP() != want {
		t.Errorf("estimate = %d, want %d for the pooled rep volume", s.EstimatedXP(), want)
	}
}

func TestEstimatedXPTimedPoolsDuration(t *testing.T) {
	s, _, _ := startedSession(t, timedExercise("plank"))

	if err := s.SetInput("plank", 15); err != nil {
		t.Fatalf("SetInput: %v", err)
	}
	_ = s.AddSet("plank")
	_ = s.AddSet("plank")

	// Two 15s holds preview as one 30s volume, matching server pricing.
	want := gamification.EstimateXP(10, 2, gamification.TimedRepEquivalent(30))
	if s.EstimatedXP() != want {
		t.Errorf("estimate = %d, want %d", s.EstimatedXP(), want)
	}
}
