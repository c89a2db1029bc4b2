package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/gamification"
)

// State is the lifecycle phase of a workout session.
type State string

const (
	StateIdle       State = "idle"
	StateSelecting  State = "selecting"
	StateActive     State = "active"
	StatePaused     State = "paused"
	StateSubmitting State = "submitting"
)

const (
	defaultRepsInput  = 10
	defaultTimedInput = 30
)

var (
	ErrNoExercisesSelected = errors.New("no exercises selected")
	ErrNoSetsLogged        = errors.New("no sets logged")
	ErrInvalidInput        = errors.New("input value must be positive")
	ErrUnknownExercise     = errors.New("exercise not in session")
	ErrInvalidState        = errors.New("operation not allowed in current state")
	ErrSubmitInFlight      = errors.New("submission already in flight")
)

// backend is the slice of the API the session needs. *Client satisfies it;
// tests inject a fake.
type backend interface {
	SubmitWorkout(ctx context.Context, req dto.SubmitWorkoutRequest) (*dto.WorkoutSummaryResponse, error)
	Me(ctx context.Context) (*dto.UserResponse, error)
}

// ExerciseEntry accumulates sets for one exercise during a session. Sets is
// append-only: once committed, a value is never changed or removed. Input is
// the pending value; it stays as the next default after a commit.
type ExerciseEntry struct {
	Slug       string
	Name       string
	IsTimed    bool
	BaseXP     int
	Difficulty int
	Sets       []int
	Input      int
}

// Session is the in-progress workout draft. All rewards shown during the
// session are local estimates; the server response at submission is the only
// value applied to persistent user state.
type Session struct {
	mu    sync.Mutex
	state State

	selected []dto.ExerciseResponse
	entries  map[string]*ExerciseEntry
	order    []string

	elapsedSeconds int
	restSeconds    int
	tickStop       chan struct{}
	restStop       chan struct{}

	api   backend
	store *UserStore
}

func NewSession(api backend, store *UserStore) *Session {
	return &Session{
		state:   StateIdle,
		entries: map[string]*ExerciseEntry{},
		api:     api,
		store:   store,
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ToggleExercise adds the exercise to the selection, or removes it if
// already present.
func (s *Session) ToggleExercise(ex dto.ExerciseResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle && s.state != StateSelecting {
		return ErrInvalidState
	}
	s.state = StateSelecting

	for i, sel := range s.selected {
		if sel.Slug == ex.Slug {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return nil
		}
	}
	s.selected = append(s.selected, ex)
	return nil
}

func (s *Session) SelectedSlugs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	slugs := make([]string, len(s.selected))
	for i, sel := range s.selected {
		slugs[i] = sel.Slug
	}
	return slugs
}

// Start moves the session to active: one accumulator entry per selected
// exercise, default pending input, elapsed ticker running.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSelecting {
		return ErrInvalidState
	}
	if len(s.selected) == 0 {
		return ErrNoExercisesSelected
	}

	s.entries = make(map[string]*ExerciseEntry, len(s.selected))
	s.order = s.order[:0]
	for _, ex := range s.selected {
		input := defaultRepsInput
		if ex.IsTimed {
			input = defaultTimedInput
		}
		s.entries[ex.Slug] = &ExerciseEntry{
			Slug:       ex.Slug,
			Name:       ex.Name,
			IsTimed:    ex.IsTimed,
			BaseXP:     ex.BaseXP,
			Difficulty: ex.Difficulty,
			Input:      input,
		}
		s.order = append(s.order, ex.Slug)
	}

	s.elapsedSeconds = 0
	s.startTickLocked()
	s.state = StateActive
	return nil
}

// SetInput stages the value for the next committed set.
func (s *Session) SetInput(slug string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive && s.state != StatePaused {
		return ErrInvalidState
	}
	entry, ok := s.entries[slug]
	if !ok {
		return ErrUnknownExercise
	}
	if value < 0 {
		return ErrInvalidInput
	}
	entry.Input = value
	return nil
}

// AddSet commits the pending input as a new set. The input is not cleared;
// the last value stays as the default for the next set.
func (s *Session) AddSet(slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return ErrInvalidState
	}
	entry, ok := s.entries[slug]
	if !ok {
		return ErrUnknownExercise
	}
	if entry.Input <= 0 {
		return ErrInvalidInput
	}
	entry.Sets = append(entry.Sets, entry.Input)
	return nil
}

func (s *Session) Entry(slug string) (ExerciseEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[slug]
	if !ok {
		return ExerciseEntry{}, false
	}
	copied := *entry
	copied.Sets = append([]int(nil), entry.Sets...)
	return copied, true
}

func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return ErrInvalidState
	}
	s.stopTickLocked()
	s.stopRestLocked()
	s.state = StatePaused
	return nil
}

func (s *Session) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePaused {
		return ErrInvalidState
	}
	s.startTickLocked()
	s.state = StateActive
	return nil
}

func (s *Session) Elapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsedSeconds
}

// StartRest begins an inter-set countdown, independent of the elapsed
// ticker. A new countdown replaces a running one.
func (s *Session) StartRest(seconds int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return ErrInvalidState
	}
	if seconds <= 0 {
		return ErrInvalidInput
	}
	s.stopRestLocked()
	s.restSeconds = seconds
	s.startRestLocked()
	return nil
}

func (s *Session) RestRemaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restSeconds
}

// EstimatedXP previews the workout's XP, aggregating sets per exercise the
// way the server prices them. It deliberately omits streak and first-workout
// bonuses; only the server computes those.
func (s *Session) EstimatedXP() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, slug := range s.order {
		entry := s.entries[slug]
		if len(entry.Sets) == 0 {
			continue
		}
		reps := 0
		if entry.IsTimed {
			duration := 0
			for _, v := range entry.Sets {
				duration += v
			}
			reps = gamification.TimedRepEquivalent(duration)
		} else {
			for _, v := range entry.Sets {
				reps += v
			}
		}
		total += gamification.EstimateXP(entry.BaseXP, entry.Difficulty, reps)
	}
	return total
}

func (s *Session) TotalSets() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, entry := range s.entries {
		total += len(entry.Sets)
	}
	return total
}

// Submit sends the draft to the server. Exercises with no committed sets
// are dropped from the payload. On failure the draft survives untouched so
// the user can retry; on success the store is refreshed from server truth
// and the draft is cleared.
func (s *Session) Submit(ctx context.Context) (*dto.WorkoutSummaryResponse, error) {
	s.mu.Lock()
	if s.state == StateSubmitting {
		s.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	if s.state != StateActive && s.state != StatePaused {
		s.mu.Unlock()
		return nil, ErrInvalidState
	}

	req := dto.SubmitWorkoutRequest{DurationSeconds: s.elapsedSeconds}
	for _, slug := range s.order {
		entry := s.entries[slug]
		if len(entry.Sets) == 0 {
			continue
		}
		req.Exercises = append(req.Exercises, dto.ExerciseSetData{
			ExerciseSlug: entry.Slug,
			Sets:         append([]int(nil), entry.Sets...),
			IsTimed:      entry.IsTimed,
		})
	}
	if len(req.Exercises) == 0 {
		s.mu.Unlock()
		return nil, ErrNoSetsLogged
	}

	prev := s.state
	s.state = StateSubmitting
	s.stopTickLocked()
	s.stopRestLocked()
	s.mu.Unlock()

	summary, err := s.api.SubmitWorkout(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		// Draft stays intact for retry.
		s.state = prev
		if prev == StateActive {
			s.startTickLocked()
		}
		return nil, err
	}

	if s.store != nil {
		if user, meErr := s.api.Me(ctx); meErr == nil {
			s.store.SetUser(*user)
		}
	}

	s.clearLocked()
	return summary, nil
}

// Cancel discards the draft unconditionally. Nothing is submitted.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSubmitting {
		return
	}
	s.stopTickLocked()
	s.stopRestLocked()
	s.clearLocked()
}

func (s *Session) clearLocked() {
	s.selected = nil
	s.entries = map[string]*ExerciseEntry{}
	s.order = nil
	s.elapsedSeconds = 0
	s.restSeconds = 0
	s.state = StateIdle
}

func (s *Session) startTickLocked() {
	stop := make(chan struct{})
	s.tickStop = stop
	go func() {
		t := time.NewTicker(time.Second)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				s.mu.Lock()
				s.elapsedSeconds++
				s.mu.Unlock()
			case <-stop:
				return
			}
		}
	}()
}

func (s *Session) stopTickLocked() {
	if s.tickStop != nil {
		close(s.tickStop)
		s.tickStop = nil
	}
}

func (s *Session) startRestLocked() {
	stop := make(chan struct{})
	s.restStop = stop
	go func() {
		t := time.NewTicker(time.Second)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				s.mu.Lock()
				if s.restSeconds > 0 {
					s.restSeconds--
				}
				if s.restSeconds == 0 {
					if s.restStop == stop {
						close(s.restStop)
						s.restStop = nil
					}
					s.mu.Unlock()
					return
				}
				s.mu.Unlock()
			case <-stop:
				return
			}
		}
	}()
}

func (s *Session) stopRestLocked() {
	if s.restStop != nil {
		close(s.restStop)
		s.restStop = nil
	}
	s.restSeconds = 0
}
