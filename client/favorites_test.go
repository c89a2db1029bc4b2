package client

import (
	"context"
	"errors"
	"testing"

	"github.com/pixelfit-app/pixelfit_api/dto"
)

type fakeToggler struct {
	err   error
	state map[string]bool
}

func (f *fakeToggler) ToggleFavorite(ctx context.Context, slug string) (*dto.FavoriteResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.state[slug] = !f.state[slug]
	return &dto.FavoriteResponse{ExerciseSlug: slug, IsFavorite: f.state[slug]}, nil
}

func TestFavoritesToggle(t *testing.T) {
	api := &fakeToggler{state: map[string]bool{}}
	store := NewFavoritesStore(api)

	if err := store.Toggle(context.Background(), "pushup"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !store.IsFavorite("pushup") {
		t.Error("slug not favorited after toggle")
	}

	if err := store.Toggle(context.Background(), "pushup"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if store.IsFavorite("pushup") {
		t.Error("slug still favorited after second toggle")
	}
}

func TestFavoritesToggleRevertsOnFailure(t *testing.T) {
	api := &fakeToggler{state: map[string]bool{}, err: errors.New("network down")}
	store := NewFavoritesStore(api)
	store.Load([]string{"squat"})

	if err := store.Toggle(context.Background(), "squat"); err == nil {
		t.Fatal("expected toggle error")
	}
	if !store.IsFavorite("squat") {
		t.Error("optimistic flip not reverted after failure")
	}

	if err := store.Toggle(context.Background(), "pushup"); err == nil {
		t.Fatal("expected toggle error")
	}
	if store.IsFavorite("pushup") {
		t.Error("optimistic add not reverted after failure")
	}
}

func TestFavoritesLoadReplaces(t *testing.T) {
	store := NewFavoritesStore(&fakeToggler{state: map[string]bool{}})
	store.Load([]string{"pushup", "plank"})
	store.Load([]string{"squat"})

	if store.IsFavorite("pushup") {
		t.Error("stale favorite survived reload")
	}
	if !store.IsFavorite("squat") {
		t.Error("loaded favorite missing")
	}
}
