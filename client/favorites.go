package client

import (
	"context"
	"sync"

	"github.com/pixelfit-app/pixelfit_api/dto"
)

type favoriteToggler interface {
	ToggleFavorite(ctx context.Context, slug string) (*dto.FavoriteResponse, error)
}

// FavoritesStore tracks favorite exercises. Toggle flips the flag before the
// network call for instant feedback and reverts it when the call fails;
// there is no server-confirmed draft to fall back on like the workout flow
// has, so revert is the recovery path.
type FavoritesStore struct {
	mu    sync.Mutex
	slugs map[string]bool
	api   favoriteToggler
}

func NewFavoritesStore(api favoriteToggler) *FavoritesStore {
	return &FavoritesStore{
		slugs: map[string]bool{},
		api:   api,
	}
}

// Load replaces the local set, typically from the exercise list response.
func (f *FavoritesStore) Load(slugs []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slugs = make(map[string]bool, len(slugs))
	for _, slug := range slugs {
		f.slugs[slug] = true
	}
}

func (f *FavoritesStore) IsFavorite(slug string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.slugs[slug]
}

func (f *FavoritesStore) Toggle(ctx context.Context, slug string) error {
	f.mu.Lock()
	was := f.slugs[slug]
	f.slugs[slug] = !was
	f.mu.Unlock()

	resp, err := f.api.ToggleFavorite(ctx, slug)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.slugs[slug] = was
		return err
	}
	// The server's answer wins over the optimistic flip.
	f.slugs[slug] = resp.IsFavorite
	return nil
}
