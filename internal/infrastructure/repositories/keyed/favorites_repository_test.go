package keyed

import (
	"context"
	"testing"

	"go.uber.org/zap/zaptest"

	"metahub/internal/core/domain"
	"metahub/internal/infrastructure/storage"
)

func TestFavoritesRepository_ToggleFlipsMembership(t *testing.T) {
	ctx := context.Background()
	repo := NewFavoritesRepository(ctx, storage.NewMemoryStore(), zaptest.NewLogger(t).Sugar(), nil)

	favorited, err := repo.Toggle(ctx, "gloo")
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !favorited {
		t.Error("first Toggle() = false, want true")
	}

	if has, _ := repo.Contains(ctx, "gloo"); !has {
		t.Error("Contains() after add = false")
	}

	favorited, err = repo.Toggle(ctx, "gloo")
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if favorited {
		t.Error("second Toggle() = true, want false")
	}
	if has, _ := repo.Contains(ctx, "gloo"); has {
		t.Error("Contains() after remove = true")
	}
}

func TestFavoritesRepository_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewFavoritesRepository(ctx, storage.NewMemoryStore(), zaptest.NewLogger(t).Sugar(), nil)

	repo.Toggle(ctx, "gloo")
	repo.Toggle(ctx, "ling")
	repo.Toggle(ctx, "freya")
	repo.Toggle(ctx, "ling") // remove

	heroes, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []domain.HeroID{"gloo", "freya"}
	if len(heroes) != len(want) {
		t.Fatalf("List() = %v, want %v", heroes, want)
	}
	for i := range want {
		if heroes[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, heroes[i], want[i])
		}
	}
}

func TestFavoritesRepository_PersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewFavoritesRepository(ctx, store, zaptest.NewLogger(t).Sugar(), nil)

	repo.Toggle(ctx, "gloo")

	reloaded := NewFavoritesRepository(ctx, store, zaptest.NewLogger(t).Sugar(), nil)
	if has, _ := reloaded.Contains(ctx, "gloo"); !has {
		t.Error("favorite lost across reload")
	}
}
