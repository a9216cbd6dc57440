package keyed

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	"metahub/internal/infrastructure/storage"
)

func newTestTierListRepo(t *testing.T) (ports.TierListRepository, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	repo := NewTierListRepository(context.Background(), store, zaptest.NewLogger(t).Sugar(), nil)
	return repo, store
}

func TestTierListRepository_PlaceHeroMovesBetweenBuckets(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestTierListRepo(t)

	repo.Add(ctx, &domain.TierList{ID: "t1", Name: "Patch Meta", Tiers: domain.NewTierBuckets()})

	if _, err := repo.PlaceHero(ctx, "t1", domain.TierS, "gloo"); err != nil {
		t.Fatalf("PlaceHero() error = %v", err)
	}
	list, err := repo.PlaceHero(ctx, "t1", domain.TierA, "gloo")
	if err != nil {
		t.Fatalf("PlaceHero() error = %v", err)
	}

	// The hero must live in exactly one bucket after the move.
	rank, ok := list.RankOf("gloo")
	if !ok || rank != domain.TierA {
		t.Errorf("RankOf(gloo) = %v %v, want A true", rank, ok)
	}
	if len(list.Tiers[domain.TierS]) != 0 {
		t.Errorf("S bucket still holds %v", list.Tiers[domain.TierS])
	}

	if _, err := repo.PlaceHero(ctx, "nope", domain.TierS, "gloo"); !errors.Is(err, domain.ErrTierListNotFound) {
		t.Errorf("PlaceHero(absent list) error = %v, want ErrTierListNotFound", err)
	}
}

func TestTierListRepository_VoteAndUpdate(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestTierListRepo(t)

	repo.Add(ctx, &domain.TierList{ID: "t1", Name: "old"})

	voted, err := repo.Vote(ctx, "t1")
	if err != nil {
		t.Fatalf("Vote() error = %v", err)
	}
	if voted.Votes != 1 {
		t.Errorf("Votes = %d, want 1", voted.Votes)
	}

	public := true
	updated, err := repo.Update(ctx, "t1", domain.TierListPatch{IsPublic: &public})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !updated.IsPublic {
		t.Error("IsPublic not applied")
	}
	if updated.Votes != 1 {
		t.Errorf("Update clobbered votes: %d", updated.Votes)
	}
}

func TestTierListRepository_FindByAuthor(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestTierListRepo(t)

	repo.Add(ctx, &domain.TierList{ID: "t1", AuthorID: "user_1"})
	repo.Add(ctx, &domain.TierList{ID: "t2", AuthorID: "user_2"})
	repo.Add(ctx, &domain.TierList{ID: "t3", AuthorID: "user_1"})

	mine, _ := repo.FindByAuthor(ctx, "user_1")
	if len(mine) != 2 {
		t.Errorf("FindByAuthor(user_1) returned %d, want 2", len(mine))
	}
}

func TestTierListRepository_PersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestTierListRepo(t)

	repo.Add(ctx, &domain.TierList{ID: "t1", Name: "survives", Tiers: domain.NewTierBuckets()})
	repo.PlaceHero(ctx, "t1", domain.TierSPlus, "gloo")

	reloaded := NewTierListRepository(ctx, store, zaptest.NewLogger(t).Sugar(), nil)
	list, err := reloaded.GetByID(ctx, "t1")
	if err != nil {
		t.Fatalf("GetByID() after reload error = %v", err)
	}
	rank, ok := list.RankOf("gloo")
	if !ok || rank != domain.TierSPlus {
		t.Errorf("reloaded RankOf(gloo) = %v %v, want S+ true", rank, ok)
	}
}
