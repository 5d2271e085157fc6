package catalog

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/dkovalev/gamestore/internal/fault"
	"github.com/dkovalev/gamestore/internal/models"
	storegorm "github.com/dkovalev/gamestore/internal/repo/gorm/store"
)

func newTestService(t *testing.T) (*Service, *storegorm.Repo) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := storegorm.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	store := storegorm.New(db)
	return NewService(store), store
}

func seed(t *testing.T, svc *Service) (genreID, platformID uint) {
	t.Helper()
	ctx := context.Background()
	g := &models.Genre{Name: "RPG"}
	p := &models.Platform{Name: "PC"}
	if err := svc.AddGenre(ctx, g); err != nil {
		t.Fatalf("add genre: %v", err)
	}
	if err := svc.AddPlatform(ctx, p); err != nil {
		t.Fatalf("add platform: %v", err)
	}
	return g.ID, p.ID
}

func newGame(genreID, platformID uint, title string) *models.Game {
	return &models.Game{
		GenreID:     genreID,
		PlatformID:  platformID,
		Title:       title,
		Description: "d",
		Price:       9.99,
		ReleaseDate: models.NewDate(2020, 1, 1),
		Developer:   "D",
	}
}

func TestAddGameInitializesRating(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	gid, pid := seed(t, svc)

	g := newGame(gid, pid, "Foo")
	g.Rating = 4.8
	if err := svc.AddGame(ctx, g); err != nil {
		t.Fatalf("add game: %v", err)
	}
	got, err := svc.GetGame(ctx, g.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Rating != 0 {
		t.Fatalf("new game must start with rating 0, got %v", got.Rating)
	}
}

func TestAddGameValidationOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	gid, pid := seed(t, svc)
	if err := svc.AddGame(ctx, newGame(gid, pid, "Foo")); err != nil {
		t.Fatalf("add game: %v", err)
	}

	// Duplicate title and bad refs together: the title check runs first.
	bad := newGame(999, 999, "Foo")
	err := svc.AddGame(ctx, bad)
	if fault.KindOf(err) != fault.KindConflict {
		t.Fatalf("expected title conflict to win, got %v", err)
	}
	err = svc.AddGame(ctx, newGame(999, pid, "Bar"))
	if fault.KindOf(err) != fault.KindValidation {
		t.Fatalf("expected genre validation failure, got %v", err)
	}
}

func TestEditGameKeepsOwnTitle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	gid, pid := seed(t, svc)
	g := newGame(gid, pid, "Foo")
	if err := svc.AddGame(ctx, g); err != nil {
		t.Fatalf("add: %v", err)
	}
	other := newGame(gid, pid, "Bar")
	if err := svc.AddGame(ctx, other); err != nil {
		t.Fatalf("add: %v", err)
	}

	upd := *newGame(gid, pid, "Foo")
	upd.Price = 19.99
	if err := svc.EditGame(ctx, g.ID, upd); err != nil {
		t.Fatalf("editing a game with its own title must pass: %v", err)
	}
	got, _ := svc.GetGame(ctx, g.ID)
	if got.Price != 19.99 {
		t.Fatalf("price not updated: %v", got.Price)
	}

	upd.Title = "Bar"
	if err := svc.EditGame(ctx, g.ID, upd); fault.KindOf(err) != fault.KindConflict {
		t.Fatalf("taking another game's title must conflict, got %v", err)
	}
}

func TestEditGameDoesNotTouchRating(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	gid, pid := seed(t, svc)
	g := newGame(gid, pid, "Foo")
	if err := svc.AddGame(ctx, g); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.SetGameRating(ctx, g.ID, 4.5); err != nil {
		t.Fatalf("set rating: %v", err)
	}

	upd := *newGame(gid, pid, "Foo")
	upd.Description = "updated"
	if err := svc.EditGame(ctx, g.ID, upd); err != nil {
		t.Fatalf("edit: %v", err)
	}
	got, _ := svc.GetGame(ctx, g.ID)
	if got.Rating != 4.5 {
		t.Fatalf("edit must not change the derived rating, got %v", got.Rating)
	}
	if got.Description != "updated" {
		t.Fatalf("description not updated")
	}
}

func TestGenrePlatformUniqueCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	seed(t, svc)

	if err := svc.AddGenre(ctx, &models.Genre{Name: "rpg"}); fault.KindOf(err) != fault.KindConflict {
		t.Fatalf("expected case-insensitive genre conflict, got %v", err)
	}
	if err := svc.AddPlatform(ctx, &models.Platform{Name: "pc"}); fault.KindOf(err) != fault.KindConflict {
		t.Fatalf("expected case-insensitive platform conflict, got %v", err)
	}
}

func TestEditGenreSelfExclusion(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	gid, _ := seed(t, svc)

	if err := svc.EditGenre(ctx, gid, "RPG"); err != nil {
		t.Fatalf("renaming genre to its own name must pass: %v", err)
	}
	if err := svc.EditGenre(ctx, 999, "Indie"); fault.KindOf(err) != fault.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteGenreBlockedWhileReferenced(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	gid, pid := seed(t, svc)
	if err := svc.AddGame(ctx, newGame(gid, pid, "Foo")); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.DeleteGenre(ctx, gid); fault.KindOf(err) != fault.KindConflict {
		t.Fatalf("deleting a referenced genre must conflict, got %v", err)
	}
	if err := svc.DeletePlatform(ctx, pid); fault.KindOf(err) != fault.KindConflict {
		t.Fatalf("deleting a referenced platform must conflict, got %v", err)
	}

	if err := svc.DeleteGame(ctx, 1); err != nil {
		t.Fatalf("delete game: %v", err)
	}
	if err := svc.DeleteGenre(ctx, gid); err != nil {
		t.Fatalf("deleting an unreferenced genre must pass: %v", err)
	}
	if err := svc.DeletePlatform(ctx, pid); err != nil {
		t.Fatalf("deleting an unreferenced platform must pass: %v", err)
	}
}

func TestDeleteGameCascades(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	gid, pid := seed(t, svc)
	g := newGame(gid, pid, "Foo")
	if err := svc.AddGame(ctx, g); err != nil {
		t.Fatalf("add: %v", err)
	}
	u := &models.User{Name: "Alice", Email: "a@x.com", PasswordHash: "h"}
	if err := store.CreateUser(ctx, u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := store.CreateOrder(ctx, &models.Order{UserID: u.ID, GameID: g.ID, GamePrice: 9.99, PurchaseDate: models.Today()}); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	if err := store.CreateLibraryRow(ctx, &models.Library{UserID: u.ID, GameID: g.ID}); err != nil {
		t.Fatalf("seed library: %v", err)
	}
	if err := store.CreateReview(ctx, &models.Review{UserID: u.ID, GameID: g.ID, Rating: 4, Comment: "ok"}); err != nil {
		t.Fatalf("seed review: %v", err)
	}

	if err := svc.DeleteGame(ctx, g.ID); err != nil {
		t.Fatalf("delete game: %v", err)
	}
	if o, _ := store.FindOrderByPair(ctx, u.ID, g.ID); o != nil {
		t.Fatalf("order must be removed with the game")
	}
	if row, _ := store.FindLibraryRow(ctx, u.ID, g.ID); row != nil {
		t.Fatalf("library row must be removed with the game")
	}
	if rev, _ := store.FindReviewByPair(ctx, u.ID, g.ID); rev != nil {
		t.Fatalf("review must be removed with the game")
	}
}

func TestSearchGames(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	gid, pid := seed(t, svc)
	for _, title := range []string{"Dark Souls", "Dark Forest", "Stardew Valley"} {
		if err := svc.AddGame(ctx, newGame(gid, pid, title)); err != nil {
			t.Fatalf("add %s: %v", title, err)
		}
	}
	got, err := svc.SearchGames(ctx, "dark")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for substring search, got %d", len(got))
	}
}
