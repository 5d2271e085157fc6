package users

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/dkovalev/gamestore/internal/fault"
	"github.com/dkovalev/gamestore/internal/models"
	storegorm "github.com/dkovalev/gamestore/internal/repo/gorm/store"
)

func asFault(err error, fe **fault.Error) bool { return errors.As(err, fe) }

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

func seedUser(t *testing.T, store *storegorm.Repo, name, email string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email, PasswordHash: "h"}
	if err := store.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}
	return u
}

func seedGame(t *testing.T, store *storegorm.Repo, title string) *models.Game {
	t.Helper()
	ctx := context.Background()
	genre := &models.Genre{Name: "genre for " + title}
	platform := &models.Platform{Name: "platform for " + title}
	if err := store.CreateGenre(ctx, genre); err != nil {
		t.Fatalf("seed genre: %v", err)
	}
	if err := store.CreatePlatform(ctx, platform); err != nil {
		t.Fatalf("seed platform: %v", err)
	}
	g := &models.Game{
		GenreID: genre.ID, PlatformID: platform.ID,
		Title: title, Price: 19.99, ReleaseDate: models.NewDate(2021, 6, 15), Developer: "D",
	}
	if err := store.CreateGame(ctx, g); err != nil {
		t.Fatalf("seed game: %v", err)
	}
	return g
}

func TestEditEmailKeepsOwnAddress(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	u := seedUser(t, store, "Alice", "a@x.com")

	// Re-submitting the current address is not a conflict.
	if err := svc.EditEmail(ctx, u.ID, "a@x.com"); err != nil {
		t.Fatalf("edit to own email: %v", err)
	}
	if err := svc.EditEmail(ctx, u.ID, "alice@x.com"); err != nil {
		t.Fatalf("edit email: %v", err)
	}
	got, err := store.GetUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.Email != "alice@x.com" {
		t.Fatalf("email = %q, want alice@x.com", got.Email)
	}
}

func TestEditEmailRejectsTakenAddress(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	u := seedUser(t, store, "Alice", "a@x.com")
	seedUser(t, store, "Bob", "b@x.com")

	err := svc.EditEmail(ctx, u.ID, "b@x.com")
	var fe *fault.Error
	if !asFault(err, &fe) || fe.Kind != fault.KindConflict {
		t.Fatalf("edit to taken email: got %v, want conflict", err)
	}
	if fe.Field != "email" {
		t.Fatalf("conflict field = %q, want email", fe.Field)
	}
}

func TestEditEmailUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.EditEmail(context.Background(), 404, "x@x.com")
	var fe *fault.Error
	if !asFault(err, &fe) || fe.Kind != fault.KindNotFound {
		t.Fatalf("edit unknown user: got %v, want not found", err)
	}
}

func TestLibraryListsOwnedGames(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	u := seedUser(t, store, "Alice", "a@x.com")
	g1 := seedGame(t, store, "Foo")
	g2 := seedGame(t, store, "Bar")
	seedGame(t, store, "Unowned")
	for _, g := range []*models.Game{g1, g2} {
		if err := store.CreateLibraryRow(ctx, &models.Library{UserID: u.ID, GameID: g.ID}); err != nil {
			t.Fatalf("seed library row: %v", err)
		}
	}

	rows, err := svc.Library(ctx, u.ID)
	if err != nil {
		t.Fatalf("library: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("library rows = %d, want 2", len(rows))
	}
	owned := map[uint]bool{}
	for _, row := range rows {
		owned[row.GameID] = true
	}
	if !owned[g1.ID] || !owned[g2.ID] {
		t.Fatalf("library misses a purchased game: %v", owned)
	}
}

func TestLibraryUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Library(context.Background(), 404)
	var fe *fault.Error
	if !asFault(err, &fe) || fe.Kind != fault.KindNotFound {
		t.Fatalf("library of unknown user: got %v, want not found", err)
	}
}

func TestDeleteRemovesDependentRows(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	u := seedUser(t, store, "Alice", "a@x.com")
	other := seedUser(t, store, "Bob", "b@x.com")
	g := seedGame(t, store, "Foo")

	for _, uid := range []uint{u.ID, other.ID} {
		if err := store.CreateOrder(ctx, &models.Order{UserID: uid, GameID: g.ID, GamePrice: g.Price, PurchaseDate: models.Today()}); err != nil {
			t.Fatalf("seed order: %v", err)
		}
		if err := store.CreateLibraryRow(ctx, &models.Library{UserID: uid, GameID: g.ID}); err != nil {
			t.Fatalf("seed library row: %v", err)
		}
		if err := store.CreateReview(ctx, &models.Review{UserID: uid, GameID: g.ID, Rating: 5, Comment: "ok"}); err != nil {
			t.Fatalf("seed review: %v", err)
		}
	}

	if err := svc.Delete(ctx, u.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if got, _ := store.GetUser(ctx, u.ID); got != nil {
		t.Fatal("user row survived delete")
	}
	if rows, _ := store.ListOrdersByUser(ctx, u.ID); len(rows) != 0 {
		t.Fatalf("orders survived delete: %d", len(rows))
	}
	if rows, _ := store.ListReviewsByUser(ctx, u.ID); len(rows) != 0 {
		t.Fatalf("reviews survived delete: %d", len(rows))
	}
	if rows, _ := store.ListLibraryByUser(ctx, u.ID); len(rows) != 0 {
		t.Fatalf("library rows survived delete: %d", len(rows))
	}

	// The other user's rows are untouched.
	if rows, _ := store.ListOrdersByUser(ctx, other.ID); len(rows) != 1 {
		t.Fatalf("other user's orders = %d, want 1", len(rows))
	}
	if rows, _ := store.ListReviewsByUser(ctx, other.ID); len(rows) != 1 {
		t.Fatalf("other user's reviews = %d, want 1", len(rows))
	}
}

func TestGetAndList(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	u := seedUser(t, store, "Alice", "a@x.com")
	seedUser(t, store, "Bob", "b@x.com")

	got, err := svc.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Alice" {
		t.Fatalf("name = %q, want Alice", got.Name)
	}
	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("users = %d, want 2", len(all))
	}
	_, err = svc.Get(ctx, 404)
	var fe *fault.Error
	if !asFault(err, &fe) || fe.Kind != fault.KindNotFound {
		t.Fatalf("get unknown: got %v, want not found", err)
	}
}
