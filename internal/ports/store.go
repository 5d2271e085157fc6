package ports

import (
	"context"

	"github.com/dkovalev/gamestore/internal/models"
)

// Store is the persistence gateway consumed by validators and services.
// Lookup-by-field methods return (nil, nil) when no row matches; only CRUD on a
// known id reports missing rows as an error at a higher layer.
type Store interface {
	// Tx runs fn against a transaction-scoped Store. Every write lands or none does.
	Tx(ctx context.Context, fn func(Store) error) error

	// Users
	CreateUser(ctx context.Context, u *models.User) error
	UpdateUser(ctx context.Context, u *models.User) error
	DeleteUser(ctx context.Context, id uint) error
	GetUser(ctx context.Context, id uint) (*models.User, error)
	FindUserByName(ctx context.Context, name string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)

	// Games
	CreateGame(ctx context.Context, g *models.Game) error
	UpdateGame(ctx context.Context, g *models.Game) error
	DeleteGame(ctx context.Context, id uint) error
	GetGame(ctx context.Context, id uint) (*models.Game, error)
	FindGameByTitle(ctx context.Context, title string) (*models.Game, error)
	SearchGames(ctx context.Context, keyword string) ([]*models.Game, error)
	ListGames(ctx context.Context) ([]*models.Game, error)

	// Genres
	CreateGenre(ctx context.Context, g *models.Genre) error
	UpdateGenre(ctx context.Context, g *models.Genre) error
	DeleteGenre(ctx context.Context, id uint) error
	GetGenre(ctx context.Context, id uint) (*models.Genre, error)
	FindGenreByName(ctx context.Context, name string) (*models.Genre, error)
	ListGenres(ctx context.Context) ([]*models.Genre, error)
	CountGamesByGenre(ctx context.Context, genreID uint) (int64, error)

	// Platforms
	CreatePlatform(ctx context.Context, p *models.Platform) error
	UpdatePlatform(ctx context.Context, p *models.Platform) error
	DeletePlatform(ctx context.Context, id uint) error
	GetPlatform(ctx context.Context, id uint) (*models.Platform, error)
	FindPlatformByName(ctx context.Context, name string) (*models.Platform, error)
	ListPlatforms(ctx context.Context) ([]*models.Platform, error)
	CountGamesByPlatform(ctx context.Context, platformID uint) (int64, error)

	// Library
	CreateLibraryRow(ctx context.Context, row *models.Library) error
	DeleteLibraryRow(ctx context.Context, userID, gameID uint) error
	FindLibraryRow(ctx context.Context, userID, gameID uint) (*models.Library, error)
	ListLibraryByUser(ctx context.Context, userID uint) ([]*models.Library, error)

	// Orders
	CreateOrder(ctx context.Context, o *models.Order) error
	DeleteOrderByPair(ctx context.Context, userID, gameID uint) error
	FindOrderByPair(ctx context.Context, userID, gameID uint) (*models.Order, error)
	ListOrders(ctx context.Context) ([]*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint) ([]*models.Order, error)

	// Reviews
	CreateReview(ctx context.Context, r *models.Review) error
	DeleteReviewByPair(ctx context.Context, userID, gameID uint) error
	FindReviewByPair(ctx context.Context, userID, gameID uint) (*models.Review, error)
	ListReviews(ctx context.Context) ([]*models.Review, error)
	ListReviewsByUser(ctx context.Context, userID uint) ([]*models.Review, error)
	ListReviewsByGame(ctx context.Context, gameID uint) ([]*models.Review, error)
	ReviewStats(ctx context.Context, gameID uint) (avg float64, count int64, err error)
	SetGameRating(ctx context.Context, gameID uint, rating float64) error
}
