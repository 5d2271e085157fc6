package models

// User owns reviews and orders; library rows tie it to purchased games.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"uniqueIndex;size:64;not null" json:"name"`
	Email        string `gorm:"uniqueIndex;size:256;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
}

// Game carries a derived rating: the mean of its review ratings, one decimal.
type Game struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	GenreID     uint    `gorm:"index;not null" json:"genre_id"`
	PlatformID  uint    `gorm:"index;not null" json:"platform_id"`
	Title       string  `gorm:"uniqueIndex;size:256;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	ReleaseDate Date    `json:"release_date"`
	Developer   string  `gorm:"size:128" json:"developer"`
	Rating      float64 `gorm:"default:0" json:"rating"`
}

type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:64;not null" json:"name"`
}

type Platform struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:64;not null" json:"name"`
}

// Library marks ownership: created on purchase, removed on return.
type Library struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	GameID uint `gorm:"primaryKey;autoIncrement:false" json:"game_id"`
}

// Order is the historical purchase record; GamePrice is the price at sale time
// and never changes afterwards.
type Order struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	UserID       uint    `gorm:"index;not null" json:"user_id"`
	GameID       uint    `gorm:"index;not null" json:"game_id"`
	GamePrice    float64 `gorm:"not null" json:"game_price"`
	PurchaseDate Date    `json:"purchase_date"`
}

// Review holds at most one row per (user, game) pair.
type Review struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"uniqueIndex:uniq_review_pair,priority:1;not null" json:"user_id"`
	GameID  uint   `gorm:"uniqueIndex:uniq_review_pair,priority:2;not null" json:"game_id"`
	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`
}
