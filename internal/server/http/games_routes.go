package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"

	"github.com/dkovalev/gamestore/internal/fault"
	"github.com/dkovalev/gamestore/internal/models"
)

type gameBody struct {
	GenreID     uint    `json:"genre_id" binding:"required"`
	PlatformID  uint    `json:"platform_id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	ReleaseDate string  `json:"release_date" binding:"required"`
	Developer   string  `json:"developer"`
}

// releaseDate parses the DD.MM.YYYY wire format of the body.
func (b gameBody) releaseDate() (models.Date, error) {
	d, err := models.ParseDate(b.ReleaseDate)
	if err != nil {
		return models.Date{}, fault.Malformed("release_date", "release date must be in DD.MM.YYYY format")
	}
	return d, nil
}

func (s *Server) addGameRoutes(r *gin.Engine) {
	r.POST("/games", func(c *gin.Context) {
		var in gameBody
		if err := c.ShouldBindJSON(&in); err != nil {
			s.failBind(c, err)
			return
		}
		rd, err := in.releaseDate()
		if err != nil {
			s.fail(c, err)
			return
		}
		g := &models.Game{
			GenreID:     in.GenreID,
			PlatformID:  in.PlatformID,
			Title:       in.Title,
			Description: in.Description,
			Price:       in.Price,
			ReleaseDate: rd,
			Developer:   in.Developer,
		}
		if err := s.catalog.AddGame(c, g); err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusCreated, gin.H{"message": fmt.Sprintf("game <%s> added", g.Title)})
	})

	r.GET("/games", func(c *gin.Context) {
		items, err := s.catalog.ListGames(c)
		if err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, items)
	})

	r.GET("/games/:id", func(c *gin.Context) {
		id64, _ := strconv.ParseUint(c.Param("id"), 10, 64)
		g, err := s.catalog.GetGame(c, uint(id64))
		if err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, g)
	})

	r.GET("/games/search/:keyword", func(c *gin.Context) {
		items, err := s.catalog.SearchGames(c, c.Param("keyword"))
		if err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, items)
	})

	r.PUT("/games/:id", func(c *gin.Context) {
		id64, _ := strconv.ParseUint(c.Param("id"), 10, 64)
		var in gameBody
		if err := c.ShouldBindJSON(&in); err != nil {
			s.failBind(c, err)
			return
		}
		rd, err := in.releaseDate()
		if err != nil {
			s.fail(c, err)
			return
		}
		upd := models.Game{
			GenreID:     in.GenreID,
			PlatformID:  in.PlatformID,
			Title:       in.Title,
			Description: in.Description,
			Price:       in.Price,
			ReleaseDate: rd,
			Developer:   in.Developer,
		}
		if err := s.catalog.EditGame(c, uint(id64), upd); err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, gin.H{"message": "game updated"})
	})

	r.DELETE("/games/:id", func(c *gin.Context) {
		id64, _ := strconv.ParseUint(c.Param("id"), 10, 64)
		if err := s.catalog.DeleteGame(c, uint(id64)); err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, gin.H{"message": "game deleted"})
	})
}
