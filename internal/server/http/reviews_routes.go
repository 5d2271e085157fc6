package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"

	"github.com/dkovalev/gamestore/internal/models"
)

func (s *Server) addReviewRoutes(r *gin.Engine) {
	r.POST("/reviews", func(c *gin.Context) {
		var in struct {
			UserID  uint   `json:"user_id" binding:"required"`
			GameID  uint   `json:"game_id" binding:"required"`
			Rating  int    `json:"rating" binding:"required,min=1,max=5"`
			Comment string `json:"comment"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			s.failBind(c, err)
			return
		}
		rev := &models.Review{
			UserID:  in.UserID,
			GameID:  in.GameID,
			Rating:  in.Rating,
			Comment: in.Comment,
		}
		game, err := s.reviews.Add(c, rev)
		if err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusCreated, gin.H{"message": fmt.Sprintf("review for game <%s> posted", game.Title)})
	})

	r.GET("/reviews", func(c *gin.Context) {
		items, err := s.reviews.ListReviews(c)
		if err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, items)
	})

	r.GET("/reviews/user/:user_id", func(c *gin.Context) {
		id64, _ := strconv.ParseUint(c.Param("user_id"), 10, 64)
		items, err := s.reviews.ListByUser(c, uint(id64))
		if err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, items)
	})

	r.GET("/reviews/game/:game_id", func(c *gin.Context) {
		id64, _ := strconv.ParseUint(c.Param("game_id"), 10, 64)
		items, err := s.reviews.ListByGame(c, uint(id64))
		if err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, items)
	})

	r.DELETE("/reviews/games/:game_id/users/:user_id", func(c *gin.Context) {
		gid64, _ := strconv.ParseUint(c.Param("game_id"), 10, 64)
		uid64, _ := strconv.ParseUint(c.Param("user_id"), 10, 64)
		if err := s.reviews.Delete(c, uint(gid64), uint(uid64)); err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, gin.H{"message": "review deleted"})
	})
}
