package httpserver

import (
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"
)

func (s *Server) addOrderRoutes(r *gin.Engine) {
	r.POST("/orders", func(c *gin.Context) {
		var in struct {
			UserID uint `json:"user_id" binding:"required"`
			GameID uint `json:"game_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			s.failBind(c, err)
			return
		}
		_, game, err := s.orders.Purchase(c, in.UserID, in.GameID)
		if err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusCreated, gin.H{
			"message":    "game purchased and added to your library",
			"game_title": game.Title,
			"game_price": game.Price,
		})
	})

	r.GET("/orders", func(c *gin.Context) {
		items, err := s.orders.ListOrders(c)
		if err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, items)
	})

	r.GET("/orders/:user_id", func(c *gin.Context) {
		id64, _ := strconv.ParseUint(c.Param("user_id"), 10, 64)
		items, err := s.orders.ListOrdersByUser(c, uint(id64))
		if err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, items)
	})

	r.DELETE("/orders/:user_id/:game_id", func(c *gin.Context) {
		uid64, _ := strconv.ParseUint(c.Param("user_id"), 10, 64)
		gid64, _ := strconv.ParseUint(c.Param("game_id"), 10, 64)
		if err := s.orders.Return(c, uint(uid64), uint(gid64)); err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, gin.H{"message": "game returned"})
	})
}
