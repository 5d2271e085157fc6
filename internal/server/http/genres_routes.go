package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"

	"github.com/dkovalev/gamestore/internal/models"
)

func (s *Server) addGenreRoutes(r *gin.Engine) {
	r.POST("/genres", func(c *gin.Context) {
		var in struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			s.failBind(c, err)
			return
		}
		g := &models.Genre{Name: in.Name}
		if err := s.catalog.AddGenre(c, g); err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusCreated, gin.H{"message": fmt.Sprintf("genre <%s> added", g.Name)})
	})

	r.GET("/genres", func(c *gin.Context) {
		items, err := s.catalog.ListGenres(c)
		if err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, items)
	})

	r.PUT("/genres/:id", func(c *gin.Context) {
		id64, _ := strconv.ParseUint(c.Param("id"), 10, 64)
		var in struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			s.failBind(c, err)
			return
		}
		if err := s.catalog.EditGenre(c, uint(id64), in.Name); err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, gin.H{"message": "genre updated"})
	})

	r.DELETE("/genres/:id", func(c *gin.Context) {
		id64, _ := strconv.ParseUint(c.Param("id"), 10, 64)
		if err := s.catalog.DeleteGenre(c, uint(id64)); err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, gin.H{"message": "genre deleted"})
	})
}
