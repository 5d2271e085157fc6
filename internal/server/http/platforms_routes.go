package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"

	"github.com/dkovalev/gamestore/internal/models"
)

func (s *Server) addPlatformRoutes(r *gin.Engine) {
	r.POST("/platforms", func(c *gin.Context) {
		var in struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			s.failBind(c, err)
			return
		}
		p := &models.Platform{Name: in.Name}
		if err := s.catalog.AddPlatform(c, p); err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusCreated, gin.H{"message": fmt.Sprintf("platform <%s> added", p.Name)})
	})

	r.GET("/platforms", func(c *gin.Context) {
		items, err := s.catalog.ListPlatforms(c)
		if err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, items)
	})

	r.PUT("/platforms/:id", func(c *gin.Context) {
		id64, _ := strconv.ParseUint(c.Param("id"), 10, 64)
		var in struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			s.failBind(c, err)
			return
		}
		if err := s.catalog.EditPlatform(c, uint(id64), in.Name); err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, gin.H{"message": "platform updated"})
	})

	r.DELETE("/platforms/:id", func(c *gin.Context) {
		id64, _ := strconv.ParseUint(c.Param("id"), 10, 64)
		if err := s.catalog.DeletePlatform(c, uint(id64)); err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, gin.H{"message": "platform deleted"})
	})
}
