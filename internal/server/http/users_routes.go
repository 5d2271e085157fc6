package httpserver

import (
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"
)

func (s *Server) addUserRoutes(r *gin.Engine) {
	r.POST("/users/register", func(c *gin.Context) {
		var in struct {
			Name     string `json:"name" binding:"required,min=4"`
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			s.failBind(c, err)
			return
		}
		tok, err := s.auth.Register(c, in.Name, in.Email, in.Password)
		if err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusCreated, gin.H{"access_token": tok, "token_type": "bearer"})
	})

	r.POST("/users/login", func(c *gin.Context) {
		var in struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			s.failBind(c, err)
			return
		}
		tok, err := s.auth.Login(c, in.Email, in.Password)
		if err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, gin.H{"access_token": tok, "token_type": "bearer"})
	})

	r.GET("/users", func(c *gin.Context) {
		items, err := s.users.List(c)
		if err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, items)
	})

	r.GET("/users/me", s.requireUser(), func(c *gin.Context) {
		u, err := s.users.Get(c, c.GetUint("userID"))
		if err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, u)
	})

	r.GET("/users/:id", func(c *gin.Context) {
		id64, _ := strconv.ParseUint(c.Param("id"), 10, 64)
		u, err := s.users.Get(c, uint(id64))
		if err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, u)
	})

	r.GET("/users/:id/library", func(c *gin.Context) {
		id64, _ := strconv.ParseUint(c.Param("id"), 10, 64)
		rows, err := s.users.Library(c, uint(id64))
		if err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, rows)
	})

	r.PUT("/users/:id", func(c *gin.Context) {
		id64, _ := strconv.ParseUint(c.Param("id"), 10, 64)
		var in struct {
			Email string `json:"email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			s.failBind(c, err)
			return
		}
		if err := s.users.EditEmail(c, uint(id64), in.Email); err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, gin.H{"message": "user updated"})
	})

	r.DELETE("/users/:id", func(c *gin.Context) {
		id64, _ := strconv.ParseUint(c.Param("id"), 10, 64)
		if err := s.users.Delete(c, uint(id64)); err != nil {
			s.fail(c, err)
			return
		}
		s.JSON(c, http.StatusOK, gin.H{"message": "user deleted"})
	})
}
