package httpserver

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	gin "github.com/gin-gonic/gin"

	"github.com/dkovalev/gamestore/internal/auth/token"
	authsvc "github.com/dkovalev/gamestore/internal/service/auth"
	catalogsvc "github.com/dkovalev/gamestore/internal/service/catalog"
	orderssvc "github.com/dkovalev/gamestore/internal/service/orders"
	reviewssvc "github.com/dkovalev/gamestore/internal/service/reviews"
	userssvc "github.com/dkovalev/gamestore/internal/service/users"
)

// Server carries the domain services behind the REST surface. All request
// handling is stateless; the services own validation and persistence.
type Server struct {
	auth    *authsvc.Service
	users   *userssvc.Service
	catalog *catalogsvc.Service
	orders  *orderssvc.Service
	reviews *reviewssvc.Service
	tokens  *token.Manager

	startedAt time.Time
	httpSrv   *http.Server
}

func NewServer(auth *authsvc.Service, users *userssvc.Service, catalog *catalogsvc.Service, orders *orderssvc.Service, reviews *reviewssvc.Service, tokens *token.Manager) *Server {
	return &Server{
		auth:      auth,
		users:     users,
		catalog:   catalog,
		orders:    orders,
		reviews:   reviews,
		tokens:    tokens,
		startedAt: time.Now(),
	}
}

// Engine builds the Gin engine with all routes mounted.
func (s *Server) Engine() *gin.Engine {
	r := gin.New()
	r.Use(s.ginReqID(), s.ginLogger(), gin.Recovery())
	r.GET("/healthz", func(c *gin.Context) {
		s.JSON(c, http.StatusOK, gin.H{"status": "ok", "uptime": time.Since(s.startedAt).String()})
	})
	s.addUserRoutes(r)
	s.addGameRoutes(r)
	s.addGenreRoutes(r)
	s.addPlatformRoutes(r)
	s.addOrderRoutes(r)
	s.addReviewRoutes(r)
	return r
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run(addr string) error {
	s.httpSrv = &http.Server{Addr: addr, Handler: s.Engine()}
	slog.Info("http listening", "addr", addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv != nil {
		return s.httpSrv.Shutdown(ctx)
	}
	return nil
}

// JSON is the unified JSON responder; prefer this over c.JSON so the
// json-iterator settings apply everywhere.
func (s *Server) JSON(c *gin.Context, code int, v any) {
	c.Render(code, jsonRender{Data: v})
}

// ginReqID injects/propagates an X-Request-ID for traceability.
func (s *Server) ginReqID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get("X-Request-ID")
		if strings.TrimSpace(rid) == "" {
			b := make([]byte, 16)
			if _, err := rand.Read(b); err == nil {
				rid = hex.EncodeToString(b)
			} else {
				rid = fmt.Sprintf("%d", time.Now().UnixNano())
			}
		}
		c.Set("reqid", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func (s *Server) ginLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		dur := time.Since(start)
		lvl := slog.LevelInfo
		st := c.Writer.Status()
		if st >= 500 {
			lvl = slog.LevelError
		} else if st >= 400 {
			lvl = slog.LevelWarn
		}
		rid, _ := c.Get("reqid")
		slog.Log(c, lvl, "http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", st,
			"bytes", c.Writer.Size(),
			"remote", c.ClientIP(),
			"reqid", rid,
			"dur_ms", dur.Milliseconds(),
		)
	}
}

// requireUser guards routes that act on behalf of the bearer of a token.
// The user id lands in the context under "userID".
func (s *Server) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			s.respondError(c, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			c.Abort()
			return
		}
		uid, err := s.tokens.Verify(strings.TrimPrefix(authz, "Bearer "))
		if err != nil {
			s.respondError(c, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
			c.Abort()
			return
		}
		c.Set("userID", uid)
		c.Next()
	}
}
