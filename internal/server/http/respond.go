package httpserver

import (
	"fmt"
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"github.com/dkovalev/gamestore/internal/fault"
)

type errBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// statusOf maps a domain failure to an HTTP status and a stable code string.
// Conflicts and business-rule rejections surface as 400 rather than 409 to
// keep the client contract simple; malformed field shapes are 422.
func statusOf(err error) (int, string) {
	switch fault.KindOf(err) {
	case fault.KindNotFound:
		return http.StatusNotFound, "not_found"
	case fault.KindConflict:
		return http.StatusBadRequest, "conflict"
	case fault.KindValidation:
		return http.StatusBadRequest, "bad_request"
	case fault.KindForbidden:
		return http.StatusBadRequest, "forbidden"
	case fault.KindUnauthorized:
		return http.StatusBadRequest, "unauthorized"
	case fault.KindMalformed:
		return http.StatusUnprocessableEntity, "unprocessable"
	}
	return http.StatusInternalServerError, "internal_error"
}

// respondError sends a unified JSON error body.
func (s *Server) respondError(c *gin.Context, status int, code, message string) {
	rid, _ := c.Get("reqid")
	s.JSON(c, status, errBody{Code: code, Message: message, RequestID: fmt.Sprint(rid)})
}

// fail translates err into the response. Unexpected errors are logged and
// masked; domain failures pass their message through verbatim.
func (s *Server) fail(c *gin.Context, err error) {
	status, code := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("http handler", "error", err, "method", c.Request.Method, "path", c.Request.URL.Path)
		msg = "internal error"
	}
	s.respondError(c, status, code, msg)
}

// failBind reports a request body that did not survive binding validation.
func (s *Server) failBind(c *gin.Context, err error) {
	s.respondError(c, http.StatusUnprocessableEntity, "unprocessable", fmt.Sprintf("invalid request body: %v", err))
}
