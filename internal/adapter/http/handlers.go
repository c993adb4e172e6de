package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"ngo-backoffice/internal/adapter/middleware"
	"ngo-backoffice/internal/domain/access"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// principal returns the authenticated caller. Without one the zero value has
// no role and fails every permission check.
func principal(c echo.Context) access.Principal {
	p, _ := middleware.PrincipalFrom(c)
	return p
}

const dateLayout = "2006-01-02"

// parseDate reads an optional YYYY-MM-DD value already checked by the
// validator.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

func dateOrZero(s string) time.Time {
	if t := parseDate(s); t != nil {
		return *t
	}
	return time.Time{}
}
