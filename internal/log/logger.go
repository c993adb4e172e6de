// Package log builds the process-wide slog logger. Every subsystem logs with
// a component attribute so output can be filtered per layer.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldError     = "error"
	FieldUserID    = "user_id"
	FieldProjectID = "project_id"
	FieldBudgetID  = "budget_id"
	FieldExpenseID = "expense_id"
)

const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentStorage   = "storage"
	ComponentCache     = "cache"
	ComponentReconcile = "reconcile"
	ComponentExpense   = "expense"
	ComponentAuth      = "auth"
)

type Config struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	Output io.Writer
}

// ParseLevel falls back to info for anything it does not recognise.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}
	return slog.New(h)
}

// Component returns a child of l tagged with the given component. A nil l
// uses slog.Default().
func Component(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	return l.With(FieldComponent, name)
}

// Err is a shorthand attribute for a failed operation.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}
