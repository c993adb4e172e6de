package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	applog "ngo-backoffice/internal/log"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderRequestAt      = "X-Request-At"

	// How long the in-progress marker lives if the handler never finishes.
	provisionalLockTTL = 60 * time.Second
	// Allowed client/server clock skew for X-Request-At.
	maxClockSkew = 10 * time.Minute
)

type idempEntry struct {
	InProgress  bool      `json:"in_progress"`
	Code        int       `json:"code"`
	ContentType string    `json:"content_type,omitempty"`
	Body        []byte    `json:"body"`
	BodySHA256  string    `json:"body_sha256"`
	Key         string    `json:"key"`
	RequestAtMS int64     `json:"request_at_ms,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type respRecorder struct {
	w    http.ResponseWriter
	buf  *bytes.Buffer
	code int
}

func (r *respRecorder) Header() http.Header { return r.w.Header() }
func (r *respRecorder) Write(b []byte) (int, error) {
	if r.buf != nil {
		r.buf.Write(b)
	}
	return r.w.Write(b)
}
func (r *respRecorder) WriteHeader(statusCode int) { r.code = statusCode; r.w.WriteHeader(statusCode) }

// Idempotency replays the stored response of a mutating request that repeats
// its Idempotency-Key. Requests without the header pass through untouched.
// The key is scoped by method, route and caller, so it must run after the
// auth middleware. X-Request-At, when sent, must be epoch (s/ms) or RFC3339
// with a zone and within maxClockSkew of the server clock.
func Idempotency(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) echo.MiddlewareFunc {
	logger = applog.Component(logger, applog.ComponentCache)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			method := req.Method

			switch method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			idemKey := strings.TrimSpace(req.Header.Get(HeaderIdempotencyKey))
			if idemKey == "" {
				return next(c)
			}
			if !validKey(idemKey) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid Idempotency-Key format, expected uuid"})
			}
			idemKey = strings.ToLower(idemKey)

			var reqAt time.Time
			if raw := req.Header.Get(HeaderRequestAt); raw != "" {
				t, err := parseRequestAt(raw)
				if err != nil {
					return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
				}
				now := nowUTC()
				if t.Before(now.Add(-maxClockSkew)) || t.After(now.Add(maxClockSkew)) {
					return c.JSON(http.StatusBadRequest, map[string]string{"error": "X-Request-At too skewed"})
				}
				reqAt = t
			}

			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
			}
			req.Body = io.NopCloser(bytes.NewBuffer(body))
			bhash := bodyHash(body)

			key := buildKey(method, c.Path(), callerID(c), idemKey)
			ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
			defer cancel()

			entry := idempEntry{
				InProgress: true,
				BodySHA256: bhash,
				Key:        idemKey,
				CreatedAt:  nowUTC(),
			}
			if !reqAt.IsZero() {
				entry.RequestAtMS = reqAt.UnixMilli()
			}
			ok, err := provisionalSet(ctx, rdb, key, entry)
			if err != nil {
				logger.ErrorContext(ctx, "idempotency store unavailable", applog.Err(err))
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "idempotency store unavailable"})
			}
			if !ok {
				cur, errLoad := loadEntry(ctx, rdb, key)
				if errLoad != nil {
					logger.WarnContext(ctx, "idempotency entry load failed", "key", key, applog.Err(errLoad))
				}
				if cur.BodySHA256 != "" && cur.BodySHA256 != bhash {
					return c.JSON(http.StatusConflict, map[string]string{"error": "Idempotency-Key reused with different body"})
				}
				if !cur.InProgress && cur.Code != 0 {
					ct := cur.ContentType
					if ct == "" {
						ct = echo.MIMEApplicationJSON
					}
					c.Response().Header().Set("Idempotent-Replayed", "true")
					return c.Blob(cur.Code, ct, cur.Body)
				}
				return c.JSON(http.StatusConflict, map[string]string{"error": "request is already in progress"})
			}

			rec := &respRecorder{w: c.Response().Writer, buf: &bytes.Buffer{}, code: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}

			// server errors are not cached so the client can retry
			if rec.code >= http.StatusInternalServerError {
				if err := rdb.Del(context.Background(), key).Err(); err != nil {
					logger.Warn("idempotency entry release failed", "key", key, applog.Err(err))
				}
				return nil
			}
			final := entry
			final.InProgress = false
			final.Code = rec.code
			final.ContentType = rec.Header().Get(echo.HeaderContentType)
			final.Body = rec.buf.Bytes()
			final.CreatedAt = nowUTC()
			if err := saveFinal(context.Background(), rdb, key, final, ttl); err != nil {
				logger.Warn("idempotency entry save failed", "key", key, applog.Err(err))
			}
			return nil
		}
	}
}
