package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"ngo-backoffice/internal/domain/access"
	"ngo-backoffice/internal/domain/user"
)

const testKey = "6f1c0c1e-3c57-4b0a-9d7e-2a3f5f0b9c11"

// setupEcho mounts the middleware behind a fake auth step that signs in
// user 7 unless X-Test-Anon is set.
func setupEcho(rdb *redis.Client, ttl time.Duration, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("X-Test-Anon") == "" {
				SetPrincipal(c, access.Principal{UserID: 7, Role: user.RoleAgent})
			}
			return next(c)
		}
	})
	e.Use(Idempotency(rdb, ttl, nil))
	e.POST("/api/expenses/:projectId/:budgetId", handler)
	e.GET("/api/expenses/:projectId/:budgetId", handler)
	return e
}

func mkJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, e *echo.Echo, method, path string, body io.Reader, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, rdb
}

// countingHandler answers 201 with a body that changes on every call, so a
// replay is distinguishable from a second execution.
func countingHandler(calls *int32) echo.HandlerFunc {
	return func(c echo.Context) error {
		n := atomic.AddInt32(calls, 1)
		return c.JSON(http.StatusCreated, map[string]any{"call": n})
	}
}

func Test_BypassOnGET(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, 30*time.Second, countingHandler(&calls))

	rec := doReq(t, e, http.MethodGet, "/api/expenses/1/2", nil, map[string]string{HeaderIdempotencyKey: testKey})
	if rec.Code != http.StatusCreated || len(mr.Keys()) != 0 {
		t.Fatalf("GET should bypass, code=%d keys=%v", rec.Code, mr.Keys())
	}
}

func Test_NoKey_PassesThrough(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, 30*time.Second, countingHandler(&calls))

	for i := 0; i < 2; i++ {
		rec := doReq(t, e, http.MethodPost, "/api/expenses/1/2", mkJSONBody(t, map[string]int{"amount": 30}), nil)
		if rec.Code != http.StatusCreated {
			t.Fatalf("want 201, got %d", rec.Code)
		}
	}
	if calls != 2 || len(mr.Keys()) != 0 {
		t.Fatalf("calls=%d keys=%v", calls, mr.Keys())
	}
}

func Test_ValidationFailures(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, 30*time.Second, countingHandler(&calls))

	cases := []struct {
		name string
		hdr  map[string]string
	}{
		{"key not a uuid", map[string]string{HeaderIdempotencyKey: "NOT-VALID"}},
		{"request-at garbage", map[string]string{HeaderIdempotencyKey: testKey, HeaderRequestAt: "not-a-time"}},
		{"request-at naive local time", map[string]string{HeaderIdempotencyKey: testKey, HeaderRequestAt: "2025-09-05T10:00:00"}},
		{"request-at too old", map[string]string{
			HeaderIdempotencyKey: testKey,
			HeaderRequestAt:      time.Now().UTC().Add(-maxClockSkew - time.Minute).Format(time.RFC3339),
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doReq(t, e, http.MethodPost, "/api/expenses/1/2", mkJSONBody(t, map[string]int{"amount": 1}), tc.hdr)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d", rec.Code)
			}
		})
	}
	if calls != 0 {
		t.Fatalf("handler ran %d times on invalid headers", calls)
	}
}

func Test_HappyPath_Then_Replay(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, 2*time.Minute, countingHandler(&calls))

	h := map[string]string{
		HeaderIdempotencyKey: testKey,
		HeaderRequestAt:      time.Now().UTC().Format(time.RFC3339),
	}
	rec1 := doReq(t, e, http.MethodPost, "/api/expenses/1/2", mkJSONBody(t, map[string]any{"amount": "30.00"}), h)
	if rec1.Code != http.StatusCreated {
		t.Fatalf("first request => want 201, got %d, body: %s", rec1.Code, rec1.Body.String())
	}
	rec2 := doReq(t, e, http.MethodPost, "/api/expenses/1/2", mkJSONBody(t, map[string]any{"amount": "30.00"}), h)
	if rec2.Code != http.StatusCreated {
		t.Fatalf("replay => want 201, got %d", rec2.Code)
	}
	if rec1.Body.String() != rec2.Body.String() {
		t.Fatalf("replay body mismatch: %q vs %q", rec1.Body.String(), rec2.Body.String())
	}
	if rec2.Header().Get("Idempotent-Replayed") != "true" {
		t.Fatalf("replay header missing")
	}
	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
}

func Test_KeyScopedByCaller(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, 2*time.Minute, countingHandler(&calls))

	body := map[string]any{"amount": "30.00"}
	doReq(t, e, http.MethodPost, "/api/expenses/1/2", mkJSONBody(t, body), map[string]string{HeaderIdempotencyKey: testKey})
	doReq(t, e, http.MethodPost, "/api/expenses/1/2", mkJSONBody(t, body), map[string]string{HeaderIdempotencyKey: testKey, "X-Test-Anon": "1"})
	if calls != 2 {
		t.Fatalf("same key from another caller must not replay, calls=%d", calls)
	}
}

func Test_AnonymousKeyScopedByClientIP(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, 2*time.Minute, countingHandler(&calls))

	body := map[string]any{"amount": "30.00"}
	for _, ip := range []string{"203.0.113.10", "203.0.113.11", "203.0.113.10"} {
		doReq(t, e, http.MethodPost, "/api/expenses/1/2", mkJSONBody(t, body), map[string]string{
			HeaderIdempotencyKey: testKey, "X-Test-Anon": "1", echo.HeaderXRealIP: ip,
		})
	}
	if calls != 2 {
		t.Fatalf("anonymous clients must not share keys, calls=%d", calls)
	}
}

func Test_Conflict_When_InProgress(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, 2*time.Minute, countingHandler(&calls))

	body := []byte(`{"x":1}`)
	key := buildKey(http.MethodPost, "/api/expenses/:projectId/:budgetId", "u7", testKey)
	entry := idempEntry{InProgress: true, BodySHA256: bodyHash(body), Key: testKey, CreatedAt: nowUTC()}
	if ok, err := provisionalSet(context.Background(), rdb, key, entry); err != nil || !ok {
		t.Fatalf("seed provisional failed, ok=%v err=%v", ok, err)
	}

	rec := doReq(t, e, http.MethodPost, "/api/expenses/1/2", bytes.NewReader(body), map[string]string{HeaderIdempotencyKey: testKey})
	if rec.Code != http.StatusConflict {
		t.Fatalf("in-progress => want 409, got %d body=%s", rec.Code, rec.Body.String())
	}
	if calls != 0 {
		t.Fatalf("handler must not run while in progress")
	}
}

func Test_Conflict_When_SameKey_DifferentBody(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, 2*time.Minute, countingHandler(&calls))

	h := map[string]string{HeaderIdempotencyKey: testKey}
	doReq(t, e, http.MethodPost, "/api/expenses/1/2", bytes.NewReader([]byte(`{"x":1}`)), h)
	rec := doReq(t, e, http.MethodPost, "/api/expenses/1/2", bytes.NewReader([]byte(`{"x":2}`)), h)
	if rec.Code != http.StatusConflict {
		t.Fatalf("different body same key => want 409, got %d", rec.Code)
	}
}

func Test_ServerError_NotCached(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, 2*time.Minute, func(c echo.Context) error {
		if atomic.AddInt32(&calls, 1) == 1 {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "boom"})
		}
		return c.JSON(http.StatusCreated, map[string]bool{"ok": true})
	})

	h := map[string]string{HeaderIdempotencyKey: testKey}
	if rec := doReq(t, e, http.MethodPost, "/api/expenses/1/2", bytes.NewReader([]byte(`{}`)), h); rec.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", rec.Code)
	}
	if rec := doReq(t, e, http.MethodPost, "/api/expenses/1/2", bytes.NewReader([]byte(`{}`)), h); rec.Code != http.StatusCreated {
		t.Fatalf("retry after 500 => want 201, got %d", rec.Code)
	}
}

func Test_StoreUnavailable_Returns503(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	var calls int32
	e := setupEcho(rdb, time.Minute, countingHandler(&calls))

	rec := doReq(t, e, http.MethodPost, "/api/expenses/1/2", bytes.NewReader([]byte(`{}`)), map[string]string{HeaderIdempotencyKey: testKey})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("store unavailable => want 503, got %d", rec.Code)
	}
}
