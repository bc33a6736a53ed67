package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"

	"todoapi/internal/config"
	"todoapi/internal/http/handlers"
	"todoapi/internal/observability"
	"todoapi/internal/repos"
	"todoapi/internal/security"
)

const testSecret = "test-secret"

type testApp struct {
	app     *fiber.App
	db      *sqlx.DB
	deps    *handlers.Deps
	metrics *observability.Metrics
}

func testConfig() config.Config {
	return config.Config{
		DBDSN:        ":memory:",
		JWTSecret:    testSecret,
		TokenTTL:     5 * time.Minute,
		BcryptCost:   4,
		CookieDomain: "localhost",
		CORSOrigins:  "http://localhost:3000",
	}
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	cfg := testConfig()
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	m := observability.NewMetrics(prometheus.NewRegistry())
	deps := handlers.NewDeps(db, cfg, m)
	return &testApp{app: handlers.NewApp(deps), db: db, deps: deps, metrics: m}
}

type reply struct {
	Status int
	Body   map[string]any
	Resp   *http.Response
}

func (r reply) message() string {
	s, _ := r.Body["message"].(string)
	return s
}

func (r reply) result() map[string]any {
	m, _ := r.Body["result"].(map[string]any)
	return m
}

type reqOpt func(*http.Request)

func withHeaderToken(tok string) reqOpt {
	return func(r *http.Request) { r.Header.Set("Authorization", tok) }
}

func withContentType(ct string) reqOpt {
	return func(r *http.Request) { r.Header.Set("Content-Type", ct) }
}

func withCookieToken(tok string) reqOpt {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "token", Value: tok}) }
}

func (ta *testApp) do(t *testing.T, method, path string, body any, opts ...reqOpt) reply {
	t.Helper()
	var rd io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			rd = strings.NewReader(b)
		default:
			raw, err := json.Marshal(b)
			if err != nil {
				t.Fatalf("marshal body: %v", err)
			}
			rd = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, o := range opts {
		o(req)
	}
	resp, err := ta.app.Test(req, 5000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, _ := io.ReadAll(resp.Body)
	out := reply{Status: resp.StatusCode, Resp: resp}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out.Body); err != nil {
			t.Fatalf("%s %s: non-JSON body %q", method, path, raw)
		}
	}
	return out
}

func (ta *testApp) register(t *testing.T, email, password string) string {
	t.Helper()
	r := ta.do(t, "POST", "/auth/register", map[string]any{"email": email, "password": password})
	if r.Status != http.StatusOK {
		t.Fatalf("register %s: %d %v", email, r.Status, r.Body)
	}
	return r.result()["id"].(string)
}

func (ta *testApp) login(t *testing.T, email, password string) string {
	t.Helper()
	r := ta.do(t, "POST", "/auth/login", map[string]any{"email": email, "password": password})
	if r.Status != http.StatusOK {
		t.Fatalf("login %s: %d %v", email, r.Status, r.Body)
	}
	return r.Body["token"].(string)
}

// admin seeds an admin account and returns its token.
func (ta *testApp) admin(t *testing.T) string {
	t.Helper()
	hash, err := security.NewHasher(4).Hash("rootpass")
	if err != nil {
		t.Fatal(err)
	}
	if err := repos.SeedAdmin(ta.db, "admin@x.com", hash); err != nil {
		t.Fatal(err)
	}
	return ta.login(t, "admin@x.com", "rootpass")
}

func (ta *testApp) createTodo(t *testing.T, token string, body map[string]any) map[string]any {
	t.Helper()
	r := ta.do(t, "POST", "/todos", body, withHeaderToken(token))
	if r.Status != http.StatusOK {
		t.Fatalf("create todo: %d %v", r.Status, r.Body)
	}
	return r.result()
}

func cookieNamed(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
