package httpserver

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-service/internal/auth"
	"inventory-service/pkg/log"
	"inventory-service/pkg/scope"
	pkgSqlite "inventory-service/pkg/sqlite"
)

const testSecret = "test-secret"

var testCreds = auth.Credentials{Username: "admin", Password: "password"}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := pkgSqlite.Open(pkgSqlite.Config{Path: filepath.Join(t.TempDir(), "store.db"), BusyTimeout: 1})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestServer(t *testing.T, apiVersion int, mutate ...func(*Config)) (*HTTPServer, *sql.DB) {
	t.Helper()
	db := openDB(t)

	manager, err := scope.New(testSecret, time.Hour)
	require.NoError(t, err)

	cfg := Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        "test",
		Environment: "test",
		APIVersion:  apiVersion,
		DB:          db,
		JWTManager:  manager,
		Credentials: testCreds,
	}
	for _, m := range mutate {
		m(&cfg)
	}

	srv, err := New(log.NewNop(), cfg)
	require.NoError(t, err)
	return srv, db
}

type call struct {
	method string
	path   string
	body   string
	token  string
}

func do(t *testing.T, srv *HTTPServer, c call) (int, []byte) {
	t.Helper()
	var body *bytes.Buffer
	if c.body != "" {
		body = bytes.NewBufferString(c.body)
	} else {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(c.method, c.path, body)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)
	return w.Code, w.Body.Bytes()
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

const widgetJSON = `{"id":1,"name":"Widget","price":9.99,"quantity":5,"release_year":2020}`

func TestNew_Validation(t *testing.T) {
	db := openDB(t)

	_, err := New(log.NewNop(), Config{Logger: log.NewNop(), Port: 8080, Mode: "test", DB: db, APIVersion: 3})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{Logger: log.NewNop(), Port: 8080, Mode: "test", DB: db, APIVersion: APIVersionSecure})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{Logger: log.NewNop(), Port: 8080, Mode: "test", APIVersion: APIVersionOpen})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv, db := newTestServer(t, APIVersionOpen)

	for _, path := range []string{"/health", "/live", "/ready"} {
		code, _ := do(t, srv, call{method: http.MethodGet, path: path})
		assert.Equal(t, http.StatusOK, code, path)
	}

	require.NoError(t, db.Close())
	code, body := do(t, srv, call{method: http.MethodGet, path: "/ready"})
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "database unavailable", decode[map[string]string](t, body)["error"])
}

func TestOpenAPI_CRUD(t *testing.T) {
	srv, _ := newTestServer(t, APIVersionOpen)

	code, body := do(t, srv, call{method: http.MethodGet, path: "/items"})
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(body))

	code, body = do(t, srv, call{method: http.MethodPost, path: "/items", body: widgetJSON})
	require.Equal(t, http.StatusCreated, code)
	assert.JSONEq(t, `{"status":"added"}`, string(body))

	code, body = do(t, srv, call{method: http.MethodPost, path: "/items", body: `{"id":1,"name":"Other","price":1,"quantity":1,"release_year":2001}`})
	assert.Equal(t, http.StatusConflict, code)
	assert.JSONEq(t, `{"error":"item exists"}`, string(body))

	code, body = do(t, srv, call{method: http.MethodGet, path: "/items"})
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[`+widgetJSON+`]`, string(body))

	code, body = do(t, srv, call{method: http.MethodPut, path: "/items/1", body: `{"name":"Gizmo","price":1.5,"quantity":0,"release_year":2021}`})
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"updated"}`, string(body))

	code, body = do(t, srv, call{method: http.MethodGet, path: "/items"})
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[{"id":1,"name":"Gizmo","price":1.5,"quantity":0,"release_year":2021}]`, string(body))

	code, body = do(t, srv, call{method: http.MethodDelete, path: "/items/1"})
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"deleted"}`, string(body))

	code, body = do(t, srv, call{method: http.MethodDelete, path: "/items/1"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.JSONEq(t, `{"error":"not found"}`, string(body))
}

func TestOpenAPI_Errors(t *testing.T) {
	srv, _ := newTestServer(t, APIVersionOpen)

	tests := []struct {
		name     string
		call     call
		wantCode int
		wantErr  string
	}{
		{"Missing fields", call{method: http.MethodPost, path: "/items", body: `{"id":2,"name":"x"}`}, http.StatusBadRequest, "missing fields"},
		{"Empty body", call{method: http.MethodPost, path: "/items"}, http.StatusBadRequest, "missing fields"},
		{"Malformed JSON", call{method: http.MethodPost, path: "/items", body: `{"id":`}, http.StatusBadRequest, ""},
		{"Wrong type", call{method: http.MethodPost, path: "/items", body: `{"id":"one","name":"x","price":1,"quantity":1,"release_year":2000}`}, http.StatusBadRequest, ""},
		{"Negative price", call{method: http.MethodPost, path: "/items", body: `{"id":2,"name":"x","price":-1,"quantity":1,"release_year":2000}`}, http.StatusBadRequest, ""},
		{"Year too early", call{method: http.MethodPost, path: "/items", body: `{"id":2,"name":"x","price":1,"quantity":1,"release_year":1800}`}, http.StatusBadRequest, ""},
		{"Update absent", call{method: http.MethodPut, path: "/items/99", body: `{"name":"x","price":1,"quantity":1,"release_year":2000}`}, http.StatusNotFound, "not found"},
		{"Update missing fields", call{method: http.MethodPut, path: "/items/99", body: `{"name":"x"}`}, http.StatusBadRequest, "missing fields"},
		{"Non-numeric id", call{method: http.MethodPut, path: "/items/abc", body: `{"name":"x","price":1,"quantity":1,"release_year":2000}`}, http.StatusBadRequest, "invalid id"},
		{"Delete non-numeric id", call{method: http.MethodDelete, path: "/items/abc"}, http.StatusBadRequest, "invalid id"},
		{"Delete absent", call{method: http.MethodDelete, path: "/items/99"}, http.StatusNotFound, "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, srv, tt.call)
			assert.Equal(t, tt.wantCode, code, string(body))
			resp := decode[map[string]string](t, body)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, resp["error"])
			} else {
				assert.NotEmpty(t, resp["error"])
			}
		})
	}
}

func login(t *testing.T, srv *HTTPServer) string {
	t.Helper()
	code, body := do(t, srv, call{method: http.MethodPost, path: "/login", body: `{"username":"admin","password":"password"}`})
	require.Equal(t, http.StatusOK, code, string(body))
	token := decode[map[string]any](t, body)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestSecureAPI_Login(t *testing.T) {
	srv, _ := newTestServer(t, APIVersionSecure)

	login(t, srv)

	code, body := do(t, srv, call{method: http.MethodPost, path: "/login", body: `{"username":"admin","password":"wrong"}`})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.JSONEq(t, `{"error":"invalid credentials"}`, string(body))

	code, _ = do(t, srv, call{method: http.MethodPost, path: "/login", body: `{}`})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestSecureAPI_LoginRateLimit(t *testing.T) {
	srv, _ := newTestServer(t, APIVersionSecure, func(c *Config) { c.LoginRateLimitPerMin = 1 })

	login(t, srv)
	code, _ := do(t, srv, call{method: http.MethodPost, path: "/login", body: `{"username":"admin","password":"password"}`})
	assert.Equal(t, http.StatusTooManyRequests, code)
}

func TestSecureAPI_RequiresToken(t *testing.T) {
	srv, _ := newTestServer(t, APIVersionSecure)

	foreign, err := scope.New("another-secret", time.Hour)
	require.NoError(t, err)
	foreignTok, err := foreign.CreateToken("admin")
	require.NoError(t, err)

	stale, err := scope.New(testSecret, time.Hour, scope.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }))
	require.NoError(t, err)
	staleTok, err := stale.CreateToken("admin")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"No header", ""},
		{"Wrong scheme", "Basic YWRtaW46cGFzc3dvcmQ="},
		{"Malformed token", "Bearer not-a-jwt"},
		{"Wrong signature", "Bearer " + foreignTok.Value},
		{"Expired", "Bearer " + staleTok.Value},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range []call{
				{method: http.MethodGet, path: "/items"},
				{method: http.MethodPost, path: "/items", body: widgetJSON},
				{method: http.MethodPut, path: "/items/1", body: widgetJSON},
				{method: http.MethodDelete, path: "/items/1"},
			} {
				req := httptest.NewRequest(c.method, c.path, bytes.NewBufferString(c.body))
				if tt.header != "" {
					req.Header.Set("Authorization", tt.header)
				}
				w := httptest.NewRecorder()
				srv.gin.ServeHTTP(w, req)
				assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", c.method, c.path)
			}
		})
	}
}

type pageResp struct {
	Items []map[string]any `json:"items"`
	Page  int              `json:"page"`
	Size  int              `json:"size"`
	Total int              `json:"total"`
}

func TestSecureAPI_Pagination(t *testing.T) {
	srv, _ := newTestServer(t, APIVersionSecure, func(c *Config) { c.Pagination.MaxPageSize = 50 })
	token := login(t, srv)

	code, _ := do(t, srv, call{method: http.MethodPost, path: "/items", body: widgetJSON, token: token})
	require.Equal(t, http.StatusCreated, code)
	code, _ = do(t, srv, call{method: http.MethodPost, path: "/items", body: widgetJSON, token: token})
	require.Equal(t, http.StatusConflict, code)
	code, _ = do(t, srv, call{method: http.MethodPost, path: "/items", body: `{"id":2,"name":"Gadget","price":3.5,"quantity":2,"release_year":2001}`, token: token})
	require.Equal(t, http.StatusCreated, code)

	code, body := do(t, srv, call{method: http.MethodGet, path: "/items?page=2&size=1", token: token})
	require.Equal(t, http.StatusOK, code)
	page := decode[pageResp](t, body)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 1, page.Size)

	code, body = do(t, srv, call{method: http.MethodGet, path: "/items", token: token})
	require.Equal(t, http.StatusOK, code)
	page = decode[pageResp](t, body)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Size)

	code, body = do(t, srv, call{method: http.MethodGet, path: "/items?q=Gad", token: token})
	require.Equal(t, http.StatusOK, code)
	page = decode[pageResp](t, body)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Gadget", page.Items[0]["name"])
	assert.Equal(t, 1, page.Total)

	code, body = do(t, srv, call{method: http.MethodGet, path: "/items?size=1000", token: token})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 50, decode[pageResp](t, body).Size)

	for _, q := range []string{"page=abc", "size=0", "page=-1", "page=4611686018427387904&size=4"} {
		code, _ = do(t, srv, call{method: http.MethodGet, path: "/items?" + q, token: token})
		assert.Equal(t, http.StatusBadRequest, code, q)
	}
}
