package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"studyhive/internal/realtime"
	"studyhive/internal/router"
	"studyhive/internal/testutil"

	"github.com/gin-gonic/gin"
)

// newTestServer spins up the full HTTP surface against a fresh
// in-memory database.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	testutil.SetupDB(t)
	gin.SetMode(gin.TestMode)

	r := gin.New()
	router.RegisterRoutes(r, realtime.NewHub())

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// do sends a JSON request and returns the status code and raw body.
func do(t *testing.T, srv *httptest.Server, method, path, token string, body interface{}) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, raw
}

func decodeObj(t *testing.T, raw []byte) map[string]interface{} {
	t.Helper()
	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		t.Fatalf("decode object %q: %v", raw, err)
	}
	return obj
}

func decodeList(t *testing.T, raw []byte) []map[string]interface{} {
	t.Helper()
	var list []map[string]interface{}
	if err := json.Unmarshal(raw, &list); err != nil {
		t.Fatalf("decode list %q: %v", raw, err)
	}
	return list
}

func objID(t *testing.T, obj map[string]interface{}) uint {
	t.Helper()
	id, ok := obj["id"].(float64)
	if !ok {
		t.Fatalf("no numeric id in %#v", obj)
	}
	return uint(id)
}

// registerUser creates an account and returns its token and id.
func registerUser(t *testing.T, srv *httptest.Server, username string) (string, uint) {
	t.Helper()
	status, raw := do(t, srv, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     username,
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	if status != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", username, status, raw)
	}
	obj := decodeObj(t, raw)
	token, _ := obj["token"].(string)
	if token == "" {
		t.Fatalf("register %s: no token in %s", username, raw)
	}
	user, _ := obj["user"].(map[string]interface{})
	return token, objID(t, user)
}

func createGroup(t *testing.T, srv *httptest.Server, token, name string) uint {
	t.Helper()
	status, raw := do(t, srv, http.MethodPost, "/api/groups", token, map[string]string{
		"name": name,
	})
	if status != http.StatusCreated {
		t.Fatalf("create group: status %d, body %s", status, raw)
	}
	return objID(t, decodeObj(t, raw))
}

func joinGroup(t *testing.T, srv *httptest.Server, token string, groupID uint) {
	t.Helper()
	status, raw := do(t, srv, http.MethodPost, fmt.Sprintf("/api/groups/%d/join", groupID), token, nil)
	if status != http.StatusOK {
		t.Fatalf("join group: status %d, body %s", status, raw)
	}
}
