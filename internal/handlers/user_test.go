package handlers_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
)

func TestUpdateProfile(t *testing.T) {
	srv := newTestServer(t)
	token, _ := registerUser(t, srv, "alice")

	status, raw := do(t, srv, http.MethodPut, "/api/users/profile", token, map[string]string{
		"name": "Alice Zhang",
	})
	if status != http.StatusOK {
		t.Fatalf("update profile: status %d, body %s", status, raw)
	}
	if decodeObj(t, raw)["name"] != "Alice Zhang" {
		t.Fatalf("name not updated: %s", raw)
	}

	// Change sticks.
	status, raw = do(t, srv, http.MethodGet, "/api/auth/me", token, nil)
	if status != http.StatusOK {
		t.Fatalf("me: status %d", status)
	}
	if decodeObj(t, raw)["name"] != "Alice Zhang" {
		t.Fatalf("name not persisted: %s", raw)
	}

	status, _ = do(t, srv, http.MethodPut, "/api/users/profile", token, map[string]string{})
	if status != http.StatusBadRequest {
		t.Fatalf("empty name: status %d, want 400", status)
	}
}

func TestUploadProfilePicture(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	srv := newTestServer(t)
	token, _ := registerUser(t, srv, "alice")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("profilePicture", "me.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	io.Copy(part, strings.NewReader("not really a png"))
	w.Close()

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/users/profile/upload", &buf)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload: status %d, body %s", resp.StatusCode, raw)
	}

	obj := decodeObj(t, raw)
	url, _ := obj["profilePicture"].(string)
	if !strings.HasPrefix(url, "/uploads/profile-") || !strings.HasSuffix(url, ".png") {
		t.Fatalf("profilePicture = %q", url)
	}

	status, raw := do(t, srv, http.MethodGet, "/api/auth/me", token, nil)
	if status != http.StatusOK {
		t.Fatalf("me: status %d", status)
	}
	if decodeObj(t, raw)["profilePicture"] != url {
		t.Fatalf("avatar not persisted: %s", raw)
	}
}

func TestReputationLogEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token, _ := registerUser(t, srv, "alice")
	groupID := createGroup(t, srv, token, "Ledger")

	createPost(t, srv, token, map[string]interface{}{
		"title":   "First",
		"content": "post",
		"groupId": groupID,
	})

	status, raw := do(t, srv, http.MethodGet, "/api/users/reputation/log", token, nil)
	if status != http.StatusOK {
		t.Fatalf("reputation log: status %d, body %s", status, raw)
	}
	entries := decodeList(t, raw)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if int(entries[0]["delta"].(float64)) != 5 || entries[0]["reason"] != "post created" {
		t.Fatalf("unexpected entry: %s", raw)
	}
}
