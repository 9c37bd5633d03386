package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"expense_tracker/internal/models"
	"expense_tracker/internal/service"
)

const profileUserID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

func newProfileRouter(accounts *mockAccounts) http.Handler {
	auth := &mockAuth{authUserID: profileUserID}
	s := &service.Service{Authorization: auth, Accounts: accounts}
	return newTestRouter(s)
}

func TestProfileHandlers_Get(t *testing.T) {
	accounts := &mockAccounts{
		getUser: models.User{ID: profileUserID, Email: "john@example.com", Username: "john_doe"},
	}
	r := newProfileRouter(accounts)

	w := doJSON(r, http.MethodGet, "/auth/user/"+profileUserID+"/profile", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["email"] != "john@example.com" || m["username"] != "john_doe" {
		t.Fatalf("unexpected profile payload: %v", m)
	}
	// The password hash never leaves the server.
	if _, leaked := m["password_hash"]; leaked {
		t.Fatalf("password hash serialized: %v", m)
	}
	if accounts.lastGetTarget != profileUserID {
		t.Fatalf("target not passed: %q", accounts.lastGetTarget)
	}
}

func TestProfileHandlers_Get_InvalidID(t *testing.T) {
	r := newProfileRouter(&mockAccounts{})

	w := doJSON(r, http.MethodGet, "/auth/user/not-a-uuid/profile", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed user id, got %d", w.Code)
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["detail"] != "Invalid user ID" {
		t.Fatalf("unexpected detail: %q", m["detail"])
	}
}

func TestProfileHandlers_Update(t *testing.T) {
	accounts := &mockAccounts{
		updateUser: models.User{ID: profileUserID, Email: "john@example.com", Username: "johnny"},
	}
	r := newProfileRouter(accounts)

	w := doJSON(r, http.MethodPut, "/auth/user/"+profileUserID+"/profile",
		`{"first_name":"John","last_name":"Doe","username":"johnny"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["detail"] != "User details updated successfully!" {
		t.Fatalf("unexpected detail: %q", m["detail"])
	}
	if accounts.lastUpdate.Username != "johnny" {
		t.Fatalf("update input not passed: %+v", accounts.lastUpdate)
	}
}

func TestProfileHandlers_ForeignProfile(t *testing.T) {
	accounts := &mockAccounts{getErr: service.ErrNotFound}
	r := newProfileRouter(accounts)

	w := doJSON(r, http.MethodGet, "/auth/user/"+recordID+"/profile", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign profile, got %d (body=%s)", w.Code, w.Body.String())
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["detail"] != "Not found." {
		t.Fatalf("unexpected detail: %q", m["detail"])
	}
}
