package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func adminLogin(t *testing.T, h http.Handler) *http.Cookie {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/api/admin/login",
		AdminLoginRequest{Email: "admin@example.com", Password: "hunter2"})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == adminCookieName {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func doAdmin(t *testing.T, h http.Handler, method, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestAdminLogin(t *testing.T) {
	h := newTestServer(t)

	w := doJSON(t, h, http.MethodPost, "/api/admin/login",
		AdminLoginRequest{Email: "admin@example.com", Password: "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: expected 401, got %d", w.Code)
	}

	w = doJSON(t, h, http.MethodPost, "/api/admin/login",
		AdminLoginRequest{Email: "nobody@example.com", Password: "hunter2"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unknown email: expected 401, got %d", w.Code)
	}

	cookie := adminLogin(t, h)

	w = doAdmin(t, h, http.MethodGet, "/api/admin/me", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", w.Code)
	}
	var me AdminMeResponse
	json.NewDecoder(w.Body).Decode(&me)
	if me.Email != "admin@example.com" {
		t.Errorf("me.Email = %q", me.Email)
	}
}

func TestAdminGames(t *testing.T) {
	h := newTestServer(t)
	created := createGame(t, h, "TESTAZ")

	if w := doAdmin(t, h, http.MethodGet, "/api/admin/games", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("no cookie: expected 401, got %d", w.Code)
	}

	cookie := adminLogin(t, h)
	w := doAdmin(t, h, http.MethodGet, "/api/admin/games", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var games []GameSummary
	json.NewDecoder(w.Body).Decode(&games)
	found := false
	for _, g := range games {
		if g.ID == created.ID && g.Seed == "TESTAZ" {
			found = true
		}
	}
	if !found {
		t.Errorf("created game missing from listing: %+v", games)
	}

	w = doAdmin(t, h, http.MethodDelete, "/api/admin/games/"+created.ID, cookie)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}
	if w := doJSON(t, h, http.MethodGet, "/api/games/"+created.ID, nil); w.Code != http.StatusNotFound {
		t.Errorf("deleted game still served: %d", w.Code)
	}
}

func TestAdminLogout(t *testing.T) {
	h := newTestServer(t)
	cookie := adminLogin(t, h)

	if w := doAdmin(t, h, http.MethodPost, "/api/admin/logout", cookie); w.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", w.Code)
	}
	if w := doAdmin(t, h, http.MethodGet, "/api/admin/games", cookie); w.Code != http.StatusUnauthorized {
		t.Errorf("session survived logout: %d", w.Code)
	}
}
