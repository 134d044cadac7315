package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestLoginWrongPassword(t *testing.T) {
	engine, _ := setupServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/admin/login", "", gin.H{"password": "nope"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	var resp struct {
		Error string `json:"error"`
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	if resp.Error != "Invalid password" {
		t.Errorf("error = %q, want %q", resp.Error, "Invalid password")
	}
	if resp.Token != "" {
		t.Error("token issued for wrong password")
	}
}

func TestLoginMissingPassword(t *testing.T) {
	engine, _ := setupServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/admin/login", "", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAdminRoutesRejectMissingOrBadToken(t *testing.T) {
	engine, _ := setupServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/cakes", "", gin.H{"name": "x"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d, want 401", w.Code)
	}

	w = doJSON(t, engine, http.MethodPost, "/api/cakes", "not-a-jwt", gin.H{"name": "x"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: status = %d, want 401", w.Code)
	}

	w = doJSON(t, engine, http.MethodGet, "/api/inquiry", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("inquiry list without token: status = %d, want 401", w.Code)
	}
}

func TestLoginThenAccess(t *testing.T) {
	engine, _ := setupServer(t)
	token := login(t, engine)

	w := doJSON(t, engine, http.MethodGet, "/api/inquiry", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}
