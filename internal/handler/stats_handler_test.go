package handler_test

import (
	"net/http"
	"testing"
)

func TestAdminStats(t *testing.T) {
	engine, _ := setupServer(t)
	token := login(t, engine)

	doJSON(t, engine, http.MethodPost, "/api/cakes", token, cakePayload("Choco"))
	submitInquiry(t, engine, "one")
	submitInquiry(t, engine, "two")

	w := doJSON(t, engine, http.MethodGet, "/api/admin/stats", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body.String())
	}
	var stats map[string]int64
	decode(t, w, &stats)
	if stats["cakes"] != 1 {
		t.Errorf("cakes = %d, want 1", stats["cakes"])
	}
	if stats["inquiries"] != 2 || stats["unreadInquiries"] != 2 {
		t.Errorf("inquiries = %d unread = %d, want 2/2", stats["inquiries"], stats["unreadInquiries"])
	}
	if stats["bouquets"] != 0 || stats["orders"] != 0 {
		t.Errorf("unexpected counts: %+v", stats)
	}

	w = doJSON(t, engine, http.MethodGet, "/api/admin/stats", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("stats without token: status = %d, want 401", w.Code)
	}
}
