package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"artistry/internal/models"

	"github.com/gin-gonic/gin"
)

func TestBouquetDefaultsAndEnum(t *testing.T) {
	engine, _ := setupServer(t)
	token := login(t, engine)

	w := doJSON(t, engine, http.MethodPost, "/api/bouquets", token, gin.H{
		"name":          "Ferrero Tower",
		"description":   "24 pieces",
		"price":         1200,
		"imageUrl":      "x",
		"chocolateType": "Milk",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d body %s", w.Code, w.Body.String())
	}
	var created models.Bouquet
	decode(t, w, &created)
	if created.Size != "Medium" {
		t.Errorf("size should default to Medium, got %q", created.Size)
	}

	w = doJSON(t, engine, http.MethodPost, "/api/bouquets", token, gin.H{
		"name": "Bad", "description": "d", "price": 100, "imageUrl": "x",
		"chocolateType": "Dark", "size": "Gigantic",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid size: status = %d, want 400", w.Code)
	}

	w = doJSON(t, engine, http.MethodPut, fmt.Sprintf("/api/bouquets/%d", created.ID), token, gin.H{
		"size": "Large", "occasion": "Anniversary",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: status = %d", w.Code)
	}
	var updated models.Bouquet
	decode(t, w, &updated)
	if updated.Size != "Large" || updated.Occasion != "Anniversary" {
		t.Errorf("update not applied: %+v", updated)
	}
}

func TestPaintingLifecycle(t *testing.T) {
	engine, _ := setupServer(t)
	token := login(t, engine)

	w := doJSON(t, engine, http.MethodPost, "/api/paintings", token, gin.H{
		"title":       "Sunset Over Hills",
		"artist":      "R. Varma",
		"description": "landscape",
		"price":       15000,
		"imageUrl":    "x",
		"dimensions":  "24x36in",
		"medium":      "Oil",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d body %s", w.Code, w.Body.String())
	}
	var created models.Painting
	decode(t, w, &created)
	if !created.CommissionAvailable {
		t.Error("commissionAvailable should default to true")
	}

	w = doJSON(t, engine, http.MethodPost, "/api/paintings", token, gin.H{
		"title": "Bad", "artist": "a", "description": "d", "price": 10,
		"imageUrl": "x", "dimensions": "1x1", "medium": "Crayon",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid medium: status = %d, want 400", w.Code)
	}

	w = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/paintings/%d", created.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", w.Code)
	}
	w = doJSON(t, engine, http.MethodGet, "/api/paintings", "", nil)
	var list []models.Painting
	decode(t, w, &list)
	if len(list) != 0 {
		t.Fatal("soft-deleted painting still listed")
	}

	w = doJSON(t, engine, http.MethodDelete, "/api/paintings/999", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete missing: status = %d, want 404", w.Code)
	}
}
