package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"artistry/internal/repository"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	repo *repository.SettingRepository
}

func NewSettingsHandler(repo *repository.SettingRepository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

// Get folds all rows into one {key: value} object. Values are returned
// verbatim as the JSON that was stored.
func (h *SettingsHandler) Get(c *gin.Context) {
	rows, err := h.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}
	obj := make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		if json.Valid([]byte(row.Value)) {
			obj[row.Key] = json.RawMessage(row.Value)
			continue
		}
		// Legacy rows may hold bare strings; re-encode them.
		b, _ := json.Marshal(row.Value)
		obj[row.Key] = b
	}
	c.JSON(http.StatusOK, obj)
}

// Put upserts each submitted key in turn. The loop is not transactional:
// a mid-loop failure leaves earlier keys written, matching the per-key
// write semantics the frontend expects.
func (h *SettingsHandler) Put(c *gin.Context) {
	var req map[string]json.RawMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for key, value := range req {
		if err := h.repo.Set(key, string(value)); err != nil {
			log.Printf("settings: upsert %q: %v", key, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
