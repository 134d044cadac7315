package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"artistry/internal/domain"
	"artistry/internal/models"
	"artistry/internal/repository"
	"artistry/internal/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderHandler struct {
	repo *repository.OrderRepository
	hub  *ws.Hub
}

func NewOrderHandler(repo *repository.OrderRepository, hub *ws.Hub) *OrderHandler {
	return &OrderHandler{repo: repo, hub: hub}
}

func (h *OrderHandler) List(c *gin.Context) {
	list, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *OrderHandler) ListAdmin(c *gin.Context) {
	page, err := h.repo.ListPage(listOptions(c, 5, "cakeSizePreference"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// Create is the public custom-order request endpoint. The event date
// arrives as a date-input string, so it is parsed by hand.
func (h *OrderHandler) Create(c *gin.Context) {
	var req struct {
		Name                  string `json:"name" binding:"required"`
		Email                 string `json:"email" binding:"required,email"`
		Phone                 string `json:"phone" binding:"required"`
		EventDate             string `json:"eventDate" binding:"required"`
		NumberOfGuests        int    `json:"numberOfGuests"`
		CakeSizePreference    string `json:"cakeSizePreference"`
		CakeDesignDescription string `json:"cakeDesignDescription" binding:"required"`
		Budget                string `json:"budget"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid eventDate"})
		return
	}
	if req.NumberOfGuests < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "numberOfGuests must not be negative"})
		return
	}
	if req.CakeSizePreference != "" && !domain.CakeSizePreferences[req.CakeSizePreference] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cakeSizePreference"})
		return
	}
	if req.Budget != "" && !domain.BudgetRanges[req.Budget] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid budget"})
		return
	}
	order := &models.Order{
		Name:                  req.Name,
		Email:                 req.Email,
		Phone:                 req.Phone,
		EventDate:             eventDate,
		NumberOfGuests:        req.NumberOfGuests,
		CakeSizePreference:    req.CakeSizePreference,
		CakeDesignDescription: req.CakeDesignDescription,
		Budget:                req.Budget,
	}
	if err := h.repo.Create(order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	h.hub.Broadcast(ws.EventOrderCreated, order)
	c.JSON(http.StatusCreated, order)
}

// Delete soft-deletes: the request disappears from the inbox but the row
// is kept.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func parseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
