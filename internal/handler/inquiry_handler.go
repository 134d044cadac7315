package handler

import (
	"errors"
	"net/http"
	"strconv"

	"artistry/internal/models"
	"artistry/internal/repository"
	"artistry/internal/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InquiryHandler struct {
	repo *repository.InquiryRepository
	hub  *ws.Hub
}

func NewInquiryHandler(repo *repository.InquiryRepository, hub *ws.Hub) *InquiryHandler {
	return &InquiryHandler{repo: repo, hub: hub}
}

func (h *InquiryHandler) List(c *gin.Context) {
	list, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inquiries"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *InquiryHandler) ListAdmin(c *gin.Context) {
	page, err := h.repo.ListPage(listOptions(c, 10, ""))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inquiries"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// Get returns one inquiry and marks it read: opening a message in the
// admin inbox is what "reading" means here.
func (h *InquiryHandler) Get(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	inquiry, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find inquiry"})
		return
	}
	if !inquiry.IsRead {
		inquiry.IsRead = true
		if err := h.repo.Save(inquiry); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find inquiry"})
			return
		}
	}
	c.JSON(http.StatusOK, inquiry)
}

// Create is the public contact-form endpoint.
func (h *InquiryHandler) Create(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	inquiry := &models.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.repo.Create(inquiry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inquiry"})
		return
	}
	h.hub.Broadcast(ws.EventInquiryCreated, inquiry)
	c.JSON(http.StatusCreated, inquiry)
}

// Update merges flag changes. Inquiry content is immutable after creation;
// only isRead and isStarred can move. Serves both PUT and PATCH.
func (h *InquiryHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	inquiry, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inquiry"})
		return
	}
	var req struct {
		IsRead    *bool `json:"isRead"`
		IsStarred *bool `json:"isStarred"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.IsRead != nil {
		inquiry.IsRead = *req.IsRead
	}
	if req.IsStarred != nil {
		inquiry.IsStarred = *req.IsStarred
	}
	if err := h.repo.Save(inquiry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inquiry"})
		return
	}
	c.JSON(http.StatusOK, inquiry)
}

// Delete removes the inquiry permanently.
func (h *InquiryHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inquiry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
