package handler

import (
	"errors"
	"net/http"
	"strconv"

	"artistry/internal/domain"
	"artistry/internal/models"
	"artistry/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaintingHandler struct {
	repo *repository.PaintingRepository
}

func NewPaintingHandler(repo *repository.PaintingRepository) *PaintingHandler {
	return &PaintingHandler{repo: repo}
}

func (h *PaintingHandler) List(c *gin.Context) {
	list, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch paintings"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *PaintingHandler) ListAdmin(c *gin.Context) {
	page, err := h.repo.ListPage(listOptions(c, 10, "medium"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch paintings"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *PaintingHandler) Create(c *gin.Context) {
	var req struct {
		Title               string  `json:"title" binding:"required"`
		Artist              string  `json:"artist" binding:"required"`
		Description         string  `json:"description" binding:"required"`
		Price               float64 `json:"price" binding:"required,gt=0"`
		ImageURL            string  `json:"imageUrl" binding:"required"`
		Dimensions          string  `json:"dimensions" binding:"required"`
		Medium              string  `json:"medium" binding:"required"`
		IsAvailable         *bool   `json:"isAvailable"`
		CommissionAvailable *bool   `json:"commissionAvailable"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.PaintingMediums[req.Medium] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid medium"})
		return
	}
	p := &models.Painting{
		Title:               req.Title,
		Artist:              req.Artist,
		Description:         req.Description,
		Price:               req.Price,
		ImageURL:            req.ImageURL,
		Dimensions:          req.Dimensions,
		Medium:              req.Medium,
		IsAvailable:         req.IsAvailable == nil || *req.IsAvailable,
		CommissionAvailable: req.CommissionAvailable == nil || *req.CommissionAvailable,
	}
	if err := h.repo.Create(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create painting"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PaintingHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	p, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update painting"})
		return
	}
	var req struct {
		Title               *string  `json:"title"`
		Artist              *string  `json:"artist"`
		Description         *string  `json:"description"`
		Price               *float64 `json:"price"`
		ImageURL            *string  `json:"imageUrl"`
		Dimensions          *string  `json:"dimensions"`
		Medium              *string  `json:"medium"`
		IsAvailable         *bool    `json:"isAvailable"`
		CommissionAvailable *bool    `json:"commissionAvailable"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price != nil && *req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
		return
	}
	if req.Medium != nil && !domain.PaintingMediums[*req.Medium] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid medium"})
		return
	}
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Artist != nil {
		p.Artist = *req.Artist
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	if req.Dimensions != nil {
		p.Dimensions = *req.Dimensions
	}
	if req.Medium != nil {
		p.Medium = *req.Medium
	}
	if req.IsAvailable != nil {
		p.IsAvailable = *req.IsAvailable
	}
	if req.CommissionAvailable != nil {
		p.CommissionAvailable = *req.CommissionAvailable
	}
	if err := h.repo.Save(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update painting"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PaintingHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete painting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
